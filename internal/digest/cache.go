package digest

import (
	"fmt"
	"os"
	"sync"
)

type cacheKey struct {
	path string
	alg  Algorithm
}

// FileCache provides thread-safe caching of file digests to avoid rehashing
// the same file.
//
// Entries are keyed by the exact path string and the algorithm. Different
// paths to the same file (e.g., relative vs absolute) are separate entries.
// The cache does not watch files; call Evict after a file changes.
//
// FileCache is safe for concurrent use by multiple goroutines.
type FileCache struct {
	mu      sync.RWMutex
	digests map[cacheKey][]byte
}

// NewFileCache creates and initializes a new empty digest cache.
func NewFileCache() *FileCache {
	return &FileCache{
		digests: make(map[cacheKey][]byte),
	}
}

// Sum returns the alg digest of the file at path, hashing it on first use.
//
// Parameters:
//   - path: Absolute or relative file path.
//   - alg: The digest algorithm. Must be Valid.
//
// Returns:
//   - []byte: A copy of the digest. Callers may modify it freely.
//   - error: Non-nil if the algorithm is unknown or the file cannot be read.
func (c *FileCache) Sum(path string, alg Algorithm) ([]byte, error) {
	key := cacheKey{path: path, alg: alg}

	c.mu.RLock()
	if d, ok := c.digests[key]; ok {
		c.mu.RUnlock()
		return append([]byte(nil), d...), nil
	}
	c.mu.RUnlock()

	if !alg.Valid() {
		return nil, fmt.Errorf("%s: %w", alg, ErrUnknownAlgorithm)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	d, err := SumReader(alg, f)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.digests[key] = d
	c.mu.Unlock()

	return append([]byte(nil), d...), nil
}

// Len returns the number of cached digests.
func (c *FileCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.digests)
}

// Clear removes all cached digests.
func (c *FileCache) Clear() {
	c.mu.Lock()
	c.digests = make(map[cacheKey][]byte)
	c.mu.Unlock()
}

// Evict removes every cached digest for path, whatever the algorithm.
//
// If the path is not in the cache, this method does nothing.
func (c *FileCache) Evict(path string) {
	c.mu.Lock()
	for key := range c.digests {
		if key.path == path {
			delete(c.digests, key)
		}
	}
	c.mu.Unlock()
}
