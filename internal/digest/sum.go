package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
)

// New returns a hash.Hash computing alg.
func New(alg Algorithm) (hash.Hash, error) {
	switch alg {
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA224:
		return sha256.New224(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("%s: %w", alg, ErrUnknownAlgorithm)
	}
}

// Sum returns the alg digest of data.
func Sum(alg Algorithm, data []byte) ([]byte, error) {
	h, err := New(alg)
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}

// SumReader streams r through alg and returns the digest.
func SumReader(alg Algorithm, r io.Reader) ([]byte, error) {
	h, err := New(alg)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return h.Sum(nil), nil
}
