// Package digest classifies and decodes hexadecimal digests of the six
// supported hash families and computes new digests from raw data.
package digest

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrUnknownAlgorithm is returned when an input is neither a known
	// algorithm name nor a hex string of a known digest length.
	ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

	// ErrMalformedHex is returned when a hex string has odd length or
	// contains non-hex characters.
	ErrMalformedHex = errors.New("malformed hex digest")
)

// Algorithm identifies a digest family.
//
// The zero value, Unknown, is the "not recognized" outcome of Detect.
type Algorithm int

const (
	Unknown Algorithm = iota
	MD5
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
)

type algorithmInfo struct {
	name string
	size int
}

var algorithmTable = [...]algorithmInfo{
	Unknown: {"unknown", 0},
	MD5:     {"md5", 16},
	SHA1:    {"sha1", 20},
	SHA224:  {"sha224", 28},
	SHA256:  {"sha256", 32},
	SHA384:  {"sha384", 48},
	SHA512:  {"sha512", 64},
}

// Algorithms returns every supported algorithm in ascending digest size.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA224, SHA256, SHA384, SHA512}
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a > Unknown && int(a) < len(algorithmTable)
}

// String returns the lowercase algorithm name, e.g. "sha256".
func (a Algorithm) String() string {
	if !a.Valid() {
		return algorithmTable[Unknown].name
	}
	return algorithmTable[a].name
}

// Size returns the digest size in bytes, or 0 for Unknown.
func (a Algorithm) Size() int {
	if !a.Valid() {
		return 0
	}
	return algorithmTable[a].size
}

// HexLen returns the length of the digest as a hex string.
func (a Algorithm) HexLen() int {
	return a.Size() * 2
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only algorithm names are
// accepted, not digests.
func (a *Algorithm) UnmarshalText(text []byte) error {
	alg, ok := byName(string(text))
	if !ok {
		return fmt.Errorf("%q: %w", text, ErrUnknownAlgorithm)
	}
	*a = alg
	return nil
}

var hexPairs = regexp.MustCompile(`^([0-9a-f]{2})+$`)

func byName(name string) (Algorithm, bool) {
	name = strings.ToLower(name)
	for _, alg := range Algorithms() {
		if alg.String() == name {
			return alg, true
		}
	}
	return Unknown, false
}

// Detect identifies the algorithm named by input or the algorithm that
// produced the hex digest in input.
//
// Matching is case-insensitive:
//
//	"sha1"                                     -> SHA1
//	"MD5"                                      -> MD5
//	"ae288b06df4a460c37c836e270f9edaabffb7d6d" -> SHA1
//	"deadbeef"                                 -> Unknown (crc32 is not supported)
//
// Detect never fails; an unrecognized input yields Unknown.
func Detect(input string) Algorithm {
	lower := strings.ToLower(input)

	if hexPairs.MatchString(lower) {
		for _, alg := range Algorithms() {
			if alg.HexLen() == len(lower) {
				return alg
			}
		}
		return Unknown
	}

	alg, _ := byName(lower)
	return alg
}

// Parse is like Detect but returns ErrUnknownAlgorithm for unrecognized input.
func Parse(input string) (Algorithm, error) {
	alg := Detect(input)
	if alg == Unknown {
		return Unknown, fmt.Errorf("unable to determine hash algorithm of %q: %w", input, ErrUnknownAlgorithm)
	}
	return alg, nil
}
