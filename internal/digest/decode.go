package digest

import (
	"fmt"
	"strconv"
)

// Decode converts a hex string into bytes, two characters per byte.
//
// Upper- and lower-case digits are accepted. Returns ErrMalformedHex if the
// string has odd length or any pair is not valid base-16.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd length %d: %w", len(s), ErrMalformedHex)
	}

	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		pair := s[i : i+2]
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex pair %q at offset %d: %w", pair, i, ErrMalformedHex)
		}
		out[i/2] = byte(v)
	}
	return out, nil
}
