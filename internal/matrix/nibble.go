package matrix

import (
	"fmt"

	"github.com/ironsheep/colorhash-mcp/internal/digest"
	"github.com/ironsheep/colorhash-mcp/internal/palette"
)

var nibbleDimensions = map[digest.Algorithm]dimensions{
	digest.MD5:    {8, 4},
	digest.SHA1:   {8, 5},
	digest.SHA224: {8, 7},
	digest.SHA256: {8, 8},
	digest.SHA384: {12, 8},
	digest.SHA512: {16, 8},
}

// Nibble fills the grid with the digest's nibbles, high nibble first, row by
// row. Every nibble becomes one cell, so the grid holds exactly twice as many
// cells as the digest has bytes.
type Nibble struct{}

// Name returns "nibble".
func (Nibble) Name() string { return "nibble" }

// Class returns palette.Gradient.
func (Nibble) Class() palette.Class { return palette.Gradient }

// Dimensions returns the grid size for alg.
func (Nibble) Dimensions(alg digest.Algorithm) (int, int, error) {
	return lookupDimensions("nibble", nibbleDimensions, alg)
}

// Matricize splits data into nibbles and lays them out row-major.
func (n Nibble) Matricize(data []byte, alg digest.Algorithm) (*Grid, error) {
	w, h, err := n.Dimensions(alg)
	if err != nil {
		return nil, err
	}
	if len(data)*2 != w*h {
		return nil, fmt.Errorf("input data length (%d nibbles) must match %s matrix dimensions (%dx%d = %d): %w",
			len(data)*2, alg, w, h, w*h, ErrLengthMismatch)
	}

	g := NewGrid(w, h)
	for i, b := range data {
		g.Cells[2*i] = b >> 4
		g.Cells[2*i+1] = b & 0x0f
	}
	return g, nil
}
