package matrix

import (
	"fmt"

	"github.com/ironsheep/colorhash-mcp/internal/digest"
	"github.com/ironsheep/colorhash-mcp/internal/palette"
)

var randomartDimensions = map[digest.Algorithm]dimensions{
	digest.MD5:    {7, 6},
	digest.SHA1:   {7, 6},
	digest.SHA224: {8, 7},
	digest.SHA256: {8, 7},
	digest.SHA384: {11, 10},
	digest.SHA512: {11, 10},
}

// Randomart draws the digest with the ssh-keygen "drunken bishop" walk.
//
// The cursor starts in the middle of the grid. Every byte is consumed two
// bits at a time, least significant pair first:
//  1. bit 0 set moves right, clear moves left
//  2. bit 1 set moves down, clear moves up
//  3. a move that would leave the grid sticks to the edge instead
//  4. the cell under the cursor is incremented, saturating at MaxIntensity
type Randomart struct{}

// Name returns "randomart".
func (Randomart) Name() string { return "randomart" }

// Class returns palette.Multicolor.
func (Randomart) Class() palette.Class { return palette.Multicolor }

// Dimensions returns the grid size for alg.
func (Randomart) Dimensions(alg digest.Algorithm) (int, int, error) {
	return lookupDimensions("randomart", randomartDimensions, alg)
}

// Matricize walks the cursor over a fresh grid and returns the visit counts.
func (r Randomart) Matricize(data []byte, alg digest.Algorithm) (*Grid, error) {
	w, h, err := r.Dimensions(alg)
	if err != nil {
		return nil, err
	}
	if len(data) != alg.Size() {
		return nil, fmt.Errorf("input data length (%d bytes) must match %s digest size (%d): %w",
			len(data), alg, alg.Size(), ErrLengthMismatch)
	}

	g := NewGrid(w, h)
	x, y := w/2, h/2
	for _, value := range data {
		for i := 0; i < 4; i++ {
			if value&0x1 != 0 {
				x++
			} else {
				x--
			}
			if value&0x2 != 0 {
				y++
			} else {
				y--
			}
			x = clamp(x, 0, w-1)
			y = clamp(y, 0, h-1)

			idx := y*w + x
			if g.Cells[idx] < MaxIntensity {
				g.Cells[idx]++
			}
			value >>= 2
		}
	}
	return g, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
