package matrix

import (
	"bytes"
	"fmt"
)

// Grid is a rectangular array of intensities in [0, MaxIntensity], stored
// row-major.
type Grid struct {
	Width  int
	Height int
	Cells  []uint8
}

// NewGrid returns a zeroed width x height grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]uint8, width*height),
	}
}

// At returns the intensity at column x, row y.
func (g *Grid) At(x, y int) uint8 {
	return g.Cells[y*g.Width+x]
}

// Rows returns the grid as a slice of rows. The rows share no memory with g.
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.Height)
	for y := range rows {
		rows[y] = append([]uint8(nil), g.Cells[y*g.Width:(y+1)*g.Width]...)
	}
	return rows
}

// Equal reports whether g and other have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	return g.Width == other.Width && g.Height == other.Height && bytes.Equal(g.Cells, other.Cells)
}

// String renders the grid as rows of hex digits, for logs and tests.
func (g *Grid) String() string {
	var b bytes.Buffer
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			fmt.Fprintf(&b, "%x", g.At(x, y))
		}
		if y < g.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
