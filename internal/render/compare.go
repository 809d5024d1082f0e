package render

import (
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/blend"

	"github.com/ironsheep/colorhash-mcp/internal/matrix"
	"github.com/ironsheep/colorhash-mcp/internal/palette"
)

// Subject is one side of a comparison: a grid and the palette it is drawn with.
type Subject struct {
	Grid    *matrix.Grid
	Palette palette.Palette
}

// Size describes grid dimensions in cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CompareResult contains fingerprint comparison information
type CompareResult struct {
	Identical        bool         `json:"identical"`
	SameShape        bool         `json:"same_shape"`
	Similarity       float64      `json:"similarity"`
	CellsDifferent   int          `json:"cells_different"`
	TotalCells       int          `json:"total_cells"`
	Size1            Size         `json:"size1"`
	Size2            Size         `json:"size2"`
	AverageColorDiff float64      `json:"average_color_diff"`
	DiffImage        *ImageResult `json:"diff_image,omitempty"`
}

// Compare compares two fingerprints cell by cell.
//
// Grids of different shapes are compared over their overlapping area. When
// the shapes match, the result also carries a difference image rendered at
// squareSize pixels per cell, black wherever the two fingerprints agree.
//
// Parameters:
//   - a, b: The fingerprints to compare
//   - squareSize: Cell size for the difference image
//
// Returns:
//   - Comparison summary, or an error if either side cannot be rendered
func Compare(a, b Subject, squareSize int) (*CompareResult, error) {
	ca, err := Colorize(a.Grid, a.Palette)
	if err != nil {
		return nil, fmt.Errorf("first fingerprint: %w", err)
	}
	cb, err := Colorize(b.Grid, b.Palette)
	if err != nil {
		return nil, fmt.Errorf("second fingerprint: %w", err)
	}

	w1, h1 := a.Grid.Width, a.Grid.Height
	w2, h2 := b.Grid.Width, b.Grid.Height
	sameShape := w1 == w2 && h1 == h2

	minW := min(w1, w2)
	minH := min(h1, h2)
	totalCells := minW * minH

	cellsDifferent := 0
	var totalColorDiff float64
	for y := 0; y < minH; y++ {
		for x := 0; x < minW; x++ {
			c1, c2 := ca[y][x], cb[y][x]
			dr := absDiff(c1.R(), c2.R())
			dg := absDiff(c1.G(), c2.G())
			db := absDiff(c1.B(), c2.B())
			totalColorDiff += float64(dr+dg+db) / 3.0

			if c1 != c2 {
				cellsDifferent++
			}
		}
	}

	result := &CompareResult{
		Identical:        sameShape && cellsDifferent == 0,
		SameShape:        sameShape,
		Similarity:       math.Round((1.0-float64(cellsDifferent)/float64(totalCells))*1000) / 1000,
		CellsDifferent:   cellsDifferent,
		TotalCells:       totalCells,
		Size1:            Size{Width: w1, Height: h1},
		Size2:            Size{Width: w2, Height: h2},
		AverageColorDiff: math.Round(totalColorDiff/float64(totalCells)*100) / 100,
	}

	if sameShape {
		img1, err := Image(a.Grid, a.Palette, squareSize)
		if err != nil {
			return nil, err
		}
		img2, err := Image(b.Grid, b.Palette, squareSize)
		if err != nil {
			return nil, err
		}
		diff, err := encodeImage(blend.Difference(img1, img2))
		if err != nil {
			return nil, err
		}
		result.DiffImage = diff
	}

	return result, nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
