package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ironsheep/colorhash-mcp/internal/colorspace"
	"github.com/ironsheep/colorhash-mcp/internal/matrix"
	"github.com/ironsheep/colorhash-mcp/internal/palette"
)

// DefaultSquareSize is the cell size used when none is configured.
const DefaultSquareSize = 32

var (
	// ErrInvalidSquareSize is returned for a square size below one pixel.
	ErrInvalidSquareSize = errors.New("square size must be at least 1")

	// ErrUnknownFormat is returned by ForFormat for an unsupported output type.
	ErrUnknownFormat = errors.New("unknown output format")
)

// Writer renders a grid with a palette to w.
type Writer interface {
	Write(w io.Writer, g *matrix.Grid, p palette.Palette) error
}

// Formats lists the output types ForFormat accepts.
func Formats() []string {
	return []string{"ansi", "svg", "png"}
}

// ForFormat returns the Writer for an output type name.
func ForFormat(format string, squareSize int) (Writer, error) {
	switch strings.ToLower(format) {
	case "ansi":
		return ANSIWriter{}, nil
	case "svg":
		return SVGWriter{SquareSize: squareSize}, nil
	case "png":
		return PNGWriter{SquareSize: squareSize}, nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// Colorize maps each grid cell to its palette color. The result is indexed
// [row][column].
func Colorize(g *matrix.Grid, p palette.Palette) ([][]colorspace.RGB, error) {
	if err := validate(g, p); err != nil {
		return nil, err
	}

	// Convert each palette entry once rather than once per cell.
	var lut [palette.Size]colorspace.RGB
	for i := range lut {
		lut[i] = p.At(i).ToRGB()
	}

	rows := make([][]colorspace.RGB, g.Height)
	for y := range rows {
		rows[y] = make([]colorspace.RGB, g.Width)
		for x := range rows[y] {
			rows[y][x] = lut[g.At(x, y)]
		}
	}
	return rows, nil
}

func validate(g *matrix.Grid, p palette.Palette) error {
	if g == nil || g.Width <= 0 || g.Height <= 0 || len(g.Cells) != g.Width*g.Height {
		return fmt.Errorf("invalid grid")
	}
	if p.Len() != palette.Size {
		return fmt.Errorf("palette must contain exactly %d colors", palette.Size)
	}
	for i, v := range g.Cells {
		if int(v) >= palette.Size {
			return fmt.Errorf("cell %d has intensity %d outside 0-%d", i, v, palette.Size-1)
		}
	}
	return nil
}

func checkSquareSize(size int) error {
	if size < 1 {
		return fmt.Errorf("%d: %w", size, ErrInvalidSquareSize)
	}
	return nil
}
