package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ironsheep/colorhash-mcp/internal/matrix"
	"github.com/ironsheep/colorhash-mcp/internal/palette"
)

// SVGWriter renders a grid as an SVG document.
type SVGWriter struct {
	SquareSize int
}

// Write emits the SVG document to w.
func (s SVGWriter) Write(w io.Writer, g *matrix.Grid, p palette.Palette) error {
	if err := checkSquareSize(s.SquareSize); err != nil {
		return err
	}
	colors, err := Colorize(g, p)
	if err != nil {
		return err
	}

	size := s.SquareSize
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<svg width=\"%d\" height=\"%d\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		g.Width*size, g.Height*size)
	for r, row := range colors {
		for c, color := range row {
			fmt.Fprintf(bw, "  <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\" />\n",
				c*size, r*size, size, size, color.Hex())
		}
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// SVG renders g and returns the document as a string.
func SVG(g *matrix.Grid, p palette.Palette, squareSize int) (string, error) {
	var b strings.Builder
	if err := (SVGWriter{SquareSize: squareSize}).Write(&b, g, p); err != nil {
		return "", err
	}
	return b.String(), nil
}
