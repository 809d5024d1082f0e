package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ironsheep/colorhash-mcp/internal/matrix"
	"github.com/ironsheep/colorhash-mcp/internal/palette"
)

const (
	ansiReset = "\x1b[0m"
	ansiBlock = "██"
)

// ANSIWriter renders a grid for terminals with 24-bit color support.
// Each cell is two full-block characters wide so cells look roughly square.
type ANSIWriter struct{}

// Write emits one line per grid row followed by a color reset.
func (ANSIWriter) Write(w io.Writer, g *matrix.Grid, p palette.Palette) error {
	colors, err := Colorize(g, p)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, row := range colors {
		for _, c := range row {
			fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm%s", c.R(), c.G(), c.B(), ansiBlock)
		}
		bw.WriteByte('\n')
	}
	bw.WriteString(ansiReset)
	return bw.Flush()
}

// ANSI renders g and returns the escape-coded text.
func ANSI(g *matrix.Grid, p palette.Palette) (string, error) {
	var b strings.Builder
	if err := (ANSIWriter{}).Write(&b, g, p); err != nil {
		return "", err
	}
	return b.String(), nil
}
