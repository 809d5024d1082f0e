// Package matrix turns decoded digest bytes into small grids of intensity
// values in the range 0-15.
//
// Two strategies are provided. Nibble lays every 4-bit half of the digest out
// row by row. Randomart walks a cursor over the grid the way ssh-keygen draws
// host key fingerprints, counting visits per cell. Each strategy has a fixed
// grid size per digest algorithm and a preferred palette class.
//
// All functions are pure; a Matricizer holds no state between calls and is
// safe for concurrent use.
package matrix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/colorhash-mcp/internal/digest"
	"github.com/ironsheep/colorhash-mcp/internal/palette"
)

// MaxIntensity is the largest value a grid cell can hold.
const MaxIntensity = 0xf

var (
	// ErrUnsupportedAlgorithm is returned when a matricizer has no grid
	// dimensions for a recognized algorithm. digest.Unknown yields
	// digest.ErrUnknownAlgorithm instead.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrLengthMismatch is returned when the digest bytes do not fill the
	// grid exactly.
	ErrLengthMismatch = errors.New("digest length does not match grid dimensions")

	// ErrUnknownMatricizer is returned by ByName for an unknown strategy.
	ErrUnknownMatricizer = errors.New("unknown matricizer")
)

// Matricizer converts digest bytes to a Grid.
type Matricizer interface {
	// Name returns the strategy name used on the command line.
	Name() string

	// Class returns the palette class this strategy pairs with by default.
	Class() palette.Class

	// Dimensions returns the grid size for alg.
	Dimensions(alg digest.Algorithm) (width, height int, err error)

	// Matricize builds a new grid from data, a decoded alg digest.
	Matricize(data []byte, alg digest.Algorithm) (*Grid, error)
}

type dimensions struct {
	width, height int
}

func lookupDimensions(name string, table map[digest.Algorithm]dimensions, alg digest.Algorithm) (int, int, error) {
	if !alg.Valid() {
		return 0, 0, fmt.Errorf("%s matricizer: %w", name, digest.ErrUnknownAlgorithm)
	}
	d, ok := table[alg]
	if !ok {
		return 0, 0, fmt.Errorf("%s matricizer has no dimensions for %s: %w", name, alg, ErrUnsupportedAlgorithm)
	}
	return d.width, d.height, nil
}

// ByName returns the matricizer called name ("nibble" or "randomart").
func ByName(name string) (Matricizer, error) {
	switch strings.ToLower(name) {
	case "nibble", "":
		return Nibble{}, nil
	case "randomart":
		return Randomart{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMatricizer)
	}
}

// Names lists the available strategies.
func Names() []string {
	return []string{Nibble{}.Name(), Randomart{}.Name()}
}

// ChoosePalette picks a palette from catalog based on the byte sum of data.
// A nil catalog means the full default catalog.
func ChoosePalette(data []byte, catalog palette.Catalog) (palette.Palette, error) {
	if catalog == nil {
		catalog = palette.Default()
	}
	return catalog.Select(data)
}

// ChooseFor picks a palette for m from the built-in palettes of m's class.
func ChooseFor(m Matricizer, data []byte) (palette.Palette, error) {
	return ChoosePalette(data, palette.ForClass(m.Class()))
}
