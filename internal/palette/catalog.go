package palette

import (
	"fmt"
	"sync"

	"github.com/ironsheep/colorhash-mcp/internal/colorspace"
)

// Catalog is an ordered list of palettes. Order matters: automatic palette
// selection indexes into it.
type Catalog []Palette

// Names returns the palette names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, p := range c {
		names[i] = p.Name()
	}
	return names
}

// Lookup returns the palette called name.
func (c Catalog) Lookup(name string) (Palette, error) {
	for _, p := range c {
		if p.Name() == name {
			return p, nil
		}
	}
	return Palette{}, fmt.Errorf("%q: %w", name, ErrUnknownPalette)
}

// Filter returns the palettes of the given class, keeping their order.
func (c Catalog) Filter(class Class) Catalog {
	var out Catalog
	for _, p := range c {
		if p.Class() == class {
			out = append(out, p)
		}
	}
	return out
}

// Merge returns c followed by other. A palette in other whose name already
// appears in c replaces the earlier one in place instead of being appended.
func (c Catalog) Merge(other Catalog) Catalog {
	out := make(Catalog, len(c), len(c)+len(other))
	copy(out, c)

	index := make(map[string]int, len(out))
	for i, p := range out {
		index[p.Name()] = i
	}
	for _, p := range other {
		if i, ok := index[p.Name()]; ok {
			out[i] = p
			continue
		}
		index[p.Name()] = len(out)
		out = append(out, p)
	}
	return out
}

// Select returns the palette chosen by a digest's byte sum: the sum of all
// bytes modulo the catalog length. The same bytes always give the same
// palette.
func (c Catalog) Select(data []byte) (Palette, error) {
	if len(c) == 0 {
		return Palette{}, ErrEmptyCatalog
	}
	var sum uint64
	for _, b := range data {
		sum += uint64(b)
	}
	return c[sum%uint64(len(c))], nil
}

type gradientSpec struct {
	name       string
	hue        float64
	saturation float64
	lo, hi     float64
}

// The curated gradients, in catalog order. Each holds hue and saturation and
// ramps lightness from lo to hi. Yellow has no light variant; lime, seafoam
// and teal are not included.
var gradientSpecs = []gradientSpec{
	{"red-light", 0, 100, 50, 100},
	{"red-dark", 0, 100, 0, 50},
	{"orange-light", 30, 100, 50, 100},
	{"orange-dark", 30, 100, 0, 50},
	{"yellow-dark", 60, 100, 0, 50},
	{"green-light", 120, 100, 50, 100},
	{"green-dark", 120, 100, 0, 50},
	{"cyan-light", 180, 100, 50, 100},
	{"cyan-dark", 180, 100, 0, 50},
	{"blue-light", 240, 100, 50, 100},
	{"blue-dark", 240, 100, 0, 50},
	{"purple-light", 270, 100, 50, 100},
	{"purple-dark", 270, 100, 0, 50},
	{"magenta-light", 300, 100, 50, 100},
	{"magenta-dark", 300, 100, 0, 50},
	{"pink-light", 330, 100, 50, 100},
	{"pink-dark", 330, 100, 0, 50},
	{"gray-light", 0, 0, 50, 100},
	{"gray-dark", 0, 0, 0, 50},
}

var (
	registryOnce sync.Once
	gradient     Catalog
	multicolor   Catalog
)

func buildRegistry() {
	for _, g := range gradientSpecs {
		gradient = append(gradient, New(g.name, Gradient,
			colorspace.MustHSL(g.hue, g.saturation, g.lo),
			colorspace.MustHSL(g.hue, g.saturation, g.hi)))
	}

	multicolor = Catalog{
		New("rainbow", Multicolor, colorspace.MustHSL(0, 100, 50), colorspace.MustHSL(360, 100, 50)),
		New("rainbow-reverse", Multicolor, colorspace.MustHSL(360, 100, 50), colorspace.MustHSL(0, 100, 50)),
	}
}

func registry() {
	registryOnce.Do(buildRegistry)
}

// GradientPalettes returns the built-in gradient palettes.
func GradientPalettes() Catalog {
	registry()
	return append(Catalog(nil), gradient...)
}

// MulticolorPalettes returns the built-in multicolor palettes.
func MulticolorPalettes() Catalog {
	registry()
	return append(Catalog(nil), multicolor...)
}

// Default returns the full built-in catalog: gradient palettes followed by
// multicolor palettes.
func Default() Catalog {
	registry()
	out := make(Catalog, 0, len(gradient)+len(multicolor))
	out = append(out, gradient...)
	return append(out, multicolor...)
}

// ForClass returns the built-in palettes of class.
func ForClass(class Class) Catalog {
	if class == Multicolor {
		return MulticolorPalettes()
	}
	return GradientPalettes()
}
