// Package palette builds the 16-color ramps that fingerprint grids are
// painted with, and holds the fixed catalog of named palettes.
//
// A palette is an ordered list of exactly Size colors; index i is the color
// for grid intensity i. Palettes are built once from two HSL endpoints and
// never change afterwards.
package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/colorhash-mcp/internal/colorspace"
)

// Size is the number of colors in every palette, one per intensity 0-15.
const Size = 16

var (
	// ErrEmptyCatalog is returned when selecting from a catalog with no palettes.
	ErrEmptyCatalog = errors.New("palette catalog is empty")

	// ErrUnknownPalette is returned when a palette name is not in the catalog.
	ErrUnknownPalette = errors.New("unknown palette")
)

// Class tags a palette with the kind of grid it suits.
type Class int

const (
	// Gradient palettes ramp lightness within one hue family.
	Gradient Class = iota
	// Multicolor palettes sweep the hue circle.
	Multicolor
)

func (c Class) String() string {
	switch c {
	case Gradient:
		return "gradient"
	case Multicolor:
		return "multicolor"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// ParseClass converts "gradient" or "multicolor" (any case) into a Class.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gradient":
		return Gradient, nil
	case "multicolor":
		return Multicolor, nil
	default:
		return 0, fmt.Errorf("unknown palette class %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Class) UnmarshalText(text []byte) error {
	parsed, err := ParseClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Palette is a named, immutable sequence of Size colors.
type Palette struct {
	name   string
	class  Class
	colors [Size]colorspace.HSL
}

// New builds a palette by interpolating Size colors from start to end.
func New(name string, class Class, start, end colorspace.HSL) Palette {
	p := Palette{name: name, class: class}
	copy(p.colors[:], BuildRamp(start, end, Size))
	return p
}

// Name returns the palette name, e.g. "red-light".
func (p Palette) Name() string { return p.name }

// Class returns the palette class.
func (p Palette) Class() Class { return p.class }

// Len returns the number of colors (Size for any constructed palette).
func (p Palette) Len() int {
	if p.name == "" {
		return 0
	}
	return Size
}

// At returns the color for intensity i. i must be in [0, Size).
func (p Palette) At(i int) colorspace.HSL {
	return p.colors[i]
}

// Colors returns a copy of the palette colors in intensity order.
func (p Palette) Colors() []colorspace.HSL {
	out := make([]colorspace.HSL, Size)
	copy(out, p.colors[:])
	return out
}

// MarshalJSON encodes the palette as {"name", "class", "colors"} with colors
// as display strings.
func (p Palette) MarshalJSON() ([]byte, error) {
	colors := make([]string, Size)
	for i, c := range p.colors {
		colors[i] = c.String()
	}
	return json.Marshal(struct {
		Name   string   `json:"name"`
		Class  Class    `json:"class"`
		Colors []string `json:"colors"`
	}{p.name, p.class, colors})
}

// BuildRamp linearly interpolates steps HSL colors from start to end,
// inclusive of both endpoints.
//
// Hue, saturation and lightness are interpolated independently and then
// paired up index by index. Hue is not wrapped: 0 to 360 sweeps the full
// circle forward, 360 to 0 sweeps it backwards, and endpoints must be chosen
// with the desired direction in mind.
//
// The first and last entries are start and end exactly.
func BuildRamp(start, end colorspace.HSL, steps int) []colorspace.HSL {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []colorspace.HSL{start}
	}

	hues := quantize(start.H(), end.H(), steps)
	sats := quantize(start.S(), end.S(), steps)
	lights := quantize(start.L(), end.L(), steps)

	ramp := make([]colorspace.HSL, steps)
	for i := range ramp {
		ramp[i] = colorspace.MustHSL(hues[i], sats[i], lights[i])
	}
	ramp[0] = start
	ramp[steps-1] = end
	return ramp
}

// quantize returns steps evenly spaced values from min to max inclusive.
func quantize(min, max float64, steps int) []float64 {
	dist := max - min
	out := make([]float64, steps)
	for i := range out {
		out[i] = min + float64(i)*dist/float64(steps-1)
	}
	out[steps-1] = max
	return out
}
