package colorspace

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorComponent is returned when a color channel is out of range.
var ErrInvalidColorComponent = errors.New("invalid color component")

// Color is a color in one of the supported representations.
//
// The interface is sealed: RGB and HSL are the only implementations.
// Every Color is also an image/color.Color, so values can be handed directly
// to the standard image packages.
type Color interface {
	color.Color

	// ToRGB converts the color to 8-bit RGB.
	ToRGB() RGB

	// ToHSL converts the color to HSL.
	ToHSL() HSL

	// String returns a display string that Parse accepts.
	String() string

	sealed()
}

// RGB represents an RGB color with 8-bit components.
//
// The zero value is black.
type RGB struct {
	r, g, b uint8
}

// NewRGB creates an RGB color, validating that each channel lies in 0-255.
func NewRGB(r, g, b int) (RGB, error) {
	for _, v := range [...]int{r, g, b} {
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("rgb(%d, %d, %d): channel %d outside 0-255: %w", r, g, b, v, ErrInvalidColorComponent)
		}
	}
	return RGB{r: uint8(r), g: uint8(g), b: uint8(b)}, nil
}

// MustRGB is like NewRGB but panics on invalid input.
func MustRGB(r, g, b int) RGB {
	c, err := NewRGB(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// R returns the red channel.
func (c RGB) R() uint8 { return c.r }

// G returns the green channel.
func (c RGB) G() uint8 { return c.g }

// B returns the blue channel.
func (c RGB) B() uint8 { return c.b }

// RGBA implements image/color.Color. The color is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.r) * 0x101
	g = uint32(c.g) * 0x101
	b = uint32(c.b) * 0x101
	return r, g, b, 0xffff
}

// ToRGB returns c unchanged.
func (c RGB) ToRGB() RGB { return c }

// ToHSL converts c to HSL space.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Calculate Lightness as (max + min) / 2
//  4. Calculate Saturation based on lightness
//  5. Calculate Hue based on which component is max
//
// Gray values (max == min) get hue 0 and saturation 0. Results are not
// rounded, so repeated conversions may drift by a few ULPs.
func (c RGB) ToHSL() HSL {
	rf := float64(c.r) / 255.0
	gf := float64(c.g) / 255.0
	bf := float64(c.b) / 255.0

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))

	l := (max + min) / 2.0

	if max == min {
		return HSL{h: 0, s: 0, l: l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2.0 - max - min)
	} else {
		s = d / (max + min)
	}
	s = math.Min(s, 1)

	var h float64
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2.0
	case bf:
		h = (rf-gf)/d + 4.0
	}
	h *= 60

	return HSL{h: h, s: s * 100, l: l * 100}
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// String returns the same value as Hex.
func (c RGB) String() string { return c.Hex() }

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.r) / 255.0,
		G: float64(c.g) / 255.0,
		B: float64(c.b) / 255.0,
	}
}

func (RGB) sealed() {}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// Values are kept as float64 so that interpolated palette entries survive
// without rounding.
type HSL struct {
	h, s, l float64
}

// NewHSL creates an HSL color. Hue must lie in 0-360, saturation and
// lightness in 0-100.
func NewHSL(h, s, l float64) (HSL, error) {
	if !inRange(h, 360) || !inRange(s, 100) || !inRange(l, 100) {
		return HSL{}, fmt.Errorf("hsl(%g, %g%%, %g%%): %w", h, s, l, ErrInvalidColorComponent)
	}
	return HSL{h: h, s: s, l: l}, nil
}

// MustHSL is like NewHSL but panics on invalid input.
func MustHSL(h, s, l float64) HSL {
	c, err := NewHSL(h, s, l)
	if err != nil {
		panic(err)
	}
	return c
}

func inRange(v, max float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= max
}

// H returns the hue in degrees.
func (c HSL) H() float64 { return c.h }

// S returns the saturation in percent.
func (c HSL) S() float64 { return c.s }

// L returns the lightness in percent.
func (c HSL) L() float64 { return c.l }

// RGBA implements image/color.Color via ToRGB.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

// ToHSL returns c unchanged.
func (c HSL) ToHSL() HSL { return c }

// ToRGB converts c to 8-bit RGB using the chroma / hue sector formula.
//
// Hue is reduced modulo 360 first. Each channel is rounded to the nearest
// integer.
func (c HSL) ToRGB() RGB {
	h := math.Mod(c.h, 360)
	s := c.s / 100
	l := c.l / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r1, g1, b1 float64
	switch {
	case hp < 1:
		r1, g1, b1 = chroma, x, 0
	case hp < 2:
		r1, g1, b1 = x, chroma, 0
	case hp < 3:
		r1, g1, b1 = 0, chroma, x
	case hp < 4:
		r1, g1, b1 = 0, x, chroma
	case hp < 5:
		r1, g1, b1 = x, 0, chroma
	default:
		r1, g1, b1 = chroma, 0, x
	}

	m := l - chroma/2
	return RGB{
		r: to8bit(r1 + m),
		g: to8bit(g1 + m),
		b: to8bit(b1 + m),
	}
}

func to8bit(v float64) uint8 {
	v = math.Round(v * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// String returns "hsl(H, S%, L%)" with the shortest exact float formatting.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", formatFloat(c.h), formatFloat(c.s), formatFloat(c.l))
}

func (HSL) sealed() {}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Parse reads a color display string.
//
// Accepted forms:
//   - "#rrggbb" or "#rgb" (case-insensitive)
//   - "hsl(H, S%, L%)" (the percent signs are optional)
//
// Returns ErrInvalidColorComponent when the string is well formed but a value
// is out of range.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		if (len(s) != 4 && len(s) != 7) || !isHex(s[1:]) {
			return nil, fmt.Errorf("failed to parse color %q: want #rgb or #rrggbb", s)
		}
		cf, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return nil, fmt.Errorf("failed to parse color %q: %w", s, err)
		}
		r, g, b := cf.RGB255()
		c, err := NewRGB(int(r), int(g), int(b))
		if err != nil {
			return nil, err
		}
		return c, nil
	case strings.HasPrefix(strings.ToLower(s), "hsl(") && strings.HasSuffix(s, ")"):
		return parseHSL(s)
	default:
		return nil, fmt.Errorf("unrecognized color format %q", s)
	}
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func parseHSL(s string) (Color, error) {
	body := s[len("hsl(") : len(s)-1]
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("failed to parse color %q: expected 3 components", s)
	}

	var v [3]float64
	for i, p := range parts {
		p = strings.TrimSuffix(strings.TrimSpace(p), "%")
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse color %q: %w", s, err)
		}
		v[i] = f
	}

	c, err := NewHSL(v[0], v[1], v[2])
	if err != nil {
		return nil, err
	}
	return c, nil
}
