package colorspace

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRGB_Range(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		wantErr bool
	}{
		{"black", 0, 0, 0, false},
		{"white", 255, 255, 255, false},
		{"red too large", 256, 0, 0, true},
		{"green negative", 0, -1, 0, true},
		{"blue too large", 0, 0, 300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRGB(tt.r, tt.g, tt.b)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidColorComponent))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewHSL_Range(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		wantErr bool
	}{
		{"red", 0, 100, 50, false},
		{"full sweep endpoint", 360, 100, 50, false},
		{"hue too large", 361, 100, 50, true},
		{"negative saturation", 0, -0.5, 50, true},
		{"lightness too large", 0, 0, 100.01, true},
		{"nan hue", math.NaN(), 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHSL(tt.h, tt.s, tt.l)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColorComponent)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMustHSL_Panics(t *testing.T) {
	assert.Panics(t, func() { MustHSL(0, 200, 0) })
	assert.NotPanics(t, func() { MustHSL(0, 100, 0) })
}

func TestRGB_ToHSL_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		rgb     RGB
		h, s, l float64
	}{
		{"pure red", MustRGB(255, 0, 0), 0, 100, 50},
		{"pure green", MustRGB(0, 255, 0), 120, 100, 50},
		{"pure blue", MustRGB(0, 0, 255), 240, 100, 50},
		{"white", MustRGB(255, 255, 255), 0, 0, 100},
		{"black", MustRGB(0, 0, 0), 0, 0, 0},
		{"magenta", MustRGB(255, 0, 255), 300, 100, 50},
		{"light magenta", MustRGB(255, 128, 255), 300, 100, 75.098039},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rgb.ToHSL()
			assert.InDelta(t, tt.h, got.H(), 1e-4, "hue")
			assert.InDelta(t, tt.s, got.S(), 1e-4, "saturation")
			assert.InDelta(t, tt.l, got.L(), 1e-4, "lightness")
		})
	}
}

func TestRGB_ToHSL_GrayIsAchromatic(t *testing.T) {
	for _, v := range []int{0, 1, 64, 128, 200, 255} {
		got := MustRGB(v, v, v).ToHSL()
		assert.Equal(t, 0.0, got.H(), "gray %d hue", v)
		assert.Equal(t, 0.0, got.S(), "gray %d saturation", v)
	}
}

func TestHSL_ToRGB_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		hsl     HSL
		r, g, b uint8
	}{
		{"red", MustHSL(0, 100, 50), 255, 0, 0},
		{"red via 360", MustHSL(360, 100, 50), 255, 0, 0},
		{"yellow", MustHSL(60, 100, 50), 255, 255, 0},
		{"cyan", MustHSL(180, 100, 50), 0, 255, 255},
		{"dark green", MustHSL(120, 50, 25), 32, 96, 32},
		{"white", MustHSL(0, 100, 100), 255, 255, 255},
		{"black", MustHSL(240, 100, 0), 0, 0, 0},
		{"gray", MustHSL(0, 0, 50), 128, 128, 128},
		{"orange", MustHSL(30, 100, 50), 255, 128, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.hsl.ToRGB()
			assert.Equal(t, tt.r, got.R(), "red")
			assert.Equal(t, tt.g, got.G(), "green")
			assert.Equal(t, tt.b, got.B(), "blue")
		})
	}
}

func TestRoundTrip_RGB(t *testing.T) {
	within := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -1 && d <= 1
	}

	for r := 0; r <= 255; r += 5 {
		for g := 0; g <= 255; g += 5 {
			for b := 0; b <= 255; b += 5 {
				in := MustRGB(r, g, b)
				out := in.ToHSL().ToRGB()
				if !within(in.R(), out.R()) || !within(in.G(), out.G()) || !within(in.B(), out.B()) {
					t.Fatalf("round trip %v -> %v -> %v", in, in.ToHSL(), out)
				}
			}
		}
	}
}

func TestRoundTrip_LightnessDrift(t *testing.T) {
	// Converting through 8-bit RGB quantizes lightness; the drift is expected.
	c := MustHSL(120, 50, 25)
	back := c.ToRGB().ToHSL()
	assert.InDelta(t, 120, back.H(), 1e-9)
	assert.InDelta(t, 25, back.L(), 0.2)
}

func TestHSL_ToHSL_Identity(t *testing.T) {
	c := MustHSL(123.456, 78.9, 12.3)
	assert.Equal(t, c, c.ToHSL())
}

func TestRGBA_ImplementsColor(t *testing.T) {
	var c color.Color = MustRGB(255, 128, 0)
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0x8080), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)

	nrgba := color.NRGBAModel.Convert(MustHSL(0, 100, 50)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, nrgba)
}

func TestString_Parse(t *testing.T) {
	colors := []Color{
		MustRGB(255, 128, 64),
		MustRGB(0, 0, 0),
		MustHSL(0, 100, 50),
		MustHSL(333.3333333333333, 100, 96.66666666666667),
	}

	for _, c := range colors {
		t.Run(c.String(), func(t *testing.T) {
			parsed, err := Parse(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		})
	}
}

func TestString_Format(t *testing.T) {
	assert.Equal(t, "#ff8040", MustRGB(255, 128, 64).String())
	assert.Equal(t, "hsl(30, 100%, 50%)", MustHSL(30, 100, 50).String())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantRange bool
	}{
		{"empty", "", false},
		{"garbage", "rgb(1,2,3)", false},
		{"bad hex", "#zzzzzz", false},
		{"short hex", "#12345", false},
		{"trailing garbage", "#123456zz", false},
		{"long hex", "#1234567", false},
		{"two digit hex", "#12", false},
		{"bare hash", "#", false},
		{"short hex with garbage", "#12g", false},
		{"too few hsl parts", "hsl(1, 2%)", false},
		{"non numeric", "hsl(a, 2%, 3%)", false},
		{"hsl out of range", "hsl(0, 150%, 50%)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.wantRange, errors.Is(err, ErrInvalidColorComponent))
		})
	}
}

func TestParse_ShortHexAndCase(t *testing.T) {
	c, err := Parse("#F80")
	require.NoError(t, err)
	assert.Equal(t, MustRGB(255, 136, 0), c)

	c, err = Parse("  #FF8040 ")
	require.NoError(t, err)
	assert.Equal(t, MustRGB(255, 128, 64), c)
}
