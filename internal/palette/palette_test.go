package palette

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/colorhash-mcp/internal/colorspace"
)

func TestBuildRamp_Endpoints(t *testing.T) {
	tests := []struct {
		name       string
		start, end colorspace.HSL
	}{
		{"lightness ramp", colorspace.MustHSL(0, 100, 50), colorspace.MustHSL(0, 100, 100)},
		{"full sweep", colorspace.MustHSL(0, 100, 50), colorspace.MustHSL(360, 100, 50)},
		{"reverse sweep", colorspace.MustHSL(360, 100, 50), colorspace.MustHSL(0, 100, 50)},
		{"odd values", colorspace.MustHSL(12.3, 45.6, 78.9), colorspace.MustHSL(98.7, 6.5, 4.3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ramp := BuildRamp(tt.start, tt.end, 16)
			require.Len(t, ramp, 16)
			assert.Equal(t, tt.start, ramp[0])
			assert.Equal(t, tt.end, ramp[15])
		})
	}
}

func TestBuildRamp_Linear(t *testing.T) {
	ramp := BuildRamp(colorspace.MustHSL(0, 100, 0), colorspace.MustHSL(0, 100, 50), 16)
	for i, c := range ramp {
		assert.InDelta(t, float64(i)*50/15, c.L(), 1e-12, "step %d", i)
		assert.Equal(t, 0.0, c.H())
		assert.Equal(t, 100.0, c.S())
	}
}

func TestBuildRamp_HueSweepsLongWay(t *testing.T) {
	// No shortest-arc logic: 350 -> 10 goes backwards through 180.
	ramp := BuildRamp(colorspace.MustHSL(350, 100, 50), colorspace.MustHSL(10, 100, 50), 5)
	want := []float64{350, 265, 180, 95, 10}
	for i, c := range ramp {
		assert.InDelta(t, want[i], c.H(), 1e-9)
	}
}

func TestBuildRamp_SmallSteps(t *testing.T) {
	a := colorspace.MustHSL(1, 2, 3)
	b := colorspace.MustHSL(4, 5, 6)
	assert.Nil(t, BuildRamp(a, b, 0))
	assert.Equal(t, []colorspace.HSL{a}, BuildRamp(a, b, 1))
	assert.Equal(t, []colorspace.HSL{a, b}, BuildRamp(a, b, 2))
}

func TestDefault_CatalogOrder(t *testing.T) {
	want := []string{
		"red-light", "red-dark",
		"orange-light", "orange-dark",
		"yellow-dark",
		"green-light", "green-dark",
		"cyan-light", "cyan-dark",
		"blue-light", "blue-dark",
		"purple-light", "purple-dark",
		"magenta-light", "magenta-dark",
		"pink-light", "pink-dark",
		"gray-light", "gray-dark",
		"rainbow", "rainbow-reverse",
	}
	assert.Equal(t, want, Default().Names())
	assert.Len(t, GradientPalettes(), 19)
	assert.Len(t, MulticolorPalettes(), 2)
}

func TestDefault_GradientLightness(t *testing.T) {
	for _, p := range GradientPalettes() {
		first, last := p.At(0), p.At(Size-1)
		assert.Equal(t, first.H(), last.H(), p.Name())
		assert.Equal(t, first.S(), last.S(), p.Name())

		switch {
		case strings.HasSuffix(p.Name(), "-light"):
			assert.Equal(t, 50.0, first.L(), p.Name())
			assert.Equal(t, 100.0, last.L(), p.Name())
		case strings.HasSuffix(p.Name(), "-dark"):
			assert.Equal(t, 0.0, first.L(), p.Name())
			assert.Equal(t, 50.0, last.L(), p.Name())
		default:
			t.Errorf("gradient %q is neither light nor dark", p.Name())
		}
	}

	_, err := Default().Lookup("yellow-light")
	assert.ErrorIs(t, err, ErrUnknownPalette)
	for _, name := range []string{"lime-dark", "seafoam-light", "teal-dark"} {
		_, err := Default().Lookup(name)
		assert.Error(t, err, name)
	}
}

func TestDefault_Classes(t *testing.T) {
	for _, p := range GradientPalettes() {
		assert.Equal(t, Gradient, p.Class(), p.Name())
	}
	for _, p := range MulticolorPalettes() {
		assert.Equal(t, Multicolor, p.Class(), p.Name())
	}
	assert.Equal(t, GradientPalettes(), ForClass(Gradient))
	assert.Equal(t, MulticolorPalettes(), ForClass(Multicolor))
	assert.Equal(t, GradientPalettes(), Default().Filter(Gradient))
}

func TestDefault_Endpoints(t *testing.T) {
	catalog := Default()

	light, err := catalog.Lookup("orange-light")
	require.NoError(t, err)
	assert.Equal(t, colorspace.MustHSL(30, 100, 50), light.At(0))
	assert.Equal(t, colorspace.MustHSL(30, 100, 100), light.At(15))

	dark, err := catalog.Lookup("gray-dark")
	require.NoError(t, err)
	assert.Equal(t, colorspace.MustHSL(0, 0, 0), dark.At(0))
	assert.Equal(t, colorspace.MustHSL(0, 0, 50), dark.At(15))

	rainbow, err := catalog.Lookup("rainbow")
	require.NoError(t, err)
	assert.InDelta(t, 192, rainbow.At(8).H(), 1e-9)
	assert.Equal(t, 100.0, rainbow.At(8).S())

	reverse, err := catalog.Lookup("rainbow-reverse")
	require.NoError(t, err)
	for i := 0; i < Size; i++ {
		assert.InDelta(t, rainbow.At(Size-1-i).H(), reverse.At(i).H(), 1e-9)
	}
}

func TestDefault_CopiesAreIndependent(t *testing.T) {
	a := Default()
	a[0], a[1] = a[1], a[0]
	assert.Equal(t, "red-light", Default()[0].Name())
}

func TestDefault_Deterministic(t *testing.T) {
	before := Default()
	gradient, multicolor = nil, nil
	buildRegistry()
	assert.Equal(t, before, Default())
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Default().Lookup("yellow-light")
	assert.ErrorIs(t, err, ErrUnknownPalette)
}

func TestSelect(t *testing.T) {
	catalog := Default()

	_, err := Catalog(nil).Select([]byte{1})
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	p, err := catalog.Select([]byte{0, 0})
	require.NoError(t, err)
	assert.Equal(t, "red-light", p.Name())

	p, err = catalog.Select([]byte{20})
	require.NoError(t, err)
	assert.Equal(t, "rainbow-reverse", p.Name())

	// Byte sums 5 and 26 are congruent modulo 21.
	a, err := catalog.Select([]byte{5})
	require.NoError(t, err)
	b, err := catalog.Select([]byte{13, 13})
	require.NoError(t, err)
	assert.Equal(t, a.Name(), b.Name())
}

func TestSelect_LargeSum(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = 0xff
	}
	// 64 * 255 = 16320; 16320 % 19 = 18
	p, err := GradientPalettes().Select(data)
	require.NoError(t, err)
	assert.Equal(t, "gray-dark", p.Name())
}

func TestMerge(t *testing.T) {
	custom := New("red-light", Gradient, colorspace.MustHSL(5, 50, 50), colorspace.MustHSL(5, 50, 90))
	extra := New("ocean", Gradient, colorspace.MustHSL(200, 80, 10), colorspace.MustHSL(200, 80, 60))

	merged := Default().Merge(Catalog{custom, extra})
	require.Len(t, merged, 22)
	assert.Equal(t, custom, merged[0])
	assert.Equal(t, "ocean", merged[21].Name())
	assert.Equal(t, "red-light", Default()[0].Name())
	assert.NotEqual(t, custom, Default()[0])
}

func TestClass_Text(t *testing.T) {
	for _, c := range []Class{Gradient, Multicolor} {
		text, err := c.MarshalText()
		require.NoError(t, err)
		var got Class
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, c, got)
	}
	_, err := ParseClass("sepia")
	assert.Error(t, err)
}

func TestPalette_MarshalJSON(t *testing.T) {
	p, err := Default().Lookup("red-dark")
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded struct {
		Name   string   `json:"name"`
		Class  string   `json:"class"`
		Colors []string `json:"colors"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "red-dark", decoded.Name)
	assert.Equal(t, "gradient", decoded.Class)
	require.Len(t, decoded.Colors, Size)
	assert.Equal(t, "hsl(0, 100%, 0%)", decoded.Colors[0])
	assert.Equal(t, "hsl(0, 100%, 50%)", decoded.Colors[15])
}

func TestPalette_ColorsIsCopy(t *testing.T) {
	p := Default()[0]
	colors := p.Colors()
	colors[0] = colorspace.MustHSL(1, 1, 1)
	assert.Equal(t, colorspace.MustHSL(0, 100, 50), p.At(0))
	assert.Equal(t, Size, p.Len())
	assert.Equal(t, 0, Palette{}.Len())
}

const paletteFile = `
palettes:
  - name: ocean
    class: gradient
    start: "hsl(200, 80%, 10%)"
    end: "hsl(200, 80%, 60%)"
  - name: sunset
    class: multicolor
    start: "#ff0000"
    end: "hsl(300, 100%, 50%)"
`

func TestParse_PaletteFile(t *testing.T) {
	catalog, err := Parse([]byte(paletteFile))
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	ocean := catalog[0]
	assert.Equal(t, "ocean", ocean.Name())
	assert.Equal(t, Gradient, ocean.Class())
	assert.Equal(t, colorspace.MustHSL(200, 80, 10), ocean.At(0))
	assert.Equal(t, colorspace.MustHSL(200, 80, 60), ocean.At(15))

	sunset := catalog[1]
	assert.Equal(t, Multicolor, sunset.Class())
	assert.Equal(t, colorspace.MustHSL(0, 100, 50), sunset.At(0))
}

func TestParse_Reverse(t *testing.T) {
	data := "palettes:\n  - name: dusk\n    start: 'hsl(240, 50%, 10%)'\n    end: 'hsl(240, 50%, 60%)'\n    reverse: true\n"

	catalog, err := Parse([]byte(data))
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, colorspace.MustHSL(240, 50, 60), catalog[0].At(0))
	assert.Equal(t, colorspace.MustHSL(240, 50, 10), catalog[0].At(Size-1))
}

func TestParse_PaletteFileErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "palettes: [}"},
		{"missing name", "palettes:\n  - start: '#000'\n    end: '#fff'\n"},
		{"bad class", "palettes:\n  - name: x\n    class: sepia\n    start: '#000'\n    end: '#fff'\n"},
		{"bad color", "palettes:\n  - name: x\n    start: 'blue'\n    end: '#fff'\n"},
		{"duplicate", "palettes:\n  - name: x\n    start: '#000'\n    end: '#fff'\n  - name: x\n    start: '#000'\n    end: '#fff'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palettes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(paletteFile), 0o644))

	catalog, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ocean", "sunset"}, catalog.Names())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
