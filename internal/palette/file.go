package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/colorhash-mcp/internal/colorspace"
)

// Definition describes one palette in a palette file.
//
//	- name: ocean
//	  class: gradient
//	  start: "hsl(200, 80%, 10%)"
//	  end: "hsl(200, 80%, 60%)"
//	  reverse: false
//
// Start and end accept any form colorspace.Parse understands; RGB values are
// converted to HSL before interpolation. Reverse swaps them.
type Definition struct {
	Name    string `yaml:"name"`
	Class   string `yaml:"class"`
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
	Reverse bool   `yaml:"reverse"`
}

// Build turns the definition into a palette.
func (d Definition) Build() (Palette, error) {
	if d.Name == "" {
		return Palette{}, fmt.Errorf("palette definition is missing a name")
	}
	class := Gradient
	if d.Class != "" {
		var err error
		if class, err = ParseClass(d.Class); err != nil {
			return Palette{}, fmt.Errorf("palette %q: %w", d.Name, err)
		}
	}
	start, err := colorspace.Parse(d.Start)
	if err != nil {
		return Palette{}, fmt.Errorf("palette %q start: %w", d.Name, err)
	}
	end, err := colorspace.Parse(d.End)
	if err != nil {
		return Palette{}, fmt.Errorf("palette %q end: %w", d.Name, err)
	}
	if d.Reverse {
		start, end = end, start
	}
	return New(d.Name, class, start.ToHSL(), end.ToHSL()), nil
}

// File is the top-level layout of a palette file.
type File struct {
	Palettes []Definition `yaml:"palettes"`
}

// Parse builds a catalog from palette file contents.
func Parse(data []byte) (Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse palette file: %w", err)
	}

	seen := make(map[string]bool, len(f.Palettes))
	catalog := make(Catalog, 0, len(f.Palettes))
	for _, d := range f.Palettes {
		if seen[d.Name] {
			return nil, fmt.Errorf("duplicate palette %q", d.Name)
		}
		seen[d.Name] = true

		p, err := d.Build()
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, p)
	}
	return catalog, nil
}

// LoadFile reads and parses a YAML palette file.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}
	catalog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}
