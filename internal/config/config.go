// Package config loads colorhash settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/colorhash-mcp/internal/digest"
	"github.com/ironsheep/colorhash-mcp/internal/fingerprint"
	"github.com/ironsheep/colorhash-mcp/internal/matrix"
	"github.com/ironsheep/colorhash-mcp/internal/palette"
	"github.com/ironsheep/colorhash-mcp/internal/render"
)

// Config holds the rendering defaults shared by the CLI and the MCP server.
type Config struct {
	Matrix       string   `yaml:"matrix"`
	Palette      string   `yaml:"palette"`
	Algorithm    string   `yaml:"algorithm"`
	SquareSize   int      `yaml:"square_size"`
	Output       string   `yaml:"output"`
	LogLevel     string   `yaml:"log_level"`
	PaletteFiles []string `yaml:"palette_files"`

	// catalog caches Catalog's result for the files listed in catalogKey.
	catalog    palette.Catalog
	catalogKey string
}

// Default returns the settings used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads path and fills unset fields with defaults. Relative
// palette_files entries are resolved against the directory of path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.applyDefaults()

	dir := filepath.Dir(path)
	for i, f := range cfg.PaletteFiles {
		if !filepath.IsAbs(f) {
			cfg.PaletteFiles[i] = filepath.Join(dir, f)
		}
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Matrix == "" {
		c.Matrix = "nibble"
	}
	if c.Palette == "" {
		c.Palette = fingerprint.AutoPalette
	}
	if c.Algorithm == "" {
		c.Algorithm = fingerprint.DefaultAlgorithm.String()
	}
	if c.SquareSize == 0 {
		c.SquareSize = render.DefaultSquareSize
	}
	if c.Output == "" {
		c.Output = "ansi"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := matrix.ByName(c.Matrix); err != nil {
		errs = append(errs, fmt.Errorf("matrix: %w", err))
	}
	if _, err := c.HashAlgorithm(); err != nil {
		errs = append(errs, fmt.Errorf("algorithm: %w", err))
	}
	if c.SquareSize < 1 {
		errs = append(errs, fmt.Errorf("square_size: %d: %w", c.SquareSize, render.ErrInvalidSquareSize))
	}
	if _, err := render.ForFormat(c.Output, c.SquareSize); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if catalog, err := c.Catalog(); err != nil {
		errs = append(errs, fmt.Errorf("palette_files: %w", err))
	} else if !strings.EqualFold(c.Palette, fingerprint.AutoPalette) {
		if _, err := catalog.Lookup(c.Palette); err != nil {
			errs = append(errs, fmt.Errorf("palette: %w", err))
		}
	}

	return errors.Join(errs...)
}

// HashAlgorithm parses the algorithm setting. Only algorithm names are
// accepted here, not digests.
func (c *Config) HashAlgorithm() (digest.Algorithm, error) {
	var alg digest.Algorithm
	if err := alg.UnmarshalText([]byte(c.Algorithm)); err != nil {
		return digest.Unknown, err
	}
	return alg, nil
}

// Catalog returns the built-in palettes merged with those defined in
// PaletteFiles, in file order. A palette in a later file replaces an earlier
// one of the same name.
//
// The files are read once; later calls return a copy of the cached catalog
// until PaletteFiles changes.
func (c *Config) Catalog() (palette.Catalog, error) {
	key := strings.Join(c.PaletteFiles, "\x00")
	if c.catalog == nil || c.catalogKey != key {
		catalog := palette.Default()
		for _, f := range c.PaletteFiles {
			extra, err := palette.LoadFile(f)
			if err != nil {
				return nil, err
			}
			catalog = catalog.Merge(extra)
		}
		c.catalog, c.catalogKey = catalog, key
	}
	return append(palette.Catalog(nil), c.catalog...), nil
}
