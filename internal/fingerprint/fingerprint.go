// Package fingerprint ties the digest, matrix and palette packages together
// into the single operation callers usually want: turn a digest (or the data
// to be digested) into a colored grid.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/ironsheep/colorhash-mcp/internal/colorspace"
	"github.com/ironsheep/colorhash-mcp/internal/digest"
	"github.com/ironsheep/colorhash-mcp/internal/matrix"
	"github.com/ironsheep/colorhash-mcp/internal/palette"
	"github.com/ironsheep/colorhash-mcp/internal/render"
)

// AutoPalette selects a palette from the digest itself.
const AutoPalette = "auto"

// DefaultAlgorithm is used to hash raw data when no algorithm is given.
const DefaultAlgorithm = digest.SHA512

// Options controls how a fingerprint is built.
type Options struct {
	// Matrix names the matricizer; empty means nibble.
	Matrix string
	// Palette is a palette name, or AutoPalette (also the empty default).
	Palette string
	// Algorithm, when set, must agree with the digest being fingerprinted.
	// For FromData and FromReader it picks the hash; zero means
	// DefaultAlgorithm.
	Algorithm digest.Algorithm
	// Catalog is searched for palettes; nil means the built-in catalog.
	Catalog palette.Catalog
}

// Fingerprint is a digest laid out as a grid together with the palette used
// to color it.
type Fingerprint struct {
	Algorithm  digest.Algorithm
	Digest     []byte
	Grid       *matrix.Grid
	Palette    palette.Palette
	Matricizer string
}

// Hex returns the digest as lowercase hex.
func (f *Fingerprint) Hex() string {
	return hex.EncodeToString(f.Digest)
}

// Colors returns the grid with every cell replaced by its palette color,
// indexed [row][column].
func (f *Fingerprint) Colors() ([][]colorspace.RGB, error) {
	return render.Colorize(f.Grid, f.Palette)
}

// Subject returns the fingerprint in the form render.Compare accepts.
func (f *Fingerprint) Subject() render.Subject {
	return render.Subject{Grid: f.Grid, Palette: f.Palette}
}

// FromHex builds a fingerprint from a hex digest. The algorithm is inferred
// from the digest length.
func FromHex(input string, opts Options) (*Fingerprint, error) {
	input = strings.TrimSpace(input)
	data, err := digest.Decode(input)
	if err != nil {
		return nil, err
	}

	alg := digest.Detect(input)
	if !alg.Valid() {
		return nil, fmt.Errorf("%d-character digest: %w", len(input), digest.ErrUnknownAlgorithm)
	}
	if opts.Algorithm != digest.Unknown && opts.Algorithm != alg {
		return nil, fmt.Errorf("digest looks like %s, not %s: %w", alg, opts.Algorithm, matrix.ErrLengthMismatch)
	}

	return build(alg, data, opts)
}

// FromData hashes data and fingerprints the result.
func FromData(data []byte, opts Options) (*Fingerprint, error) {
	alg := hashAlgorithm(opts)
	sum, err := digest.Sum(alg, data)
	if err != nil {
		return nil, err
	}
	return build(alg, sum, opts)
}

// FromReader hashes everything read from r and fingerprints the result.
func FromReader(r io.Reader, opts Options) (*Fingerprint, error) {
	alg := hashAlgorithm(opts)
	sum, err := digest.SumReader(alg, r)
	if err != nil {
		return nil, err
	}
	return build(alg, sum, opts)
}

// FromDigest fingerprints an already computed digest.
func FromDigest(alg digest.Algorithm, sum []byte, opts Options) (*Fingerprint, error) {
	if !alg.Valid() {
		return nil, fmt.Errorf("%s: %w", alg, digest.ErrUnknownAlgorithm)
	}
	return build(alg, sum, opts)
}

func hashAlgorithm(opts Options) digest.Algorithm {
	if opts.Algorithm == digest.Unknown {
		return DefaultAlgorithm
	}
	return opts.Algorithm
}

func build(alg digest.Algorithm, data []byte, opts Options) (*Fingerprint, error) {
	m, err := matrix.ByName(opts.Matrix)
	if err != nil {
		return nil, err
	}

	grid, err := m.Matricize(data, alg)
	if err != nil {
		return nil, err
	}

	p, err := choosePalette(m, data, opts)
	if err != nil {
		return nil, err
	}

	return &Fingerprint{
		Algorithm:  alg,
		Digest:     append([]byte(nil), data...),
		Grid:       grid,
		Palette:    p,
		Matricizer: m.Name(),
	}, nil
}

func choosePalette(m matrix.Matricizer, data []byte, opts Options) (palette.Palette, error) {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = palette.Default()
	}

	if opts.Palette == "" || strings.EqualFold(opts.Palette, AutoPalette) {
		p, err := catalog.Filter(m.Class()).Select(data)
		if err != nil {
			return palette.Palette{}, fmt.Errorf("no %s palettes available: %w", m.Class(), err)
		}
		return p, nil
	}
	return catalog.Lookup(opts.Palette)
}
