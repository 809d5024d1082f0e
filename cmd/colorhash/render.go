package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/colorhash-mcp/internal/fingerprint"
	"github.com/ironsheep/colorhash-mcp/internal/render"
)

const stdio = "-"

// Input types accepted by --input-type.
const (
	inputPath = "path"
	inputHash = "hash"
	inputData = "data"
)

type renderOptions struct {
	global    *globalOptions
	inputType string
	out       string
}

func newRenderCmd(global *globalOptions) *cobra.Command {
	ro := &renderOptions{global: global}
	cmd := &cobra.Command{
		Use:   "render [INPUT]",
		Short: "Render the fingerprint of a file, a hex digest or literal data",
		Long: `Render the fingerprint of INPUT.

INPUT is interpreted according to --input-type:
    path - read data from the file at INPUT ("-" or blank for stdin) and hash it
    hash - INPUT is a hex digest; its algorithm is inferred from its length
    data - hash INPUT itself

Output types:
    ansi - 24-bit true color for terminals
    svg  - SVG document
    png  - PNG image`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ro.run(cmd, args)
		},
	}
	ro.addFlags(cmd)
	return cmd
}

func (ro *renderOptions) addFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&ro.inputType, "input-type", "x", inputPath, "how INPUT is treated (path, hash, data)")
	fs.StringVarP(&ro.global.outputType, "output-type", "y", "ansi", fmt.Sprintf("output format (%s)", strings.Join(render.Formats(), ", ")))
	fs.StringVarP(&ro.out, "out", "o", stdio, `output file, "-" for stdout`)
}

func (ro *renderOptions) run(cmd *cobra.Command, args []string) error {
	g := ro.global

	input := stdio
	if len(args) > 0 && args[0] != "" {
		input = args[0]
	}

	fp, err := g.fingerprint(cmd, input, ro.inputType)
	if err != nil {
		return err
	}
	g.logger.WithFields(log.Fields{
		"algorithm":  fp.Algorithm,
		"digest":     fp.Hex(),
		"matricizer": fp.Matricizer,
		"palette":    fp.Palette.Name(),
		"output":     g.cfg.Output,
	}).Debug("Rendering fingerprint")

	w, err := render.ForFormat(g.cfg.Output, g.cfg.SquareSize)
	if err != nil {
		return err
	}

	if ro.out == stdio || ro.out == "" {
		return w.Write(cmd.OutOrStdout(), fp.Grid, fp.Palette)
	}
	if _, ok := w.(render.PNGWriter); ok {
		return render.SavePNG(ro.out, fp.Grid, fp.Palette, g.cfg.SquareSize)
	}

	f, err := os.Create(ro.out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := w.Write(f, fp.Grid, fp.Palette); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// fingerprint builds the fingerprint for input according to inputType.
func (o *globalOptions) fingerprint(cmd *cobra.Command, input, inputType string) (*fingerprint.Fingerprint, error) {
	opts := fingerprint.Options{
		Matrix:  o.cfg.Matrix,
		Palette: o.cfg.Palette,
		Catalog: o.catalog,
	}
	alg, err := o.cfg.HashAlgorithm()
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(inputType) {
	case inputPath:
		opts.Algorithm = alg
		r := cmd.InOrStdin()
		if input != stdio {
			f, err := os.Open(input)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			r = f
		}
		return fingerprint.FromReader(r, opts)

	case inputData:
		opts.Algorithm = alg
		return fingerprint.FromData([]byte(input), opts)

	case inputHash:
		// Only an explicit --hash is checked against the digest; the
		// configured default would reject every other digest length.
		if cmd.Flags().Changed("hash") {
			opts.Algorithm = alg
		}
		if input == stdio {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return nil, fmt.Errorf("failed to read digest: %w", err)
			}
			input = string(data)
		}
		return fingerprint.FromHex(input, opts)

	default:
		return nil, fmt.Errorf("unknown input type %q (want %s, %s or %s)", inputType, inputPath, inputHash, inputData)
	}
}
