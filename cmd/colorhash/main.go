package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ironsheep/colorhash-mcp/internal/config"
	"github.com/ironsheep/colorhash-mcp/internal/logging"
	"github.com/ironsheep/colorhash-mcp/internal/matrix"
	"github.com/ironsheep/colorhash-mcp/internal/palette"
	"github.com/ironsheep/colorhash-mcp/internal/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// envPrefix namespaces the environment variables that fill unset flags,
// e.g. --square-size => COLORHASH_SQUARE_SIZE.
const envPrefix = "COLORHASH"

// globalOptions holds the flags shared by every command and the state built
// from them before a command runs.
type globalOptions struct {
	configPath string
	logLevel   string
	matrix     string
	palette    string
	algorithm  string
	squareSize int
	outputType string

	cfg     *config.Config
	catalog palette.Catalog
	logger  log.FieldLogger
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	ro := &renderOptions{global: opts}

	rootCmd := &cobra.Command{
		Use:   "colorhash [INPUT]",
		Short: "Turn a hash into a colored grid you can recognize at a glance",
		Long: `colorhash draws a deterministic picture of a cryptographic hash.

The same digest always yields the same picture, which makes fingerprints far
easier to compare by eye than long hex strings. Without a subcommand it
behaves like "colorhash render".

Every flag can also be set through the environment: --square-size is read
from ` + envPrefix + `_SQUARE_SIZE, --log-level from ` + envPrefix + `_LOG_LEVEL and so on.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return ro.run(cmd, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&opts.logLevel, "log-level", logging.DefaultLevel, "log level (panic, fatal, error, warn, info, debug, trace)")
	pf.StringVarP(&opts.matrix, "matrix", "m", "nibble", fmt.Sprintf("matrix strategy (%v)", matrix.Names()))
	pf.StringVarP(&opts.palette, "palette", "p", "auto", `palette name, or "auto" to pick one from the hash`)
	pf.StringVarP(&opts.algorithm, "hash", "a", "sha512", "hash algorithm for path and data input; checked against the digest for hash input")
	pf.IntVar(&opts.squareSize, "square-size", render.DefaultSquareSize, "pixels per grid cell for svg and png output")

	ro.addFlags(rootCmd)

	rootCmd.AddCommand(
		newRenderCmd(opts),
		newPalettesCmd(opts),
		newDetectCmd(),
		newCompareCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// setup resolves the effective configuration: flags override the environment,
// which overrides the config file, which overrides the defaults.
func (o *globalOptions) setup(cmd *cobra.Command) error {
	fs := cmd.Flags()
	if err := SetFlagsFromEnv(fs, envPrefix); err != nil {
		return fmt.Errorf("error setting flags from environment variables: %w", err)
	}

	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}

	if fs.Changed("matrix") {
		cfg.Matrix = o.matrix
	}
	if fs.Changed("palette") {
		cfg.Palette = o.palette
	}
	if fs.Changed("hash") {
		cfg.Algorithm = o.algorithm
	}
	if fs.Changed("square-size") {
		cfg.SquareSize = o.squareSize
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if fs.Lookup("output-type") != nil && fs.Changed("output-type") {
		cfg.Output = o.outputType
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, log.Fields{"app": "colorhash"})
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.catalog = catalog
	o.logger = logger
	logger.WithFields(log.Fields{
		"config":    o.configPath,
		"matrix":    cfg.Matrix,
		"palette":   cfg.Palette,
		"algorithm": cfg.Algorithm,
		"palettes":  len(catalog),
	}).Debug("Configuration loaded")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Printing the version must work even with a broken config.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "colorhash %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
