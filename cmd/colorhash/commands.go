package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ironsheep/colorhash-mcp/internal/digest"
	"github.com/ironsheep/colorhash-mcp/internal/fingerprint"
	"github.com/ironsheep/colorhash-mcp/internal/palette"
	"github.com/ironsheep/colorhash-mcp/internal/render"
	"github.com/ironsheep/colorhash-mcp/internal/server"
)

func newPalettesCmd(global *globalOptions) *cobra.Command {
	var class string
	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List the available palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := global.catalog
			if class != "" {
				c, err := palette.ParseClass(class)
				if err != nil {
					return err
				}
				catalog = catalog.Filter(c)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCLASS\tFIRST\tLAST")
			for _, p := range catalog {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name(), p.Class(), p.At(0).ToRGB().Hex(), p.At(palette.Size-1).ToRGB().Hex())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&class, "class", "", "only list palettes of this class (gradient, multicolor)")
	return cmd
}

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect INPUT",
		Short: "Print the hash algorithm of a hex digest or algorithm name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := digest.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), alg)
			return nil
		},
	}
}

func newCompareCmd(global *globalOptions) *cobra.Command {
	var diffPath string
	cmd := &cobra.Command{
		Use:   "compare DIGEST DIGEST",
		Short: "Compare the fingerprints of two hex digests",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := fingerprint.Options{
				Matrix:  global.cfg.Matrix,
				Palette: global.cfg.Palette,
				Catalog: global.catalog,
			}
			a, err := fingerprint.FromHex(args[0], opts)
			if err != nil {
				return fmt.Errorf("first digest: %w", err)
			}
			b, err := fingerprint.FromHex(args[1], opts)
			if err != nil {
				return fmt.Errorf("second digest: %w", err)
			}

			result, err := render.Compare(a.Subject(), b.Subject(), global.cfg.SquareSize)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "identical:       %t\n", result.Identical)
			fmt.Fprintf(out, "same shape:      %t\n", result.SameShape)
			fmt.Fprintf(out, "cells different: %d/%d\n", result.CellsDifferent, result.TotalCells)
			fmt.Fprintf(out, "similarity:      %.3f\n", result.Similarity)

			if diffPath != "" {
				if result.DiffImage == nil {
					return fmt.Errorf("no difference image: fingerprints have different shapes")
				}
				raw, err := base64.StdEncoding.DecodeString(result.DiffImage.ImageBase64)
				if err != nil {
					return err
				}
				if err := os.WriteFile(diffPath, raw, 0o644); err != nil {
					return fmt.Errorf("failed to write difference image: %w", err)
				}
			}

			if !result.Identical {
				global.logger.WithField("cells_different", result.CellsDifferent).Debug("Fingerprints differ")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&diffPath, "diff", "", "write a PNG difference image to this path")
	return cmd
}

func newServeCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Run the MCP (Model Context Protocol) server.

The server communicates via JSON-RPC over stdin/stdout; logs go to stderr.
Configure it in your MCP client (e.g., Claude Desktop).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			global.logger.Infof("colorhash MCP server %s (built %s, commit %s)", Version, BuildTime, GitCommit)

			srv := server.New(global.cfg, global.catalog, global.logger)
			srv.SetVersion(Version)
			if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
}
