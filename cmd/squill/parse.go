package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"squill/internal/diagfmt"
	"squill/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.sql",
	Short: "Parse a SQL file into its segment tree",
	Long:  `Parse builds the loose syntax tree squill lints against and prints it`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := effectiveMaxDiagnostics(cmd, filePath)
	if err != nil {
		return err
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTreePretty(os.Stdout, result.Root, result.FileSet)
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, result.Root)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
