package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mackerel/internal/diagfmt"
	"mackerel/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.md",
	Short: "Parse a markup file and print its document tree",
	Long: `Parse scans and parses a markup file. On success the document tree is
printed; on failure the syntax error is shown with its source location.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json|yaml|pp)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "tree", "json", "yaml", "pp":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}

	timer := newPhaseTimer(g.timings)
	var result *driver.ParseResult
	err = timer.Track("parse", func() error {
		var err error
		result, err = driver.Parse(filePath, g.maxDiagnostics)
		return err
	})
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	if result.Err != nil {
		g.printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet)
		return fmt.Errorf("parse failed: %w", result.Err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = diagfmt.FormatTreeJSON(out, result.Document)
	case "yaml":
		err = diagfmt.FormatTreeYAML(out, result.Document)
	case "pp":
		err = diagfmt.FormatTreePP(out, result.Document, g.color.enabled(stdoutFile(cmd)))
	default:
		err = diagfmt.FormatTreePretty(out, result.Document, result.File.Path)
	}
	if err != nil {
		return err
	}
	timer.print(cmd.ErrOrStderr())
	return nil
}
