package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mackerel/internal/diagfmt"
	"mackerel/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.md",
	Short: "Tokenize a markup file",
	Long:  `Tokenize breaks a markup file into its scanner tokens, with run lengths and spans.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}

	timer := newPhaseTimer(g.timings)
	var result *driver.TokenizeResult
	err = timer.Track("tokenize", func() error {
		var err error
		result, err = driver.Tokenize(filePath, g.maxDiagnostics)
		return err
	})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	g.printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet)

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	case "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	timer.print(cmd.ErrOrStderr())
	return nil
}
