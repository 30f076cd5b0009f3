package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mackerel/internal/driver"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] file.md",
	Short: "Render a markup file to HTML",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "write HTML to this file instead of stdout")
	renderCmd.Flags().Bool("newlines", false, "put a newline after every block element")
	renderCmd.Flags().Bool("front-matter", false, "emit front matter as <meta> tags")
	renderCmd.Flags().Bool("cache", false, "reuse rendered output from the disk cache")
}

func runRender(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	newlines, err := cmd.Flags().GetBool("newlines")
	if err != nil {
		return fmt.Errorf("failed to get newlines flag: %w", err)
	}
	frontMatter, err := cmd.Flags().GetBool("front-matter")
	if err != nil {
		return fmt.Errorf("failed to get front-matter flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if useCache {
		cache, err = driver.OpenDiskCache("mackerel")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}

	opts := driver.RenderOptions{Newlines: newlines, FrontMatter: frontMatter}
	timer := newPhaseTimer(g.timings)
	var result *driver.RenderResult
	err = timer.Track("render", func() error {
		var err error
		result, err = driver.RenderFile(filePath, opts, cache, g.maxDiagnostics)
		return err
	})
	if err != nil {
		if result != nil {
			g.printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet)
		}
		return fmt.Errorf("render failed: %w", err)
	}
	if result.Cached {
		g.log.CacheHit(filePath, opts.CacheKey(result.File.Hash).String())
	}

	err = timer.Track("write", func() error {
		if output == "" {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), result.HTML)
			return err
		}
		if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
			return err
		}
		return os.WriteFile(output, []byte(result.HTML), 0o644)
	})
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if output != "" {
		g.log.FileRendered(filePath, output)
	}
	timer.print(cmd.ErrOrStderr())
	return nil
}
