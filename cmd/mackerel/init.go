package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mackerel/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new mackerel project",
	Long: `Initialize a new mackerel project by creating a project manifest
(mackerel.toml) and the source directory with an index.md page. If [path|name]
is omitted, initializes the current directory. A non-existing directory is
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const starterPage = `---
title: Home
---
# Welcome

This page was created by *mackerel init*. Run **mackerel build** to render it.
`

// runInit writes mackerel.toml and a starter page into the target directory.
// It refuses to overwrite an existing manifest.
func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "mackerel-site"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	cfg := project.Default(name)
	f, err := os.OpenFile(manifestPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", manifestPath, err)
	}
	if err := cfg.Encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	created := []string{project.ManifestName}
	srcDir := filepath.Join(target, filepath.FromSlash(cfg.Build.Src))
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", srcDir, err)
	}
	indexPath := filepath.Join(srcDir, "index.md")
	if _, err := os.Stat(indexPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(indexPath, []byte(starterPage), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", indexPath, err)
		}
		created = append(created, filepath.ToSlash(filepath.Join(cfg.Build.Src, "index.md")))
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "initialized %s in %s\n", name, target)
		for _, file := range created {
			fmt.Fprintf(out, "  created %s\n", file)
		}
	}
	return nil
}
