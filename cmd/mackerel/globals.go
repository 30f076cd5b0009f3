package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mackerel/internal/diag"
	"mackerel/internal/diagfmt"
	"mackerel/internal/logger"
	"mackerel/internal/source"
)

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on":
		return colorOn, nil
	case "off":
		return colorOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// enabled resolves auto against the given stream.
func (m colorMode) enabled(f *os.File) bool {
	switch m {
	case colorOn:
		return true
	case colorOff:
		return false
	default:
		return f != nil && isTerminal(f)
	}
}

// stdoutFile returns the command's output stream when it is a real file.
func stdoutFile(cmd *cobra.Command) *os.File {
	f, _ := cmd.OutOrStdout().(*os.File)
	return f
}

// globals holds the persistent flags after validation.
type globals struct {
	color          colorMode
	quiet          bool
	timings        bool
	maxDiagnostics int
	log            *logger.Logger
}

// applyGlobals validates the persistent flags and applies process-wide
// settings such as the fatih/color switch.
func applyGlobals(cmd *cobra.Command, _ []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	color.NoColor = !g.color.enabled(os.Stdout)
	return nil
}

func readGlobals(cmd *cobra.Command) (*globals, error) {
	flags := cmd.Root().PersistentFlags()

	colorValue, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := readColorMode(colorValue)
	if err != nil {
		return nil, err
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	levelValue, err := flags.GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	level, err := logger.ParseLevel(levelValue)
	if err != nil {
		return nil, err
	}
	if quiet && level < log.ErrorLevel {
		level = log.ErrorLevel
	}
	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	return &globals{
		color:          mode,
		quiet:          quiet,
		timings:        timings,
		maxDiagnostics: maxDiagnostics,
		log:            logger.NewWithLevel(cmd.ErrOrStderr(), level),
	}, nil
}

// printDiagnostics writes the bag to stderr in the pretty form.
func (g *globals) printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	bag.Dedup()
	diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:     g.color.enabled(os.Stderr),
		Context:   2,
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: true,
	})
}
