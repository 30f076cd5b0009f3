package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"mackerel/internal/buildpipeline"
	"mackerel/internal/driver"
	"mackerel/internal/logger"
	"mackerel/internal/prof"
	"mackerel/internal/project"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [dir]",
	Short: "Render every document of a project",
	Long: `Build renders every *.md file under the source directory into the output
directory, mirroring the layout. Settings come from the mackerel.toml that
governs [dir] (default: the current directory); flags override them. Without
a manifest, [dir] itself is the source directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().IntP("jobs", "j", 0, "parallel renders (0 = manifest value or GOMAXPROCS)")
	buildCmd.Flags().StringP("out", "o", "", "output directory (overrides [build].out)")
	buildCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	buildCmd.Flags().Bool("cache", false, "reuse rendered output from the disk cache")
	buildCmd.Flags().Bool("clear-cache", false, "empty the disk cache before building (implies --cache)")
	buildCmd.Flags().Bool("newlines", false, "put a newline after every block element")
	buildCmd.Flags().Bool("front-matter", false, "emit front matter as <meta> tags")
	buildCmd.Flags().String("cpu-profile", "", "write a CPU profile to this file")
	buildCmd.Flags().String("mem-profile", "", "write a heap profile to this file")
	buildCmd.Flags().String("runtime-trace", "", "write a runtime trace to this file")
}

func runBuild(cmd *cobra.Command, args []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	opts, err := buildOptionsFor(cmd, dir, g.log)
	if err != nil {
		return err
	}
	opts.Logger = g.log
	opts.MaxDiagnostics = g.maxDiagnostics
	if useCache || clearCache {
		opts.Cache, err = driver.OpenDiskCache("mackerel")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}
	if clearCache {
		if err := opts.Cache.DropAll(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		g.log.Info("cache cleared", "dir", opts.Cache.Dir())
	}

	profOpts, err := readProfileFlags(cmd)
	if err != nil {
		return err
	}
	session, err := prof.Start(profOpts)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Stop(); err != nil {
			g.log.Error("failed to finish profiling", "error", err)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var res *driver.BuildResult
	if shouldUseTUI(mode) && !g.quiet {
		files, err := driver.CollectSources(opts.Src)
		if err != nil {
			return err
		}
		// the TUI owns the terminal; keep only errors on stderr
		opts.Logger.SetLevel(maxLevel(opts.Logger.GetLevel()))
		res, err = runBuildWithUI(ctx, fmt.Sprintf("building %s", opts.Src), files, opts)
		if err != nil {
			return err
		}
	} else {
		opts.Progress = progressLogger(g.log)
		res, err = driver.BuildDir(ctx, opts)
		if err != nil {
			return fmt.Errorf("build failed: %w", err)
		}
	}

	stderr := cmd.ErrOrStderr()
	for _, fr := range res.Files {
		if fr.Err != nil {
			g.printDiagnostics(stderr, fr.Bag, fr.FileSet)
		}
	}
	if !g.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), res.Summary())
	}
	if g.timings {
		printStageTimings(stderr, res.Timings, res.Duration)
	}
	return res.Err()
}

// buildOptionsFor resolves source, output and render settings for dir:
// manifest values first, then command-line overrides.
func buildOptionsFor(cmd *cobra.Command, dir string, log *logger.Logger) (driver.BuildOptions, error) {
	var opts driver.BuildOptions

	manifest, found, err := project.LoadManifest(dir)
	if err != nil {
		return opts, err
	}
	if found {
		log.ConfigLoaded(manifest.Path, manifest.Config.Build.Jobs)
		opts.Src = manifest.SrcDir()
		opts.Out = manifest.OutDir()
		opts.Jobs = manifest.Config.Build.Jobs
		opts.Render = driver.RenderOptions{
			Newlines:    manifest.Config.Render.Newlines,
			FrontMatter: manifest.Config.Render.FrontMatter,
		}
	} else {
		opts.Src = dir
		opts.Out = filepath.Join(dir, project.Default("").Build.Out)
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		if opts.Out, err = flags.GetString("out"); err != nil {
			return opts, fmt.Errorf("failed to get out flag: %w", err)
		}
	}
	if flags.Changed("jobs") {
		if opts.Jobs, err = flags.GetInt("jobs"); err != nil {
			return opts, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if flags.Changed("newlines") {
		if opts.Render.Newlines, err = flags.GetBool("newlines"); err != nil {
			return opts, fmt.Errorf("failed to get newlines flag: %w", err)
		}
	}
	if flags.Changed("front-matter") {
		if opts.Render.FrontMatter, err = flags.GetBool("front-matter"); err != nil {
			return opts, fmt.Errorf("failed to get front-matter flag: %w", err)
		}
	}
	return opts, nil
}

// progressLogger reports finished files at debug level when no TUI is
// showing them.
func progressLogger(log *logger.Logger) buildpipeline.ProgressSink {
	return buildpipeline.FuncSink(func(evt buildpipeline.Event) {
		if evt.File == "" || !evt.Status.Finished() {
			return
		}
		log.FileFinished(evt.File, string(evt.Status), evt.Elapsed)
	})
}

func readProfileFlags(cmd *cobra.Command) (prof.Options, error) {
	var opts prof.Options
	var err error
	if opts.CPU, err = cmd.Flags().GetString("cpu-profile"); err != nil {
		return opts, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = cmd.Flags().GetString("mem-profile"); err != nil {
		return opts, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = cmd.Flags().GetString("runtime-trace"); err != nil {
		return opts, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	return opts, nil
}
