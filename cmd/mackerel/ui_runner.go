package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"mackerel/internal/buildpipeline"
	"mackerel/internal/driver"
	"mackerel/internal/ui"
)

type buildOutcome struct {
	result *driver.BuildResult
	err    error
}

type buildFunc func(context.Context, driver.BuildOptions) (*driver.BuildResult, error)

func runBuildWithUI(ctx context.Context, title string, files []string, opts driver.BuildOptions) (*driver.BuildResult, error) {
	return superviseBuild(ctx, opts, driver.BuildDir, func(events <-chan buildpipeline.Event) error {
		model := ui.NewProgressModel(title, files, events)
		program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
		_, err := program.Run()
		return err
	})
}

// superviseBuild runs build in the background while show consumes its
// progress events. When show returns, whether because the build finished
// or because the user quit, the build context is canceled so no new files
// are started.
func superviseBuild(ctx context.Context, opts driver.BuildOptions, build buildFunc, show func(<-chan buildpipeline.Event) error) (*driver.BuildResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan buildpipeline.Event, 256)
	outcomeCh := make(chan buildOutcome, 1)

	go func() {
		opts.Progress = buildpipeline.ChannelSink{Ch: events}
		res, err := build(ctx, opts)
		outcomeCh <- buildOutcome{result: res, err: err}
		close(events)
	}()

	uiErr := show(events)
	cancel()
	// the build may still be sending if the UI was interrupted
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
