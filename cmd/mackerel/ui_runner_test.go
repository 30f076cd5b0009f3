package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"mackerel/internal/buildpipeline"
	"mackerel/internal/driver"
)

func TestSuperviseBuildCancelsWhenUIQuits(t *testing.T) {
	started := make(chan struct{})
	build := func(ctx context.Context, opts driver.BuildOptions) (*driver.BuildResult, error) {
		opts.Progress.OnEvent(buildpipeline.Event{File: "a.md", Status: buildpipeline.StatusQueued})
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}
	quit := func(events <-chan buildpipeline.Event) error {
		<-started
		return nil
	}

	done := make(chan error, 1)
	go func() {
		_, err := superviseBuild(context.Background(), driver.BuildOptions{}, build, quit)
		done <- err
	}()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("build kept running after the UI quit")
	}
}

func TestSuperviseBuildReturnsResult(t *testing.T) {
	want := &driver.BuildResult{Rendered: 2}
	build := func(ctx context.Context, opts driver.BuildOptions) (*driver.BuildResult, error) {
		for _, f := range []string{"a.md", "b.md"} {
			opts.Progress.OnEvent(buildpipeline.Event{File: f, Status: buildpipeline.StatusDone})
		}
		return want, nil
	}
	var seen int
	show := func(events <-chan buildpipeline.Event) error {
		for range events {
			seen++
		}
		return nil
	}

	res, err := superviseBuild(context.Background(), driver.BuildOptions{}, build, show)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != want || seen != 2 {
		t.Fatalf("result %+v after %d events", res, seen)
	}
}

func TestSuperviseBuildPrefersUIError(t *testing.T) {
	uiErr := errors.New("terminal gone")
	build := func(ctx context.Context, opts driver.BuildOptions) (*driver.BuildResult, error) {
		return &driver.BuildResult{}, nil
	}
	_, err := superviseBuild(context.Background(), driver.BuildOptions{}, build, func(<-chan buildpipeline.Event) error {
		return uiErr
	})
	if !errors.Is(err, uiErr) {
		t.Fatalf("expected UI error, got %v", err)
	}
}
