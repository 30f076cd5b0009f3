package main

import (
	"fmt"
	"io"
	"time"

	"mackerel/internal/buildpipeline"
	"mackerel/internal/observ"
)

// phaseTimer tracks single-file command phases; output is printed only when
// --timings is set.
type phaseTimer struct {
	enabled bool
	timer   *observ.Timer
}

func newPhaseTimer(enabled bool) *phaseTimer {
	return &phaseTimer{enabled: enabled, timer: observ.NewTimer()}
}

func (p *phaseTimer) Track(name string, fn func() error) error {
	return p.timer.Track(name, fn)
}

func (p *phaseTimer) print(out io.Writer) {
	if !p.enabled || out == nil {
		return
	}
	fmt.Fprint(out, p.timer.Summary())
}

// printStageTimings reports the accumulated per-stage time of a build.
// Stages run in parallel, so the sum can exceed wall time.
func printStageTimings(out io.Writer, timings buildpipeline.Timings, wall time.Duration) {
	if out == nil {
		return
	}
	labels := map[buildpipeline.Stage]string{
		buildpipeline.StageScan:   "scanned",
		buildpipeline.StageParse:  "parsed",
		buildpipeline.StageRender: "rendered",
		buildpipeline.StageWrite:  "written",
	}
	for _, stage := range buildpipeline.Stages {
		if !timings.Has(stage) {
			continue
		}
		fmt.Fprintf(out, "%-9s %.1f ms\n", labels[stage], toMillis(timings.Duration(stage)))
	}
	fmt.Fprintf(out, "%-9s %.1f ms (wall %.1f ms)\n", "total", toMillis(timings.Sum()), toMillis(wall))
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
