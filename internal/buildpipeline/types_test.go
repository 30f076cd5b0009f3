package buildpipeline

import (
	"testing"
	"time"
)

func TestTimingsAccumulate(t *testing.T) {
	var tm Timings
	if tm.Has(StageParse) {
		t.Fatal("empty timings must not report stages")
	}
	tm.Add(StageParse, 2*time.Millisecond)
	tm.Add(StageParse, 3*time.Millisecond)
	tm.Add(StageRender, time.Millisecond)

	if got := tm.Duration(StageParse); got != 5*time.Millisecond {
		t.Fatalf("parse duration = %v", got)
	}
	if got := tm.Sum(); got != 6*time.Millisecond {
		t.Fatalf("total = %v", got)
	}
	if got := tm.Sum(StageRender, StageWrite); got != time.Millisecond {
		t.Fatalf("partial sum = %v", got)
	}
}

func TestSinks(t *testing.T) {
	ch := make(chan Event, 1)
	Emit(ChannelSink{Ch: ch}, Event{File: "a.md", Status: StatusDone})
	if evt := <-ch; evt.File != "a.md" || !evt.Status.Finished() {
		t.Fatalf("unexpected event %+v", evt)
	}

	var rec Recorder
	Emit(&rec, Event{Stage: StageScan, Status: StatusWorking})
	Emit(nil, Event{})
	if evs := rec.Events(); len(evs) != 1 || evs[0].Status.Finished() {
		t.Fatalf("unexpected events %+v", evs)
	}
}
