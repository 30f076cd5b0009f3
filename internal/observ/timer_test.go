package observ

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	cur := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		cur = cur.Add(step)
		return cur
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)

	idx := tm.Begin("scan")
	tm.End(idx, "")
	if err := tm.Track("parse", func() error { return errors.New("boom") }); err == nil {
		t.Fatal("Track must return the phase error")
	}
	tm.End(42, "ignored")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(report.Phases))
	}
	if report.Phases[0].DurationMS != 2 || report.TotalMS != 4 {
		t.Fatalf("unexpected durations %+v", report)
	}
	if report.Phases[1].Note != "failed" {
		t.Fatalf("expected failed note, got %q", report.Phases[1].Note)
	}

	summary := tm.Summary()
	for _, want := range []string{"timings:", "scan", "parse", "// failed", "total"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Fatalf("unexpected report %+v", r)
	}
}
