package ui

import (
	"strings"
	"testing"

	"mackerel/internal/buildpipeline"
)

func newTestModel(files ...string) *progressModel {
	return NewProgressModel("build", files, nil).(*progressModel)
}

func TestApplyEventTracksStages(t *testing.T) {
	m := newTestModel("a.md", "b.md")

	m.applyEvent(buildpipeline.Event{File: "a.md", Stage: buildpipeline.StageParse, Status: buildpipeline.StatusWorking})
	if got := m.items[0].status; got != "parsing" {
		t.Fatalf("status = %q, want parsing", got)
	}
	if p := m.percent(); p != 0.15 {
		t.Fatalf("percent = %v, want 0.15", p)
	}

	m.applyEvent(buildpipeline.Event{File: "a.md", Stage: buildpipeline.StageWrite, Status: buildpipeline.StatusDone})
	m.applyEvent(buildpipeline.Event{File: "b.md", Stage: buildpipeline.StageWrite, Status: buildpipeline.StatusCached})
	if p := m.percent(); p != 1.0 {
		t.Fatalf("percent = %v, want 1", p)
	}
	if got := m.counts(); !strings.Contains(got, "2/2 finished, 1 cached, 0 failed") {
		t.Fatalf("counts = %q", got)
	}
}

func TestApplyEventIgnoresUnknownFiles(t *testing.T) {
	m := newTestModel("a.md")
	if cmd := m.applyEvent(buildpipeline.Event{File: "zzz.md", Status: buildpipeline.StatusDone}); cmd != nil {
		t.Fatal("expected no command for unknown file")
	}
	m.applyEvent(buildpipeline.Event{Stage: buildpipeline.StageRender, Status: buildpipeline.StatusWorking})
	if m.stageLabel != "rendering" {
		t.Fatalf("stageLabel = %q", m.stageLabel)
	}
}

func TestViewListsFiles(t *testing.T) {
	m := newTestModel("posts/one.md")
	m.applyEvent(buildpipeline.Event{File: "posts/one.md", Stage: buildpipeline.StageScan, Status: buildpipeline.StatusError})
	view := m.View()
	if !strings.Contains(view, "posts/one.md") || !strings.Contains(view, "error") {
		t.Fatalf("view = %q", view)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 8, "abcde..."},
		{"abcdef", 2, "ab"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
