package diag

import (
	"testing"

	"mackerel/internal/source"
)

func TestBagLimitAndErrors(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Severity: SevWarning, Code: SynInfo}) {
		t.Fatal("first add must succeed")
	}
	if b.HasErrors() {
		t.Fatal("warning is not an error")
	}
	b.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken})
	if b.Add(Diagnostic{Severity: SevError}) {
		t.Fatal("third add must be dropped")
	}
	if !b.HasErrors() || b.Len() != 2 {
		t.Fatalf("unexpected bag state: len=%d", b.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(0)
	sp := func(s uint32) source.Span { return source.Span{Start: s, End: s + 1} }
	b.Add(Diagnostic{Severity: SevError, Code: SynMalformedLink, Primary: sp(9)})
	b.Add(Diagnostic{Severity: SevWarning, Code: SynInfo, Primary: sp(1)})
	b.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken, Primary: sp(1)})
	b.Add(Diagnostic{Severity: SevError, Code: SynMalformedLink, Primary: sp(9)})

	b.Sort()
	b.Dedup()

	items := b.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 diagnostics after dedup, got %d", len(items))
	}
	if items[0].Code != SynUnexpectedToken || items[1].Code != SynInfo || items[2].Code != SynMalformedLink {
		t.Fatalf("unexpected order: %v", items)
	}
}

func TestCodeID(t *testing.T) {
	if got := SynUnterminatedEmphasis.ID(); got != "SYN2004" {
		t.Fatalf("got %q", got)
	}
	if got := IOLoadFileError.ID(); got != "IO4001" {
		t.Fatalf("got %q", got)
	}
	if got := Code(9999).Title(); got != "Unknown error" {
		t.Fatalf("got %q", got)
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(0)
	rb := ReportError(BagReporter{Bag: bag}, SynMalformedLink, source.Span{}, "malformed link target").
		WithNote(source.Span{Start: 1, End: 2}, "link text opened here")
	rb.Emit()
	rb.Emit()
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	if len(bag.Items()[0].Notes) != 1 {
		t.Fatal("expected note to be carried")
	}
}
