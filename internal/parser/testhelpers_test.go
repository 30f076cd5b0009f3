package parser_test

import (
	"errors"
	"strings"
	"testing"

	"mackerel/internal/ast"
	"mackerel/internal/lexer"
	"mackerel/internal/parser"
)

func parseString(input string) (*ast.Document, error) {
	return parser.Parse(lexer.ScanString(input), parser.Options{})
}

func mustParse(t *testing.T, input string) *ast.Document {
	t.Helper()
	doc, err := parseString(input)
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", input, err)
	}
	return doc
}

// blocksSummary renders each top-level block on its own line.
func blocksSummary(doc *ast.Document) string {
	lines := make([]string, len(doc.Blocks))
	for i, b := range doc.Blocks {
		lines[i] = ast.Sprint(b)
	}
	return strings.Join(lines, "\n")
}

func expectBlocks(t *testing.T, input string, want ...string) {
	t.Helper()
	doc := mustParse(t, input)
	if got := blocksSummary(doc); got != strings.Join(want, "\n") {
		t.Errorf("input %q\n got:\n%s\nwant:\n%s", input, got, strings.Join(want, "\n"))
	}
}

func expectParseError(t *testing.T, input string) *parser.Error {
	t.Helper()
	doc, err := parseString(input)
	if err == nil {
		t.Fatalf("expected error for %q, got %s", input, blocksSummary(doc))
	}
	if doc != nil {
		t.Fatalf("partial document returned alongside error for %q", input)
	}
	var perr *parser.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *parser.Error, got %T", err)
	}
	return perr
}
