package driver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mackerel/internal/diag"
	"mackerel/internal/parser"
	"mackerel/internal/testkit"
	"mackerel/internal/token"
)

func TestTokenize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.md")
	if err := os.WriteFile(path, []byte("# hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := Tokenize(path, 10)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if n := len(res.Tokens); n == 0 || res.Tokens[n-1].Kind != token.EOF {
		t.Fatalf("tokens not EOF-terminated: %v", res.Tokens)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if err := testkit.CheckTokenSpans(res.Tokens, res.File); err != nil {
		t.Fatal(err)
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := Tokenize(filepath.Join(t.TempDir(), "missing.md"), 10); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestParseReportsIntoBag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.md")
	if err := os.WriteFile(path, []byte("[x](a b)"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := Parse(path, 10)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var perr *parser.Error
	if !errors.As(res.Err, &perr) || perr.Code != diag.SynMalformedLink {
		t.Fatalf("expected malformed link, got %v", res.Err)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynMalformedLink {
		t.Fatalf("bag = %v", items)
	}
	if res.Document != nil {
		t.Fatal("no document expected on failure")
	}
}

func TestRenderFileCaches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.md")
	if err := os.WriteFile(path, []byte("---\ntitle: T\n---\nbody"), 0o644); err != nil {
		t.Fatal(err)
	}
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	opts := RenderOptions{FrontMatter: true}

	first, err := RenderFile(path, opts, cache, 10)
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}
	if first.Cached {
		t.Fatal("first render should not be cached")
	}
	want := `<meta name="title" content="T"><p>body</p>`
	if first.HTML != want {
		t.Fatalf("HTML = %q, want %q", first.HTML, want)
	}

	second, err := RenderFile(path, opts, cache, 10)
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}
	if !second.Cached || second.HTML != want {
		t.Fatalf("second render: cached=%v html=%q", second.Cached, second.HTML)
	}
}
