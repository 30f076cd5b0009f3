package mackerel_test

import (
	"errors"
	"testing"

	"mackerel"
	"mackerel/internal/ast"
	"mackerel/internal/token"
)

const endToEnd = "---\ntitle: Test\n---\n# Heading\n\nPlain *em* and **strong**.\n"

func TestParseDocumentEndToEnd(t *testing.T) {
	doc, err := mackerel.ParseDocument(endToEnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &ast.Document{
		FrontMatter: ast.FrontMatter{"title": "Test"},
		Blocks: []ast.Block{
			ast.Heading{Level: 1, Runs: []ast.Run{ast.Text{Value: "Heading"}}},
			ast.Paragraph{Runs: []ast.Run{
				ast.Text{Value: "Plain "},
				ast.Italic{Runs: []ast.Run{ast.Text{Value: "em"}}},
				ast.Text{Value: " and "},
				ast.Bold{Runs: []ast.Run{ast.Text{Value: "strong"}}},
				ast.Text{Value: "."},
			}},
		},
	}
	if !ast.Equal(doc, want) {
		for _, b := range doc.Blocks {
			t.Log(ast.Sprint(b))
		}
		t.Fatalf("unexpected tree (front matter %v)", doc.FrontMatter)
	}

	if got := mackerel.Render(doc); got != "<h1>Heading</h1><p>Plain <i>em</i> and <b>strong</b>.</p>" {
		t.Fatalf("unexpected HTML %s", got)
	}
}

func TestScanEndsWithEOF(t *testing.T) {
	for _, input := range []string{"", "x", "\n\n", "# a *b*"} {
		toks := mackerel.Scan(input)
		eofs := 0
		for _, tok := range toks {
			if tok.Kind == token.EOF {
				eofs++
			}
		}
		if eofs != 1 || toks[len(toks)-1].Kind != token.EOF {
			t.Errorf("%q: expected exactly one trailing EOF, got %v", input, toks)
		}
	}
}

func TestParseErrorIsTyped(t *testing.T) {
	doc, err := mackerel.ParseDocument("*oops")
	if doc != nil {
		t.Fatal("no document may be returned on error")
	}
	var perr *mackerel.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Msg != "unterminated emphasis" {
		t.Fatalf("unexpected message %q", perr.Msg)
	}
}

func TestParseAcceptsScannedTokens(t *testing.T) {
	doc, err := mackerel.Parse(mackerel.Scan("[Link](https://x.test)"))
	if err != nil {
		t.Fatal(err)
	}
	want := ast.Paragraph{Runs: []ast.Run{ast.Link{URL: "https://x.test", Runs: []ast.Run{ast.Text{Value: "Link"}}}}}
	if len(doc.Blocks) != 1 || ast.Sprint(doc.Blocks[0]) != ast.Sprint(want) {
		t.Fatalf("unexpected blocks %v", doc.Blocks)
	}
}
