package lexer_test

import (
	"strings"
	"testing"

	"mackerel/internal/lexer"
	"mackerel/internal/source"
	"mackerel/internal/testkit"
	"mackerel/internal/token"
)

// tk is a compact expectation: kind, run length and (for Text) content.
type tk struct {
	kind token.Kind
	n    int
	text string
}

func txt(s string) tk           { return tk{token.Text, 1, s} }
func run(k token.Kind, n int) tk { return tk{kind: k, n: n} }
func one(k token.Kind) tk        { return tk{kind: k, n: 1} }

func expectTokens(t *testing.T, input string, expected []tk) {
	t.Helper()
	tokens := lexer.ScanString(input)

	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		t.Fatalf("sequence must end with EOF: %v", tokens)
	}
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v", len(expected), len(tokens), input, tokens)
	}
	for i, tok := range tokens {
		want := expected[i]
		if tok.Kind != want.kind || tok.Len != want.n {
			t.Errorf("Token %d: expected %v(%d), got %v", i, want.kind, want.n, tok)
		}
		if want.kind == token.Text && tok.Text != want.text {
			t.Errorf("Token %d: expected text %q, got %q", i, want.text, tok.Text)
		}
	}
}

func TestScanDocument(t *testing.T) {
	input := "---\ntitle: Test\ndate: 2025-10-24\n---\n# heading 1\n\nFirst *paragraph.* [Link](https://ntalbs.github.io)\n"
	expectTokens(t, input, []tk{
		run(token.Dash, 3), run(token.Newline, 1),
		txt("title: Test"), run(token.Newline, 1),
		txt("date: 2025-10-24"), run(token.Newline, 1),
		run(token.Dash, 3), run(token.Newline, 1),
		run(token.Hash, 1), one(token.Whitespace), txt("heading 1"), run(token.Newline, 2),
		txt("First "), run(token.Star, 1), txt("paragraph."), run(token.Star, 1),
		one(token.Whitespace), one(token.LeftBracket), txt("Link"), one(token.RightBracket),
		one(token.LeftParen), txt("https://ntalbs.github.io"), one(token.RightParen),
		run(token.Newline, 1),
	})
}

func TestRunCollapsing(t *testing.T) {
	kinds := map[string]token.Kind{
		"\n": token.Newline,
		"#":  token.Hash,
		"*":  token.Star,
		"`":  token.Backtick,
		"-":  token.Dash,
	}
	for ch, kind := range kinds {
		for n := 1; n <= 12; n++ {
			expectTokens(t, strings.Repeat(ch, n), []tk{run(kind, n)})
		}
	}
}

func TestPunctuationSingletons(t *testing.T) {
	expectTokens(t, "+_!~|^()[]>", []tk{
		one(token.Plus), one(token.Underscore), one(token.Exclamation), one(token.Tilde),
		one(token.VerticalLine), one(token.Caret), one(token.LeftParen), one(token.RightParen),
		one(token.LeftBracket), one(token.RightBracket), one(token.GreaterThan),
	})
}

func TestSpacesAreNotCollapsed(t *testing.T) {
	expectTokens(t, "   x", []tk{
		one(token.Whitespace), one(token.Whitespace), one(token.Whitespace), txt("x"),
	})
}

func TestTextKeepsInnerPunctuation(t *testing.T) {
	expectTokens(t, "a-b #c +d > e", []tk{txt("a-b #c +d > e")})
	expectTokens(t, "snake_case", []tk{txt("snake"), one(token.Underscore), txt("case")})
	expectTokens(t, "see ![x](y)", []tk{
		txt("see "), one(token.Exclamation), one(token.LeftBracket), txt("x"),
		one(token.RightBracket), one(token.LeftParen), txt("y"), one(token.RightParen),
	})
}

func TestTrailingSpacesStayInText(t *testing.T) {
	expectTokens(t, "line  \nnext", []tk{txt("line  "), run(token.Newline, 1), txt("next")})
}

func TestTableRow(t *testing.T) {
	expectTokens(t, "| a | b |\n|---|---|", []tk{
		one(token.VerticalLine), one(token.Whitespace), txt("a "), one(token.VerticalLine),
		one(token.Whitespace), txt("b "), one(token.VerticalLine), run(token.Newline, 1),
		one(token.VerticalLine), run(token.Dash, 3), one(token.VerticalLine), run(token.Dash, 3),
		one(token.VerticalLine),
	})
}

func TestUnicodeText(t *testing.T) {
	expectTokens(t, "héllo *wörld*", []tk{
		txt("héllo "), run(token.Star, 1), txt("wörld"), run(token.Star, 1),
	})
}

func TestScanIsTotal(t *testing.T) {
	inputs := []string{"", " ", "\n", "plain", "**", "`x", "[", "\x00\xff", "a\r\nb"}
	for _, in := range inputs {
		tokens := lexer.ScanString(in)
		eofs := 0
		var rebuilt strings.Builder
		for _, tok := range tokens {
			if tok.Kind == token.EOF {
				eofs++
			}
			rebuilt.WriteString(tok.Text)
		}
		if eofs != 1 || tokens[len(tokens)-1].Kind != token.EOF {
			t.Errorf("%q: expected exactly one trailing EOF, got %v", in, tokens)
		}
		if rebuilt.String() != in {
			t.Errorf("%q: tokens do not cover the input, rebuilt %q", in, rebuilt.String())
		}
	}
}

func TestNoAdjacentRepeatableTokens(t *testing.T) {
	tokens := lexer.ScanString("##  **--``\n\n# x ***y***\n")
	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1], tokens[i]
		if cur.Kind.Repeatable() && prev.Kind == cur.Kind {
			t.Fatalf("adjacent %v tokens at %d: %v", cur.Kind, i, tokens)
		}
	}
}

func TestSpansMatchText(t *testing.T) {
	input := "# T\n\n*a* `b`"
	for _, tok := range lexer.ScanString(input) {
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("%v: span %v covers %q", tok, tok.Span, got)
		}
	}
}

func TestTokenSpanInvariants(t *testing.T) {
	inputs := []string{
		"",
		"---\ntitle: x\n---\n# Head\n",
		"| a | b |\n|---|:-:|\n| 1 | 2 |",
		"> quote *em*\n\n```go\nfmt.Println()\n```",
		"1. one\n   - two  \n![i](u) [l](v)",
	}
	for _, in := range inputs {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("case.md", []byte(in)))
		if err := testkit.CheckTokenSpans(lexer.Scan(file), file); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}
