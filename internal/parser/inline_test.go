package parser_test

import (
	"testing"

	"mackerel/internal/diag"
)

func TestEmphasisNesting(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"***bold italic***", `Paragraph[Bold[Italic[Text("bold italic")]]]`},
		{"**bold**", `Paragraph[Bold[Text("bold")]]`},
		{"*italic*", `Paragraph[Italic[Text("italic")]]`},
		{"*a **b** c*", `Paragraph[Italic[Text("a ") Bold[Text("b")] Text(" c")]]`},
		{"***a* b**", `Paragraph[Bold[Italic[Text("a")] Text(" b")]]`},
		{"***a** b*", `Paragraph[Italic[Bold[Text("a")] Text(" b")]]`},
		{"2 * 3 = 6", `Paragraph[Text("2 * 3 = 6")]`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectBlocks(t, tt.input, tt.want)
		})
	}
}

func TestUnterminatedEmphasis(t *testing.T) {
	for _, input := range []string{"*oops", "**oops*", "***oops**", "# *title\nnext*"} {
		err := expectParseError(t, input)
		if err.Code != diag.SynUnterminatedEmphasis {
			t.Errorf("%q: expected %s, got %s", input, diag.SynUnterminatedEmphasis.ID(), err.Code.ID())
		}
	}
	if err := expectParseError(t, "*oops"); err.Index != 0 {
		t.Errorf("expected error at token 0, got %d", err.Index)
	}
}

func TestLinksAndImages(t *testing.T) {
	expectBlocks(t, "[Link](https://x.test)", `Paragraph[Link("https://x.test")[Text("Link")]]`)
	expectBlocks(t, "see [the *docs*](https://x.test/a_b) now",
		`Paragraph[Text("see ") Link("https://x.test/a_b")[Text("the ") Italic[Text("docs")]] Text(" now")]`)
	expectBlocks(t, "![alt *text*](img.png)", `Paragraph[Image("img.png","alt text")]`)
	expectBlocks(t, "wow!", `Paragraph[Text("wow!")]`)
}

func TestMalformedLinks(t *testing.T) {
	for _, input := range []string{"[Link]", "[Link]()", "[Link](a b)", "[Link](x", "[Link"} {
		err := expectParseError(t, input)
		if err.Code != diag.SynMalformedLink {
			t.Errorf("%q: expected %s, got %s (%v)", input, diag.SynMalformedLink.ID(), err.Code.ID(), err)
		}
	}
}

func TestCodeSpans(t *testing.T) {
	expectBlocks(t, "use `go test` now", `Paragraph[Text("use ") Code("go test") Text(" now")]`)
	expectBlocks(t, "``a`b``", `Paragraph[Code("a`+"`"+`b")]`)
	expectBlocks(t, "`*not emphasis*`", `Paragraph[Code("*not emphasis*")]`)

	err := expectParseError(t, "`open")
	if err.Code != diag.SynUnterminatedCode {
		t.Errorf("expected %s, got %s", diag.SynUnterminatedCode.ID(), err.Code.ID())
	}
}

func TestLineBreaks(t *testing.T) {
	expectBlocks(t, "line one  \nline two", `Paragraph[Text("line one") BR Text("line two")]`)
	expectBlocks(t, "soft\nbreak", `Paragraph[Text("soft break")]`)
	expectBlocks(t, "one \ntwo", `Paragraph[Text("one two")]`)
}

func TestWhitespaceIsPreserved(t *testing.T) {
	expectBlocks(t, "a  b", `Paragraph[Text("a  b")]`)
	expectBlocks(t, "*x*  y", `Paragraph[Italic[Text("x")] Text("  y")]`)
}

func TestLiteralPunctuation(t *testing.T) {
	expectBlocks(t, "a_b ~c^ (d) + e | f", `Paragraph[Text("a_b ~c^ (d) + e | f")]`)
	expectBlocks(t, "#nospace", `Paragraph[Text("#nospace")]`)
	expectBlocks(t, "####### seven", `Paragraph[Text("####### seven")]`)
}

func TestUnexpectedInlineTokens(t *testing.T) {
	for _, input := range []string{"a ] b", "****x****", "a ```b```"} {
		err := expectParseError(t, input)
		if err.Code != diag.SynUnexpectedToken {
			t.Errorf("%q: expected %s, got %s", input, diag.SynUnexpectedToken.ID(), err.Code.ID())
		}
	}
}
