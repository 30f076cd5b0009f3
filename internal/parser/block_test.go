package parser_test

import (
	"testing"

	"mackerel/internal/ast"
	"mackerel/internal/diag"
	"mackerel/internal/lexer"
	"mackerel/internal/parser"
	"mackerel/internal/token"
)

func TestHeadingAndParagraph(t *testing.T) {
	expectBlocks(t, "# Heading\n\nPlain *em* and **strong**.",
		`H1[Text("Heading")]`,
		`Paragraph[Text("Plain ") Italic[Text("em")] Text(" and ") Bold[Text("strong")] Text(".")]`,
	)
	expectBlocks(t, "###### six", `H6[Text("six")]`)
	expectBlocks(t, "## Title  ", `H2[Text("Title")]`)
}

func TestParagraphInterruption(t *testing.T) {
	expectBlocks(t, "text\n# Heading", `Paragraph[Text("text")]`, `H1[Text("Heading")]`)
	expectBlocks(t, "intro\n- a\n- b", `Paragraph[Text("intro")]`, `UL{Item[Text("a")] Item[Text("b")]}`)
	expectBlocks(t, "para\n> quoted", `Paragraph[Text("para")]`, `Quote{Paragraph[Text("quoted")]}`)
	expectBlocks(t, "one\n\n\n\ntwo", `Paragraph[Text("one")]`, `Paragraph[Text("two")]`)
}

func TestListMarkerFamilies(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"- a\n* b", []string{`UL{Item[Text("a")]}`, `UL{Item[Text("b")]}`}},
		{"* a\n+ b", []string{`UL{Item[Text("a")]}`, `UL{Item[Text("b")]}`}},
		{"+ a\n+ b\n- c", []string{`UL{Item[Text("a")] Item[Text("b")]}`, `UL{Item[Text("c")]}`}},
		{"1. a\n2. b", []string{`OL(1){Item[Text("a")] Item[Text("b")]}`}},
	}
	for _, tt := range tests {
		expectBlocks(t, tt.input, tt.want...)
	}
}

func TestLists(t *testing.T) {
	expectBlocks(t, "- one\n- two\n  - nested\n- three",
		`UL{Item[Text("one")] Item[Text("two")]>UL{Item[Text("nested")]} Item[Text("three")]}`)
	expectBlocks(t, "* a\n* b", `UL{Item[Text("a")] Item[Text("b")]}`)
	expectBlocks(t, "3. a\n4. *b*", `OL(3){Item[Text("a")] Item[Italic[Text("b")]]}`)
	expectBlocks(t, "- a\n  continued", `UL{Item[Text("a continued")]}`)
	expectBlocks(t, "- a\n\n- b", `UL{Item[Text("a")]}`, `UL{Item[Text("b")]}`)
	expectBlocks(t, "- a\n1. b", `UL{Item[Text("a")]}`, `OL(1){Item[Text("b")]}`)
	expectBlocks(t, "- a\nafter", `UL{Item[Text("a")]}`, `Paragraph[Text("after")]`)
}

func TestBlockQuote(t *testing.T) {
	expectBlocks(t, "> a\n>\n> b", `Quote{Paragraph[Text("a")] Paragraph[Text("b")]}`)
	expectBlocks(t, "> # Title\n> - x", `Quote{H1[Text("Title")] UL{Item[Text("x")]}}`)
	expectBlocks(t, "> > deep", `Quote{Quote{Paragraph[Text("deep")]}}`)
	expectBlocks(t, "> a\n\nb", `Quote{Paragraph[Text("a")]}`, `Paragraph[Text("b")]`)
}

func TestBlockQuoteErrorIndex(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"first line", "> *oops"},
		{"second line", "> a\n> *b\n"},
		{"nested quote", "> > a\n> > *b"},
		{"after blank quoted line", "> a\n>\n> x *b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexer.ScanString(tt.input)
			want := -1
			for i, tok := range toks {
				if tok.Is(token.Star) {
					want = i
					break
				}
			}
			err := expectParseError(t, tt.input)
			if err.Code != diag.SynUnterminatedEmphasis {
				t.Fatalf("unexpected code %s", err.Code.ID())
			}
			if err.Index != want {
				t.Fatalf("expected index %d, got %d", want, err.Index)
			}
			if err.Span != toks[want].Span {
				t.Fatalf("expected span %v, got %v", toks[want].Span, err.Span)
			}
		})
	}
}

func TestCodeBlock(t *testing.T) {
	expectBlocks(t, "```go\nfmt.Println(1)\n```", `Code("go","fmt.Println(1)\n")`)
	expectBlocks(t, "```\n*raw* [x]\n\n  indented\n```\nafter",
		`Code("","*raw* [x]\n\n  indented\n")`, `Paragraph[Text("after")]`)
	expectBlocks(t, "````\n```\n````", "Code(\"\",\"```\\n\")")

	err := expectParseError(t, "```\ncode")
	if err.Code != diag.SynUnterminatedFence {
		t.Fatalf("expected %s, got %s", diag.SynUnterminatedFence.ID(), err.Code.ID())
	}
}

func TestHorizontalRule(t *testing.T) {
	expectBlocks(t, "a\n\n---\n\nb", `Paragraph[Text("a")]`, "HR", `Paragraph[Text("b")]`)
	expectBlocks(t, "***", "HR")
	expectBlocks(t, "text\n-----", `Paragraph[Text("text")]`, "HR")
}

func TestTable(t *testing.T) {
	expectBlocks(t, "| a | b |\n|---|---|\n| 1 | *2* |",
		`Table{TH([Text("a")]|[Text("b")]) TR([Text("1")]|[Italic[Text("2")]])}`)
	expectBlocks(t, "a | b\n:-- | --:\nc | d\n\nafter",
		`Table{TH([Text("a")]|[Text("b")]) TR([Text("c")]|[Text("d")])}`,
		`Paragraph[Text("after")]`)
	expectBlocks(t, "a | b\nnot a separator", `Paragraph[Text("a | b not a separator")]`)
}

func TestTableRowMismatch(t *testing.T) {
	err := expectParseError(t, "| a | b |\n|---|---|\n| 1 |")
	if err.Code != diag.SynTableRowMismatch {
		t.Fatalf("expected %s, got %s", diag.SynTableRowMismatch.ID(), err.Code.ID())
	}
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   \n  "} {
		doc := mustParse(t, input)
		if len(doc.Blocks) != 0 || len(doc.FrontMatter) != 0 {
			t.Errorf("%q: expected empty document, got %s", input, blocksSummary(doc))
		}
	}
}

func TestMissingEOFIsSynthesized(t *testing.T) {
	toks := lexer.ScanString("# x")
	doc, err := parser.Parse(toks[:len(toks)-1], parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := blocksSummary(doc); got != `H1[Text("x")]` {
		t.Fatalf("unexpected blocks %s", got)
	}
}

func TestErrorIsReported(t *testing.T) {
	bag := diag.NewBag(10)
	_, err := parser.Parse(lexer.ScanString("a [b"), parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err == nil {
		t.Fatal("expected error")
	}
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	if d := bag.Items()[0]; d.Code != diag.SynMalformedLink || d.Severity != diag.SevError {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	input := "---\na: 1\n---\n# T\n\n- x\n  - y\n\n| p | q |\n|---|---|\n| 1 | 2 |\n\n> quote\n"
	first := mustParse(t, input)
	for range 5 {
		if !ast.Equal(first, mustParse(t, input)) {
			t.Fatal("repeated parses produced different trees")
		}
	}
}

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{
		"*", "**", "`", "[", "]", "(", "!", "![", "![x](", ">", "> ", ">>", "|", "|\n|", "|-|\n-",
		"- ", "-", "1.", "1. ", "#", "# ", "```", "```\n", "---", "---\n", "---\n---", "\n*\n",
		"- a\n  - b\n    - c\n  d", "> - a\n> \n> ```\n> x\n> ```", "a  \n", "  \n- x",
	}
	for _, input := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("panic for %q: %v", input, r)
				}
			}()
			_, _ = parseString(input)
		}()
	}
}
