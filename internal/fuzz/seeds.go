package fuzztests

import "testing"

const maxFuzzInput = 1 << 16 // 64 KiB

var markupSeeds = []string{
	"",
	"plain text",
	"# Heading\n\nPlain *em* and **strong**.",
	"---\ntitle: Hello\ndraft: true\n---\nbody",
	"---\nbroken\n---\n",
	"***both*** **a *b* c** *a **b** c*",
	"*never closed",
	"[link](https://example.com) ![alt *x*](img.png)",
	"[bad](a b)",
	"`code` ``two `ticks``",
	"```go\nfunc main() {}\n```",
	"```\nunterminated",
	"- a\n- b\n  - nested\n- c",
	"3. three\n4. four",
	"> quote\n> *more*\n\nafter",
	"| a | b |\n|:--|--:|\n| 1 | 2 |",
	"| a | b |\n|---|---|\n| 1 |",
	"line  \nbreak\nsoft",
	"---\n***\n- - -",
	"]stray ( ) ^ ~ + _ ! |",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range markupSeeds {
		f.Add([]byte(s))
	}
}

// clampInput copies input, truncated to maxFuzzInput.
func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
