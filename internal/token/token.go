package token

import (
	"fmt"
	"strings"

	"mackerel/internal/source"
)

// Token represents a single markup token with its location.
type Token struct {
	Kind Kind
	Len  int // run length; 1 for singletons, 0 for EOF
	Text string
	Span source.Span
}

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// IsRun reports whether the token has kind k and run length n.
func (t Token) IsRun(k Kind, n int) bool { return t.Kind == k && t.Len == n }

// IsNewline reports whether the token is any newline run.
func (t Token) IsNewline() bool { return t.Kind == Newline }

// IsBlankLine reports whether the token is a run of two or more newlines,
// i.e. at least one empty line separates the surrounding content.
func (t Token) IsBlankLine() bool { return t.Kind == Newline && t.Len >= 2 }

// AtLineEnd reports whether the token terminates a line.
func (t Token) AtLineEnd() bool { return t.Kind == Newline || t.Kind == EOF }

// Literal returns the source text the token stands for.
func (t Token) Literal() string {
	if t.Text != "" || t.Kind == EOF {
		return t.Text
	}
	// synthesized tokens (tests, block-quote bodies) may lack Text
	switch t.Kind {
	case Newline:
		return strings.Repeat("\n", t.Len)
	case Hash:
		return strings.Repeat("#", t.Len)
	case Star:
		return strings.Repeat("*", t.Len)
	case Backtick:
		return strings.Repeat("`", t.Len)
	case Dash:
		return strings.Repeat("-", t.Len)
	case Whitespace:
		return " "
	}
	for ch := byte(0x20); ch < 0x7f; ch++ {
		if k, ok := PunctKind(ch); ok && k == t.Kind {
			return string(ch)
		}
	}
	return ""
}

func (t Token) String() string {
	switch {
	case t.Kind == Text:
		return fmt.Sprintf("Text(%q)", t.Text)
	case t.Kind.Repeatable():
		return fmt.Sprintf("%s(%d)", t.Kind, t.Len)
	default:
		return t.Kind.String()
	}
}

// Join concatenates the source text of toks.
func Join(toks []Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Literal())
	}
	return b.String()
}
