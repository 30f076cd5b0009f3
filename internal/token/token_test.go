package token_test

import (
	"testing"

	"mackerel/internal/token"
)

func TestRepeatableKinds(t *testing.T) {
	runs := map[byte]token.Kind{
		'\n': token.Newline,
		'#':  token.Hash,
		'*':  token.Star,
		'`':  token.Backtick,
		'-':  token.Dash,
	}
	for ch, want := range runs {
		got, ok := token.RepeatableKind(ch)
		if !ok || got != want {
			t.Fatalf("%q: expected %v, got %v (ok=%v)", ch, want, got, ok)
		}
		if !got.Repeatable() {
			t.Fatalf("%v should be repeatable", got)
		}
	}
	non := []token.Kind{token.Text, token.Plus, token.Whitespace, token.GreaterThan, token.EOF}
	for _, k := range non {
		if k.Repeatable() {
			t.Fatalf("%v must NOT be repeatable", k)
		}
	}
}

func TestPunctKindsRoundTripThroughLiteral(t *testing.T) {
	for _, ch := range []byte("+_!~|^()[]>") {
		k, ok := token.PunctKind(ch)
		if !ok {
			t.Fatalf("%q should be punctuation", ch)
		}
		tok := token.Token{Kind: k, Len: 1}
		if got := tok.Literal(); got != string(ch) {
			t.Fatalf("%v: expected literal %q, got %q", k, ch, got)
		}
	}
	if _, ok := token.PunctKind('a'); ok {
		t.Fatal("'a' must not be punctuation")
	}
}

func TestLiteralOfSynthesizedRuns(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.Newline, Len: 3}, "\n\n\n"},
		{token.Token{Kind: token.Dash, Len: 2}, "--"},
		{token.Token{Kind: token.Whitespace, Len: 1}, " "},
		{token.Token{Kind: token.Text, Len: 1, Text: "abc"}, "abc"},
		{token.Token{Kind: token.EOF}, ""},
	}
	for _, tt := range tests {
		if got := tt.tok.Literal(); got != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.tok, tt.want, got)
		}
	}
}

func TestTokenString(t *testing.T) {
	if got := (token.Token{Kind: token.Star, Len: 2}).String(); got != "Star(2)" {
		t.Errorf("got %q", got)
	}
	if got := (token.Token{Kind: token.Text, Text: "hi"}).String(); got != `Text("hi")` {
		t.Errorf("got %q", got)
	}
	if got := (token.Token{Kind: token.LeftBracket, Len: 1}).String(); got != "LeftBracket" {
		t.Errorf("got %q", got)
	}
}
