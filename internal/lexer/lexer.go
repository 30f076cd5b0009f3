package lexer

import (
	"mackerel/internal/source"
	"mackerel/internal/token"
)

// Lexer turns a source file into a flat token sequence.
// Scanning is total: every byte ends up in some token.
type Lexer struct {
	file   *source.File
	cursor Cursor
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Scan tokenizes file and appends the EOF sentinel.
func Scan(file *source.File) []token.Token {
	lx := New(file)
	// at most one token per byte plus EOF
	tokens := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// ScanString tokenizes an in-memory document.
func ScanString(text string) []token.Token {
	fs := source.NewFileSet()
	return Scan(fs.Get(fs.AddVirtual("<input>", []byte(text))))
}

// Next returns the next token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	if k, ok := token.RepeatableKind(ch); ok {
		return lx.scanRun(k, ch)
	}
	if k, ok := token.PunctKind(ch); ok {
		return lx.scanSingle(k)
	}
	if ch == ' ' {
		return lx.scanSingle(token.Whitespace)
	}
	return lx.scanText()
}

// EmptySpan is a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) scanRun(k token.Kind, ch byte) token.Token {
	start := lx.cursor.Mark()
	n := 0
	for lx.cursor.Eat(ch) {
		n++
	}
	return token.Token{Kind: k, Len: n, Text: lx.cursor.TextFrom(start), Span: lx.cursor.SpanFrom(start)}
}

func (lx *Lexer) scanSingle(k token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return token.Token{Kind: k, Len: 1, Text: lx.cursor.TextFrom(start), Span: lx.cursor.SpanFrom(start)}
}

// scanText consumes the first byte unconditionally, then extends the run
// until a text breaker shows up.
func (lx *Lexer) scanText() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && !isTextBreaker(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return token.Token{Kind: token.Text, Len: 1, Text: lx.cursor.TextFrom(start), Span: lx.cursor.SpanFrom(start)}
}
