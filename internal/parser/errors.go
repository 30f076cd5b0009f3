package parser

import (
	"fmt"

	"mackerel/internal/diag"
	"mackerel/internal/source"
)

// Error describes why a token sequence could not be parsed.
type Error struct {
	Code diag.Code
	Msg  string
	// Index is the position of the offending token in the input sequence.
	Index int
	Span  source.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at token %d", e.Code.ID(), e.Msg, e.Index)
}

// fail builds an error positioned at the current token.
func (p *Parser) fail(code diag.Code, msg string) error {
	return p.failAt(p.pos, code, msg)
}

// failAt builds an error positioned at the token with index idx.
func (p *Parser) failAt(idx int, code diag.Code, msg string) error {
	if idx >= len(p.toks) {
		idx = len(p.toks) - 1
	}
	return &Error{Code: code, Msg: msg, Index: p.originOf(idx), Span: p.toks[idx].Span}
}

// originOf translates a local token index into the top-level sequence.
func (p *Parser) originOf(idx int) int {
	if p.origin == nil {
		return idx
	}
	return p.origin[idx]
}
