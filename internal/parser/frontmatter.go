package parser

import (
	"strings"

	"mackerel/internal/ast"
	"mackerel/internal/diag"
	"mackerel/internal/token"
)

// parseFrontMatter reads an optional metadata table at the very start of the input:
//
//	---
//	key: value
//	---
//
// A document that does not open with Dash(3) Newline(1) has empty front matter.
// Every line up to the closing delimiter is an entry, whatever token it starts
// with; the key is everything before the first ':'.
func (p *Parser) parseFrontMatter() (ast.FrontMatter, error) {
	fm := ast.FrontMatter{}
	if !p.atRun(token.Dash, 3) || !p.peekAt(1).IsRun(token.Newline, 1) {
		return fm, nil
	}
	p.advance()
	p.advance()

	for !p.atClosingDelimiter() {
		if p.at(token.EOF) {
			return nil, p.fail(diag.SynFrontMatterDelimiter, "invalid front matter delimiter")
		}
		start := p.pos
		for !p.peek().AtLineEnd() {
			p.advance()
		}
		raw := token.Join(p.toks[start:p.pos])
		key, value, ok := strings.Cut(raw, ":")
		if !ok {
			if !p.closerAhead() {
				return nil, p.failAt(start, diag.SynFrontMatterDelimiter, "invalid front matter delimiter")
			}
			return nil, p.failAt(start, diag.SynFrontMatterEntry, "invalid front matter entry")
		}
		// later duplicates override earlier ones
		fm[strings.TrimSpace(key)] = strings.TrimSpace(value)
		if !p.atRun(token.Newline, 1) {
			return nil, p.fail(diag.SynFrontMatterDelimiter, "invalid front matter delimiter")
		}
		p.advance()
	}

	p.advance()
	if p.at(token.Newline) {
		p.advance()
	}
	return fm, nil
}

// atClosingDelimiter reports whether the current line is exactly "---".
func (p *Parser) atClosingDelimiter() bool {
	return p.atRun(token.Dash, 3) && p.peekAt(1).AtLineEnd()
}

// closerAhead reports whether a closing delimiter line follows the current
// position. A colon-less line before it is a bad entry; without one the
// table was simply never closed.
func (p *Parser) closerAhead() bool {
	for i := p.pos; i+1 < len(p.toks); i++ {
		if p.toks[i].IsRun(token.Newline, 1) && p.toks[i+1].IsRun(token.Dash, 3) && p.peekAt(i+2-p.pos).AtLineEnd() {
			return true
		}
	}
	return false
}
