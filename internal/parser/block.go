package parser

import (
	"strings"

	"mackerel/internal/ast"
	"mackerel/internal/diag"
	"mackerel/internal/token"
)

// atHeading: Hash(1..6) followed by a space.
func (p *Parser) atHeading(n int) bool {
	tok := p.peekAt(n)
	return tok.Kind == token.Hash && tok.Len <= 6 && p.peekAt(n+1).Is(token.Whitespace)
}

// atRule: a dash or star run of three or more alone on its line.
func (p *Parser) atRule(n int) bool {
	tok := p.peekAt(n)
	if (tok.Kind != token.Dash && tok.Kind != token.Star) || tok.Len < 3 {
		return false
	}
	return p.lineEndAfterSpaces(n + 1)
}

// atFence: a backtick run of three or more, optionally followed by an info word.
func (p *Parser) atFence(n int) bool {
	tok := p.peekAt(n)
	if tok.Kind != token.Backtick || tok.Len < 3 {
		return false
	}
	n++
	n += p.countSpaces(n)
	if p.peekAt(n).Is(token.Text) {
		n++
	}
	return p.peekAt(n).AtLineEnd()
}

func (p *Parser) parseHeading() (ast.Block, error) {
	level := p.advance().Len
	p.skipSpaces()
	var l runList
	if _, err := p.parseRuns(&l, stopLine); err != nil {
		return nil, err
	}
	l.trimRight()
	return ast.Heading{Level: level, Runs: l.runs}, nil
}

func (p *Parser) parseRule() ast.Block {
	p.skipLine()
	return ast.HorizontalRule{}
}

func (p *Parser) parseParagraph() (ast.Block, error) {
	var l runList
	if _, err := p.parseRuns(&l, stopParagraph); err != nil {
		return nil, err
	}
	l.trimRight()
	return ast.Paragraph{Runs: l.runs}, nil
}

// parseCodeBlock reads a fenced block verbatim. The closing fence is a backtick
// run of the opening length at the start of a line.
func (p *Parser) parseCodeBlock() (ast.Block, error) {
	open := p.pos
	fence := p.advance().Len
	p.skipSpaces()
	var lang string
	if p.at(token.Text) {
		lang = strings.TrimSpace(p.advance().Text)
	}
	unterminated := func() error {
		return p.failAt(open, diag.SynUnterminatedFence, "unterminated code fence")
	}
	if p.at(token.EOF) {
		return nil, unterminated()
	}

	var b strings.Builder
	// the first newline ends the info line; any further ones belong to the content
	nl := p.advance()
	b.WriteString(strings.Repeat("\n", nl.Len-1))
	lineStart := true
	for {
		tok := p.peek()
		if tok.Kind == token.EOF {
			return nil, unterminated()
		}
		if lineStart && tok.IsRun(token.Backtick, fence) && p.lineEndAfterSpaces(1) {
			p.advance()
			p.skipSpaces()
			return ast.CodeBlock{Lang: lang, Content: b.String()}, nil
		}
		p.advance()
		b.WriteString(tok.Literal())
		lineStart = tok.Kind == token.Newline
	}
}
