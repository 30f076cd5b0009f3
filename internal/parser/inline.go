package parser

import (
	"strings"

	"mackerel/internal/ast"
	"mackerel/internal/diag"
	"mackerel/internal/token"
)

// stopFunc reports whether the current token ends the inline content of the enclosing block.
// It must hold at EOF.
type stopFunc func(p *Parser) bool

// closer matches a token that terminates an inline span. A zero n matches any run length.
type closer struct {
	kind token.Kind
	n    int
}

func (c closer) match(tok token.Token) bool {
	return tok.Kind == c.kind && (c.n == 0 || tok.Len == c.n)
}

// stopLine ends inline content at the end of the current line.
func stopLine(p *Parser) bool {
	return p.peek().AtLineEnd()
}

// stopCell ends inline content at a cell boundary or the end of the row.
func stopCell(p *Parser) bool {
	return p.peek().AtLineEnd() || p.at(token.VerticalLine)
}

// stopParagraph ends a paragraph at a blank line, at EOF, or at a line that opens another block.
func stopParagraph(p *Parser) bool {
	tok := p.peek()
	switch {
	case tok.Kind == token.EOF, tok.IsBlankLine():
		return true
	case tok.Kind == token.Newline:
		return p.interruptsParagraph(1)
	}
	return false
}

// interruptsParagraph reports whether the line starting at offset n opens a block
// that may follow a paragraph line without a blank line in between.
func (p *Parser) interruptsParagraph(n int) bool {
	n += p.countSpaces(n)
	return p.atHeading(n) || p.atFence(n) || p.atRule(n) ||
		p.peekAt(n).Is(token.GreaterThan) || p.atListMarker(n)
}

// parseRuns parses inline content into l until one of closers is reached or stop holds.
// A matched closer is consumed and its index returned; -1 means stop ended the content.
func (p *Parser) parseRuns(l *runList, stop stopFunc, closers ...closer) (int, error) {
	for {
		tok := p.peek()
		for i, c := range closers {
			if c.match(tok) {
				p.advance()
				return i, nil
			}
		}
		if stop(p) {
			return -1, nil
		}
		if err := p.parseInline(l, stop); err != nil {
			return -1, err
		}
	}
}

// parseInline consumes one inline element.
func (p *Parser) parseInline(l *runList, stop stopFunc) error {
	tok := p.peek()
	switch tok.Kind {
	case token.Text:
		p.advance()
		l.text(tok.Text)
	case token.Whitespace:
		p.advance()
		l.text(" ")
	case token.Newline:
		if tok.Len != 1 {
			return p.fail(diag.SynUnexpectedToken, "unexpected token in inline context: blank line")
		}
		p.advance()
		p.skipSpaces()
		l.lineBreak()
	case token.Star:
		return p.parseEmphasis(l, stop)
	case token.Backtick:
		return p.parseCodeSpan(l, stop)
	case token.LeftBracket:
		return p.parseLink(l, stop, p.pos, false)
	case token.Exclamation:
		if p.peekAt(1).Is(token.LeftBracket) {
			open := p.pos
			p.advance()
			return p.parseLink(l, stop, open, true)
		}
		p.advance()
		l.text(tok.Literal())
	case token.Hash, token.Dash, token.Plus, token.Underscore, token.Tilde, token.Caret,
		token.GreaterThan, token.VerticalLine, token.LeftParen, token.RightParen:
		p.advance()
		l.text(tok.Literal())
	default:
		return p.fail(diag.SynUnexpectedToken, "unexpected token in inline context: "+tok.Kind.String())
	}
	return nil
}

// parseEmphasis handles a star run. A run followed by a space, a closing
// bracket or the end of the line is literal text.
func (p *Parser) parseEmphasis(l *runList, stop stopFunc) error {
	open := p.pos
	tok := p.peek()
	if next := p.peekAt(1); next.Is(token.Whitespace) || next.Is(token.RightBracket) || next.AtLineEnd() {
		p.advance()
		l.text(tok.Literal())
		return nil
	}
	unterminated := func() error {
		return p.failAt(open, diag.SynUnterminatedEmphasis, "unterminated emphasis")
	}

	switch tok.Len {
	case 1, 2:
		p.advance()
		var inner runList
		closed, err := p.parseRuns(&inner, stop, closer{token.Star, tok.Len})
		if err != nil {
			return err
		}
		if closed < 0 {
			return unterminated()
		}
		if tok.Len == 1 {
			l.add(ast.Italic{Runs: inner.runs})
		} else {
			l.add(ast.Bold{Runs: inner.runs})
		}
		return nil

	case 3:
		p.advance()
		var inner runList
		closed, err := p.parseRuns(&inner, stop,
			closer{token.Star, 3}, closer{token.Star, 1}, closer{token.Star, 2})
		if err != nil {
			return err
		}
		switch closed {
		case 0:
			l.add(ast.Bold{Runs: []ast.Run{ast.Italic{Runs: inner.runs}}})
		case 1:
			// the italic part closed first; bold continues
			rest := runList{runs: []ast.Run{ast.Italic{Runs: inner.runs}}}
			c, err := p.parseRuns(&rest, stop, closer{token.Star, 2})
			if err != nil {
				return err
			}
			if c < 0 {
				return unterminated()
			}
			l.add(ast.Bold{Runs: rest.runs})
		case 2:
			rest := runList{runs: []ast.Run{ast.Bold{Runs: inner.runs}}}
			c, err := p.parseRuns(&rest, stop, closer{token.Star, 1})
			if err != nil {
				return err
			}
			if c < 0 {
				return unterminated()
			}
			l.add(ast.Italic{Runs: rest.runs})
		default:
			return unterminated()
		}
		return nil
	}
	return p.fail(diag.SynUnexpectedToken, "unexpected token in inline context: "+tok.String())
}

// parseCodeSpan reads raw text up to a backtick run of the same length.
func (p *Parser) parseCodeSpan(l *runList, stop stopFunc) error {
	open := p.pos
	tok := p.peek()
	if tok.Len > 2 {
		return p.fail(diag.SynUnexpectedToken, "unexpected token in inline context: code fence")
	}
	p.advance()
	var b strings.Builder
	for {
		cur := p.peek()
		if cur.IsRun(token.Backtick, tok.Len) {
			p.advance()
			l.add(ast.Code{Value: b.String()})
			return nil
		}
		if cur.Kind == token.EOF || (cur.Kind == token.Newline && stop(p)) {
			return p.failAt(open, diag.SynUnterminatedCode, "unterminated code span")
		}
		p.advance()
		if cur.Kind == token.Newline {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(cur.Literal())
	}
}

// parseLink handles [text](url) and, with image set, ![alt](url).
// open is the index of the first token of the construct.
func (p *Parser) parseLink(l *runList, stop stopFunc, open int, image bool) error {
	p.advance() // '['
	var inner runList
	closed, err := p.parseRuns(&inner, stop, closer{kind: token.RightBracket})
	if err != nil {
		return err
	}
	if closed < 0 {
		return p.failAt(open, diag.SynMalformedLink, "malformed link target: missing ']'")
	}
	if !p.at(token.LeftParen) {
		return p.fail(diag.SynMalformedLink, "malformed link target: expected '('")
	}
	p.advance()
	if !p.at(token.Text) {
		return p.fail(diag.SynMalformedLink, "malformed link target: expected URL")
	}
	var url strings.Builder
	for !p.at(token.RightParen) {
		tok := p.peek()
		if tok.Is(token.Whitespace) || tok.AtLineEnd() || strings.Contains(tok.Text, " ") {
			return p.fail(diag.SynMalformedLink, "malformed link target: expected ')'")
		}
		url.WriteString(tok.Literal())
		p.advance()
	}
	p.advance() // ')'

	if image {
		l.add(ast.Image{URL: url.String(), Alt: ast.PlainText(inner.runs)})
	} else {
		l.add(ast.Link{URL: url.String(), Runs: inner.runs})
	}
	return nil
}
