package parser

import (
	"mackerel/internal/token"
)

// peek returns the current token.
func (p *Parser) peek() token.Token {
	return p.peekAt(0)
}

// peekAt returns the token n positions ahead; past the end it returns EOF.
func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atRun(k token.Kind, n int) bool {
	return p.peek().IsRun(k, n)
}

// advance consumes the current token. EOF is never consumed.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// countSpaces reports how many Whitespace tokens start at offset n.
func (p *Parser) countSpaces(n int) int {
	k := 0
	for p.peekAt(n + k).Is(token.Whitespace) {
		k++
	}
	return k
}

// skipSpaces consumes Whitespace tokens and returns how many there were.
func (p *Parser) skipSpaces() int {
	k := p.countSpaces(0)
	p.pos += k
	return k
}

// lineEndAfterSpaces reports whether only spaces separate offset n from the end of the line.
func (p *Parser) lineEndAfterSpaces(n int) bool {
	return p.peekAt(n + p.countSpaces(n)).AtLineEnd()
}

// skipBlankLines consumes newline runs and lines holding nothing but spaces.
func (p *Parser) skipBlankLines() {
	for {
		if p.at(token.Newline) {
			p.advance()
			continue
		}
		k := p.countSpaces(0)
		if k > 0 && p.peekAt(k).AtLineEnd() {
			p.pos += k
			continue
		}
		return
	}
}

// skipLine consumes tokens up to, but not including, the end of the line.
func (p *Parser) skipLine() {
	for !p.peek().AtLineEnd() {
		p.advance()
	}
}
