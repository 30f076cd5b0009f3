package parser

import (
	"mackerel/internal/ast"
	"mackerel/internal/source"
	"mackerel/internal/token"
)

// parseBlockQuote collects consecutive '>' lines, strips the markers and
// parses the remainder as a nested sequence of blocks.
func (p *Parser) parseBlockQuote() (ast.Block, error) {
	var (
		body   []token.Token
		origin []int
	)
	for p.at(token.GreaterThan) {
		p.advance()
		if p.at(token.Whitespace) {
			p.advance()
		}
		for !p.peek().AtLineEnd() {
			origin = append(origin, p.originOf(p.pos))
			body = append(body, p.advance())
		}
		if p.at(token.EOF) || p.peek().Len > 1 {
			break
		}
		k := p.countSpaces(1)
		if !p.peekAt(1 + k).Is(token.GreaterThan) {
			break
		}
		if n := len(body); n == 0 || body[n-1].Kind != token.Newline {
			origin = append(origin, p.originOf(p.pos))
		}
		body = appendNewline(body, p.advance())
		p.pos += k
	}

	end := p.peek().Span
	body = append(body, token.Token{Kind: token.EOF, Span: source.Span{File: end.File, Start: end.Start, End: end.Start}})
	origin = append(origin, p.originOf(p.pos))
	sub := &Parser{toks: body, opts: p.opts, origin: origin}
	blocks, err := sub.parseBlocks()
	if err != nil {
		return nil, err
	}
	return ast.BlockQuote{Blocks: blocks}, nil
}

// appendNewline appends nl, folding it into a preceding newline run.
// An empty quoted line thus becomes a paragraph break inside the quote.
func appendNewline(body []token.Token, nl token.Token) []token.Token {
	n := len(body)
	if n > 0 && body[n-1].Kind == token.Newline {
		prev := body[n-1]
		body[n-1] = token.Token{
			Kind: token.Newline,
			Len:  prev.Len + nl.Len,
			Text: prev.Literal() + nl.Literal(),
			Span: prev.Span.Cover(nl.Span),
		}
		return body
	}
	return append(body, nl)
}
