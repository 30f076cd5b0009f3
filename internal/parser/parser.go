package parser

import (
	"mackerel/internal/ast"
	"mackerel/internal/diag"
	"mackerel/internal/source"
	"mackerel/internal/token"
)

type Options struct {
	// Reporter, when set, also receives the parse failure as a diagnostic.
	Reporter diag.Reporter
}

// Parser holds the state for one token sequence.
type Parser struct {
	toks   []token.Token
	pos    int
	opts   Options
	// origin maps indices of a block-quote body back into the caller's sequence.
	origin []int
}

// Parse builds a document from a scanned token sequence.
// The sequence is expected to end with an EOF token; one is synthesized if missing.
// Parsing stops at the first error.
func Parse(tokens []token.Token, opts Options) (*ast.Document, error) {
	p := newParser(tokens, opts)
	doc, err := p.parseDocument()
	if err != nil {
		p.report(err)
		return nil, err
	}
	return doc, nil
}

func newParser(tokens []token.Token, opts Options) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != token.EOF {
		var sp source.Span
		if n > 0 {
			last := tokens[n-1].Span
			sp = source.Span{File: last.File, Start: last.End, End: last.End}
		}
		tokens = append(tokens[:n:n], token.Token{Kind: token.EOF, Span: sp})
	}
	return &Parser{toks: tokens, opts: opts}
}

func (p *Parser) parseDocument() (*ast.Document, error) {
	fm, err := p.parseFrontMatter()
	if err != nil {
		return nil, err
	}
	blocks, err := p.parseBlocks()
	if err != nil {
		return nil, err
	}
	return &ast.Document{FrontMatter: fm, Blocks: blocks}, nil
}

// parseBlocks is the top-level loop: skip blank lines, then dispatch on the
// first token of the next line until EOF.
func (p *Parser) parseBlocks() ([]ast.Block, error) {
	var blocks []ast.Block
	for {
		p.skipBlankLines()
		if p.at(token.EOF) {
			return blocks, nil
		}
		b, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
}

// parseBlock selects the block recognizer by the tokens that open the line.
func (p *Parser) parseBlock() (ast.Block, error) {
	indent := p.skipSpaces()
	switch {
	case p.atHeading(0):
		return p.parseHeading()
	case p.atFence(0):
		return p.parseCodeBlock()
	case p.atRule(0):
		return p.parseRule(), nil
	case p.at(token.GreaterThan):
		return p.parseBlockQuote()
	case p.atListMarker(0):
		return p.parseList(indent)
	case p.atTable():
		return p.parseTable()
	default:
		return p.parseParagraph()
	}
}

func (p *Parser) report(err error) {
	if p.opts.Reporter == nil {
		return
	}
	perr, ok := err.(*Error)
	if !ok {
		return
	}
	diag.ReportError(p.opts.Reporter, perr.Code, perr.Span, perr.Msg).Emit()
}
