package parser

import (
	"strconv"
	"strings"

	"mackerel/internal/ast"
	"mackerel/internal/token"
)

// listMarker describes the marker that opens a list item.
type listMarker struct {
	family  byte // '*', '-', '+' or '.' for ordered markers
	ordered bool
	start   int
	rest    string // text after an ordered marker, which shares its token
}

// markerAt recognizes "* ", "- ", "+ " or "N. " at offset n.
func (p *Parser) markerAt(n int) (listMarker, bool) {
	tok := p.peekAt(n)
	switch {
	case tok.IsRun(token.Star, 1), tok.IsRun(token.Dash, 1), tok.Is(token.Plus):
		return listMarker{family: tok.Literal()[0]}, p.peekAt(n + 1).Is(token.Whitespace)
	case tok.Is(token.Text):
		return orderedMarker(tok.Text)
	}
	return listMarker{}, false
}

func (p *Parser) atListMarker(n int) bool {
	_, ok := p.markerAt(n)
	return ok
}

// orderedMarker parses "N. rest" where N has at most nine digits.
func orderedMarker(text string) (listMarker, bool) {
	i := 0
	for i < len(text) && i < 9 && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == 0 || !strings.HasPrefix(text[i:], ". ") {
		return listMarker{}, false
	}
	start, err := strconv.Atoi(text[:i])
	if err != nil {
		return listMarker{}, false
	}
	return listMarker{family: '.', ordered: true, start: start, rest: strings.TrimLeft(text[i+2:], " ")}, true
}

// parseList reads consecutive items of one marker family at the given indentation.
// Items indented deeper than their parent become a nested list.
func (p *Parser) parseList(indent int) (ast.Block, error) {
	first, _ := p.markerAt(0)
	list := ast.List{Ordered: first.ordered}
	if first.ordered {
		list.Start = first.start
	}
	for {
		m, ok := p.markerAt(0)
		if !ok || m.family != first.family {
			break
		}
		item, err := p.parseListItem(m, indent)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)

		if !p.atRun(token.Newline, 1) {
			break
		}
		k := p.countSpaces(1)
		next, ok := p.markerAt(1 + k)
		if !ok || k != indent || next.family != first.family {
			break
		}
		p.advance()
		p.pos += k
	}
	return list, nil
}

func (p *Parser) parseListItem(m listMarker, indent int) (ast.ListItem, error) {
	if m.ordered {
		p.advance()
	} else {
		p.advance()
		p.advance()
	}
	p.skipSpaces()

	var item ast.ListItem
	var l runList
	l.text(m.rest)
	for {
		if _, err := p.parseRuns(&l, stopLine); err != nil {
			return item, err
		}
		if !p.atRun(token.Newline, 1) {
			break
		}
		k := p.countSpaces(1)
		if k <= indent || p.peekAt(1+k).AtLineEnd() {
			break
		}
		if p.atListMarker(1 + k) {
			p.advance()
			p.pos += k
			nested, err := p.parseList(k)
			if err != nil {
				return item, err
			}
			item.Nested = nested
			break
		}
		// deeper non-marker line continues the item text
		p.advance()
		p.pos += k
		l.lineBreak()
	}
	l.trimRight()
	item.Runs = l.runs
	return item, nil
}
