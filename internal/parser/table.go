package parser

import (
	"fmt"
	"strings"

	"mackerel/internal/ast"
	"mackerel/internal/diag"
	"mackerel/internal/token"
)

// atTable: the current line holds a '|' and the next line is a separator row.
func (p *Parser) atTable() bool {
	n := 0
	pipe := false
	for tok := p.peekAt(n); !tok.AtLineEnd(); tok = p.peekAt(n) {
		if tok.Is(token.VerticalLine) {
			pipe = true
		}
		n++
	}
	if !pipe || !p.peekAt(n).IsRun(token.Newline, 1) {
		return false
	}
	return p.separatorAt(n + 1)
}

// separatorAt reports whether the line at offset n consists only of pipes,
// dashes, colons and spaces, with at least one dash.
func (p *Parser) separatorAt(n int) bool {
	dash := false
	for tok := p.peekAt(n); !tok.AtLineEnd(); tok = p.peekAt(n) {
		switch tok.Kind {
		case token.Dash:
			dash = true
		case token.VerticalLine, token.Whitespace:
		case token.Text:
			if strings.Trim(tok.Text, ":- ") != "" {
				return false
			}
			if strings.Contains(tok.Text, "-") {
				dash = true
			}
		default:
			return false
		}
		n++
	}
	return dash
}

func (p *Parser) parseTable() (ast.Block, error) {
	header, err := p.parseRow(true)
	if err != nil {
		return nil, err
	}
	p.advance() // newline before the separator
	p.skipLine()

	table := ast.Table{Header: header}
	for p.atRun(token.Newline, 1) && !p.lineEndAfterSpaces(1) {
		p.advance()
		start := p.pos
		row, err := p.parseRow(false)
		if err != nil {
			return nil, err
		}
		if len(row.Cells) != len(header.Cells) {
			return nil, p.failAt(start, diag.SynTableRowMismatch,
				fmt.Sprintf("malformed table row: expected %d cells, got %d", len(header.Cells), len(row.Cells)))
		}
		table.Body = append(table.Body, row)
	}
	return table, nil
}

// parseRow splits one line into cells. Leading and trailing pipes are optional.
func (p *Parser) parseRow(header bool) (ast.TableRow, error) {
	row := ast.TableRow{IsHeader: header}
	p.skipSpaces()
	if p.at(token.VerticalLine) {
		p.advance()
	}
	for {
		var l runList
		if _, err := p.parseRuns(&l, stopCell); err != nil {
			return row, err
		}
		l.trimLeft()
		l.trimRight()
		row.Cells = append(row.Cells, ast.Cell{Runs: l.runs})
		if !p.at(token.VerticalLine) {
			break
		}
		p.advance()
		if p.lineEndAfterSpaces(0) {
			p.skipSpaces()
			break
		}
	}
	return row, nil
}
