package parser

import (
	"strings"

	"mackerel/internal/ast"
)

// runList accumulates inline runs, merging adjacent text.
type runList struct {
	runs []ast.Run
}

func (l *runList) text(s string) {
	if s == "" {
		return
	}
	if n := len(l.runs); n > 0 {
		if t, ok := l.runs[n-1].(ast.Text); ok {
			l.runs[n-1] = ast.Text{Value: t.Value + s}
			return
		}
	}
	l.runs = append(l.runs, ast.Text{Value: s})
}

func (l *runList) add(r ast.Run) {
	l.runs = append(l.runs, r)
}

// trimRight strips trailing spaces from the last text run and reports how many were removed.
func (l *runList) trimRight() int {
	n := len(l.runs)
	if n == 0 {
		return 0
	}
	t, ok := l.runs[n-1].(ast.Text)
	if !ok {
		return 0
	}
	trimmed := strings.TrimRight(t.Value, " ")
	removed := len(t.Value) - len(trimmed)
	if trimmed == "" {
		l.runs = l.runs[:n-1]
	} else {
		l.runs[n-1] = ast.Text{Value: trimmed}
	}
	return removed
}

func (l *runList) trimLeft() {
	if len(l.runs) == 0 {
		return
	}
	t, ok := l.runs[0].(ast.Text)
	if !ok {
		return
	}
	trimmed := strings.TrimLeft(t.Value, " ")
	if trimmed == "" {
		l.runs = l.runs[1:]
	} else {
		l.runs[0] = ast.Text{Value: trimmed}
	}
}

// lineBreak joins two lines of inline content. Two or more trailing spaces
// make a hard break; otherwise the newline folds into a single space.
func (l *runList) lineBreak() {
	if l.trimRight() >= 2 {
		l.add(ast.LineBreak{})
		return
	}
	l.text(" ")
}
