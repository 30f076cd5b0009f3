package ast

import "strings"

// Run is an inline span of formatted text.
type Run interface {
	runNode()
}

type Text struct {
	Value string
}

// Bold and Italic always wrap at least one run.
type Bold struct {
	Runs []Run
}

type Italic struct {
	Runs []Run
}

type Link struct {
	URL  string
	Runs []Run
}

type Image struct {
	URL string
	Alt string
}

type Code struct {
	Value string
}

type LineBreak struct{}

func (Text) runNode()      {}
func (Bold) runNode()      {}
func (Italic) runNode()    {}
func (Link) runNode()      {}
func (Image) runNode()     {}
func (Code) runNode()      {}
func (LineBreak) runNode() {}

// PlainText flattens runs into their visible text, dropping formatting.
// Line breaks become spaces.
func PlainText(runs []Run) string {
	var b strings.Builder
	writePlain(&b, runs)
	return b.String()
}

func writePlain(b *strings.Builder, runs []Run) {
	for _, r := range runs {
		switch r := r.(type) {
		case Text:
			b.WriteString(r.Value)
		case Bold:
			writePlain(b, r.Runs)
		case Italic:
			writePlain(b, r.Runs)
		case Link:
			writePlain(b, r.Runs)
		case Image:
			b.WriteString(r.Alt)
		case Code:
			b.WriteString(r.Value)
		case LineBreak:
			b.WriteByte(' ')
		}
	}
}
