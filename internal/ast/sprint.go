package ast

import (
	"fmt"
	"strings"
)

// Sprint returns a compact one-line form of a block, e.g.
// Paragraph[Text("a") Bold[Text("b")]]. It is meant for test failures and logs.
func Sprint(b Block) string {
	var sb strings.Builder
	sprintBlock(&sb, b)
	return sb.String()
}

// SprintRuns is Sprint for an inline run sequence.
func SprintRuns(runs []Run) string {
	var sb strings.Builder
	sprintRuns(&sb, runs)
	return sb.String()
}

func sprintBlock(sb *strings.Builder, b Block) {
	switch b := b.(type) {
	case Heading:
		fmt.Fprintf(sb, "H%d", b.Level)
		sprintRuns(sb, b.Runs)
	case Paragraph:
		sb.WriteString("Paragraph")
		sprintRuns(sb, b.Runs)
	case List:
		if b.Ordered {
			fmt.Fprintf(sb, "OL(%d){", b.Start)
		} else {
			sb.WriteString("UL{")
		}
		for i, it := range b.Items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString("Item")
			sprintRuns(sb, it.Runs)
			if it.Nested != nil {
				sb.WriteByte('>')
				sprintBlock(sb, it.Nested)
			}
		}
		sb.WriteByte('}')
	case Table:
		sb.WriteString("Table{")
		sprintRow(sb, b.Header)
		for _, row := range b.Body {
			sb.WriteByte(' ')
			sprintRow(sb, row)
		}
		sb.WriteByte('}')
	case CodeBlock:
		fmt.Fprintf(sb, "Code(%q,%q)", b.Lang, b.Content)
	case BlockQuote:
		sb.WriteString("Quote{")
		for i, inner := range b.Blocks {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sprintBlock(sb, inner)
		}
		sb.WriteByte('}')
	case HorizontalRule:
		sb.WriteString("HR")
	default:
		fmt.Fprintf(sb, "%T", b)
	}
}

func sprintRow(sb *strings.Builder, row TableRow) {
	if row.IsHeader {
		sb.WriteString("TH(")
	} else {
		sb.WriteString("TR(")
	}
	for i, c := range row.Cells {
		if i > 0 {
			sb.WriteByte('|')
		}
		sprintRuns(sb, c.Runs)
	}
	sb.WriteByte(')')
}

func sprintRuns(sb *strings.Builder, runs []Run) {
	sb.WriteByte('[')
	for i, r := range runs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch r := r.(type) {
		case Text:
			fmt.Fprintf(sb, "Text(%q)", r.Value)
		case Bold:
			sb.WriteString("Bold")
			sprintRuns(sb, r.Runs)
		case Italic:
			sb.WriteString("Italic")
			sprintRuns(sb, r.Runs)
		case Link:
			fmt.Fprintf(sb, "Link(%q)", r.URL)
			sprintRuns(sb, r.Runs)
		case Image:
			fmt.Fprintf(sb, "Image(%q,%q)", r.URL, r.Alt)
		case Code:
			fmt.Fprintf(sb, "Code(%q)", r.Value)
		case LineBreak:
			sb.WriteString("BR")
		default:
			fmt.Fprintf(sb, "%T", r)
		}
	}
	sb.WriteByte(']')
}
