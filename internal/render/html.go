// Package render serializes document trees to HTML.
package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"mackerel/internal/ast"
)

type renderer struct {
	cfg config
	sb  strings.Builder
}

// HTML renders doc. Rendering cannot fail: every tree the parser produces
// maps onto a fixed tag structure.
func HTML(doc *ast.Document, opts ...Option) string {
	r := &renderer{}
	for _, opt := range opts {
		opt(&r.cfg)
	}
	if doc == nil {
		return ""
	}
	if r.cfg.frontMatter {
		for _, k := range doc.FrontMatter.Keys() {
			fmt.Fprintf(&r.sb, `<meta name="%s" content="%s">`, attr(k), attr(doc.FrontMatter[k]))
			r.endBlock()
		}
	}
	r.blocks(doc.Blocks)
	return r.sb.String()
}

// Runs renders an inline run sequence on its own.
func Runs(runs []ast.Run) string {
	r := &renderer{}
	r.runs(runs)
	return r.sb.String()
}

func (r *renderer) endBlock() {
	if r.cfg.newlines {
		r.sb.WriteByte('\n')
	}
}

func (r *renderer) blocks(blocks []ast.Block) {
	for _, b := range blocks {
		r.block(b)
	}
}

func (r *renderer) block(b ast.Block) {
	switch b := b.(type) {
	case ast.Heading:
		level := min(max(b.Level, 1), 6)
		fmt.Fprintf(&r.sb, "<h%d>", level)
		r.runs(b.Runs)
		fmt.Fprintf(&r.sb, "</h%d>", level)
	case ast.Paragraph:
		r.sb.WriteString("<p>")
		r.runs(b.Runs)
		r.sb.WriteString("</p>")
	case ast.List:
		r.list(b)
	case ast.Table:
		r.table(b)
	case ast.CodeBlock:
		r.sb.WriteString("<pre><code")
		if b.Lang != "" {
			fmt.Fprintf(&r.sb, ` class="language-%s"`, attr(b.Lang))
		}
		r.sb.WriteByte('>')
		r.sb.WriteString(html.EscapeString(b.Content))
		r.sb.WriteString("</code></pre>")
	case ast.BlockQuote:
		r.sb.WriteString("<blockquote>")
		r.endBlock()
		r.blocks(b.Blocks)
		r.sb.WriteString("</blockquote>")
	case ast.HorizontalRule:
		r.sb.WriteString("<hr>")
	default:
		return
	}
	r.endBlock()
}

func (r *renderer) list(l ast.List) {
	switch {
	case l.Ordered && l.Start > 1:
		r.sb.WriteString(`<ol start="` + strconv.Itoa(l.Start) + `">`)
	case l.Ordered:
		r.sb.WriteString("<ol>")
	default:
		r.sb.WriteString("<ul>")
	}
	r.endBlock()
	for _, item := range l.Items {
		r.sb.WriteString("<li>")
		r.runs(item.Runs)
		if item.Nested != nil {
			r.block(item.Nested)
		}
		r.sb.WriteString("</li>")
		r.endBlock()
	}
	if l.Ordered {
		r.sb.WriteString("</ol>")
	} else {
		r.sb.WriteString("</ul>")
	}
}

func (r *renderer) table(t ast.Table) {
	r.sb.WriteString("<table><thead>")
	r.row(t.Header, "th")
	r.sb.WriteString("</thead>")
	if len(t.Body) > 0 {
		r.sb.WriteString("<tbody>")
		for _, row := range t.Body {
			r.row(row, "td")
		}
		r.sb.WriteString("</tbody>")
	}
	r.sb.WriteString("</table>")
}

func (r *renderer) row(row ast.TableRow, cell string) {
	r.sb.WriteString("<tr>")
	for _, c := range row.Cells {
		r.sb.WriteString("<" + cell + ">")
		r.runs(c.Runs)
		r.sb.WriteString("</" + cell + ">")
	}
	r.sb.WriteString("</tr>")
}

func (r *renderer) runs(runs []ast.Run) {
	for _, run := range runs {
		switch run := run.(type) {
		case ast.Text:
			r.sb.WriteString(html.EscapeString(run.Value))
		case ast.Bold:
			r.sb.WriteString("<b>")
			r.runs(run.Runs)
			r.sb.WriteString("</b>")
		case ast.Italic:
			r.sb.WriteString("<i>")
			r.runs(run.Runs)
			r.sb.WriteString("</i>")
		case ast.Link:
			fmt.Fprintf(&r.sb, `<a href="%s">`, attr(run.URL))
			r.runs(run.Runs)
			r.sb.WriteString("</a>")
		case ast.Image:
			fmt.Fprintf(&r.sb, `<img src="%s" alt="%s">`, attr(run.URL), attr(run.Alt))
		case ast.Code:
			r.sb.WriteString("<code>")
			r.sb.WriteString(html.EscapeString(run.Value))
			r.sb.WriteString("</code>")
		case ast.LineBreak:
			r.sb.WriteString("<br>")
		}
	}
}

func attr(s string) string {
	return html.EscapeString(s)
}
