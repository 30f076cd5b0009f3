package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
	"gopkg.in/yaml.v3"

	"mackerel/internal/ast"
)

// ASTNodeOutput is the serializable form of a document tree node.
type ASTNodeOutput struct {
	Type     string          `json:"type" yaml:"type"`
	Text     string          `json:"text,omitempty" yaml:"text,omitempty"`
	Fields   map[string]any  `json:"fields,omitempty" yaml:"fields,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty" yaml:"children,omitempty"`
}

// BuildTree converts doc into its serializable form.
func BuildTree(doc *ast.Document) ASTNodeOutput {
	root := ASTNodeOutput{Type: "Document"}
	if len(doc.FrontMatter) > 0 {
		fm := ASTNodeOutput{Type: "FrontMatter"}
		for _, k := range doc.FrontMatter.Keys() {
			fm.Children = append(fm.Children, ASTNodeOutput{
				Type:   "Entry",
				Text:   doc.FrontMatter[k],
				Fields: map[string]any{"key": k},
			})
		}
		root.Children = append(root.Children, fm)
	}
	for _, b := range doc.Blocks {
		root.Children = append(root.Children, blockNode(b))
	}
	return root
}

func blockNode(b ast.Block) ASTNodeOutput {
	switch b := b.(type) {
	case ast.Heading:
		return ASTNodeOutput{Type: "Heading", Fields: map[string]any{"level": b.Level}, Children: runNodes(b.Runs)}
	case ast.Paragraph:
		return ASTNodeOutput{Type: "Paragraph", Children: runNodes(b.Runs)}
	case ast.List:
		n := ASTNodeOutput{Type: "List", Fields: map[string]any{"ordered": b.Ordered}}
		if b.Ordered {
			n.Fields["start"] = b.Start
		}
		for _, it := range b.Items {
			item := ASTNodeOutput{Type: "ListItem", Children: runNodes(it.Runs)}
			if it.Nested != nil {
				item.Children = append(item.Children, blockNode(it.Nested))
			}
			n.Children = append(n.Children, item)
		}
		return n
	case ast.Table:
		n := ASTNodeOutput{Type: "Table", Children: []ASTNodeOutput{rowNode(b.Header)}}
		for _, row := range b.Body {
			n.Children = append(n.Children, rowNode(row))
		}
		return n
	case ast.CodeBlock:
		n := ASTNodeOutput{Type: "CodeBlock", Text: b.Content}
		if b.Lang != "" {
			n.Fields = map[string]any{"lang": b.Lang}
		}
		return n
	case ast.BlockQuote:
		n := ASTNodeOutput{Type: "BlockQuote"}
		for _, inner := range b.Blocks {
			n.Children = append(n.Children, blockNode(inner))
		}
		return n
	case ast.HorizontalRule:
		return ASTNodeOutput{Type: "HorizontalRule"}
	default:
		return ASTNodeOutput{Type: fmt.Sprintf("%T", b)}
	}
}

func rowNode(row ast.TableRow) ASTNodeOutput {
	n := ASTNodeOutput{Type: "Row"}
	if row.IsHeader {
		n.Type = "HeaderRow"
	}
	for _, c := range row.Cells {
		n.Children = append(n.Children, ASTNodeOutput{Type: "Cell", Children: runNodes(c.Runs)})
	}
	return n
}

func runNodes(runs []ast.Run) []ASTNodeOutput {
	out := make([]ASTNodeOutput, 0, len(runs))
	for _, r := range runs {
		switch r := r.(type) {
		case ast.Text:
			out = append(out, ASTNodeOutput{Type: "Text", Text: r.Value})
		case ast.Bold:
			out = append(out, ASTNodeOutput{Type: "Bold", Children: runNodes(r.Runs)})
		case ast.Italic:
			out = append(out, ASTNodeOutput{Type: "Italic", Children: runNodes(r.Runs)})
		case ast.Link:
			out = append(out, ASTNodeOutput{Type: "Link", Fields: map[string]any{"url": r.URL}, Children: runNodes(r.Runs)})
		case ast.Image:
			out = append(out, ASTNodeOutput{Type: "Image", Text: r.Alt, Fields: map[string]any{"url": r.URL}})
		case ast.Code:
			out = append(out, ASTNodeOutput{Type: "Code", Text: r.Value})
		case ast.LineBreak:
			out = append(out, ASTNodeOutput{Type: "LineBreak"})
		}
	}
	return out
}

func (n ASTNodeOutput) label() string {
	var sb strings.Builder
	sb.WriteString(n.Type)
	if len(n.Fields) > 0 {
		keys := make([]string, 0, len(n.Fields))
		for k := range n.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s: %v", k, n.Fields[k])
		}
		sb.WriteByte(')')
	}
	if n.Text != "" || n.Type == "Text" {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(n.Text))
	}
	return sb.String()
}

// FormatTreePretty draws the document as an indented tree.
// header, when non-empty, replaces the root label.
func FormatTreePretty(w io.Writer, doc *ast.Document, header string) error {
	root := BuildTree(doc)
	label := root.label()
	if header != "" {
		label = header
	}
	if _, err := fmt.Fprintln(w, label); err != nil {
		return err
	}
	writeChildren(w, root.Children, "")
	return nil
}

func writeChildren(w io.Writer, children []ASTNodeOutput, prefix string) {
	for i, child := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, child.label())
		writeChildren(w, child.Children, prefix+next)
	}
}

// FormatTreeJSON writes the document tree as indented JSON.
func FormatTreeJSON(w io.Writer, doc *ast.Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTree(doc))
}

// FormatTreeYAML writes the document tree as YAML.
func FormatTreeYAML(w io.Writer, doc *ast.Document) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(BuildTree(doc)); err != nil {
		return err
	}
	return encoder.Close()
}

// FormatTreePP dumps the raw Go values of the tree. It uses its own printer
// so the package-level pp settings stay untouched.
func FormatTreePP(w io.Writer, doc *ast.Document, colored bool) error {
	printer := pp.New()
	printer.SetColoringEnabled(colored)
	_, err := printer.Fprintln(w, doc)
	return err
}
