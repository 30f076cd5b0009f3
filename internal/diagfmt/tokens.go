package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/muesli/reflow/truncate"

	"mackerel/internal/source"
	"mackerel/internal/token"
)

// maxTokenText bounds how much of a token's text the pretty listing shows.
const maxTokenText = 48

type TokenOutput struct {
	Kind string      `json:"kind"`
	Len  int         `json:"len,omitempty"`
	Text string      `json:"text,omitempty"`
	Span source.Span `json:"span"`
}

// FormatTokensPretty writes one token per line with its position.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		label := tok.Kind.String()
		if tok.Kind.Repeatable() {
			label = fmt.Sprintf("%s(%d)", tok.Kind, tok.Len)
		}
		if _, err := fmt.Fprintf(w, "%3d: %-16s", i+1, label); err != nil {
			return err
		}
		if tok.Kind == token.Text {
			fmt.Fprintf(w, " %q", truncate.StringWithTail(tok.Text, maxTokenText, "…"))
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Span: tok.Span,
		}
		if tok.Kind.Repeatable() {
			out.Len = tok.Len
		}
		if tok.Kind == token.Text {
			out.Text = tok.Text
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
