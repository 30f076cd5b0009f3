package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"mackerel/internal/source"
	"mackerel/internal/token"
)

// CheckTokenSpans runs the span invariants of a scanned file:
// 1) the sequence is non-empty and ends with exactly one EOF
// 2) every non-EOF token has a non-empty span inside the file
// 3) spans are contiguous, so together they cover the whole content
// 4) the EOF span is empty and sits at the end of the content
func CheckTokenSpans(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token sequence")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var next uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if tok.Kind == token.EOF {
			if i != len(tokens)-1 {
				return fmt.Errorf("EOF at index %d before end of sequence", i)
			}
			if !sp.Empty() || sp.Start != lenContent {
				return fmt.Errorf("EOF span %v, want empty span at %d", sp, lenContent)
			}
			continue
		}
		if sp.Empty() {
			return fmt.Errorf("token %d (%v) has empty span", i, tok.Kind)
		}
		if sp.Start != next {
			return fmt.Errorf("token %d starts at %d, want %d", i, sp.Start, next)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		next = sp.End
	}
	if tokens[len(tokens)-1].Kind != token.EOF {
		return fmt.Errorf("sequence does not end with EOF")
	}
	return nil
}
