// Package token defines the lexical vocabulary shared by the scanner and the parser.
// Invariants:
//   - Token.Text is a slice of the original source (no copies) and Token.Span matches it exactly.
//   - Repeatable kinds (Newline, Hash, Star, Backtick, Dash) carry their run length in Len;
//     a scanned sequence never holds two adjacent tokens of the same repeatable kind.
//   - Every other kind has Len == 1.
//   - A scanned sequence ends with exactly one EOF token (Len == 0, empty Text).
package token
