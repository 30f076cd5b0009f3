// Package mackerel converts a small markdown dialect into HTML.
//
// The pipeline has three stages: Scan turns text into run-length tokens,
// Parse builds a document tree and Render serializes that tree. ParseDocument
// composes the first two and is the usual entry point.
package mackerel

import (
	"mackerel/internal/ast"
	"mackerel/internal/diag"
	"mackerel/internal/lexer"
	"mackerel/internal/parser"
	"mackerel/internal/render"
	"mackerel/internal/token"
)

type (
	Document    = ast.Document
	FrontMatter = ast.FrontMatter
	ParseError  = parser.Error
	ErrorCode   = diag.Code
)

// Block variants. A type switch over Document.Blocks sees exactly these.
type (
	Block          = ast.Block
	Heading        = ast.Heading
	Paragraph      = ast.Paragraph
	List           = ast.List
	ListItem       = ast.ListItem
	Table          = ast.Table
	TableRow       = ast.TableRow
	Cell           = ast.Cell
	CodeBlock      = ast.CodeBlock
	BlockQuote     = ast.BlockQuote
	HorizontalRule = ast.HorizontalRule
)

// Run variants.
type (
	Run       = ast.Run
	Text      = ast.Text
	Bold      = ast.Bold
	Italic    = ast.Italic
	Link      = ast.Link
	Image     = ast.Image
	Code      = ast.Code
	LineBreak = ast.LineBreak
)

type (
	Token     = token.Token
	TokenKind = token.Kind
)

const (
	EOF          = token.EOF
	TextToken    = token.Text
	Whitespace   = token.Whitespace
	Newline      = token.Newline
	Hash         = token.Hash
	Star         = token.Star
	Backtick     = token.Backtick
	Dash         = token.Dash
	Plus         = token.Plus
	Underscore   = token.Underscore
	Exclamation  = token.Exclamation
	Tilde        = token.Tilde
	VerticalLine = token.VerticalLine
	Caret        = token.Caret
	LeftParen    = token.LeftParen
	RightParen   = token.RightParen
	LeftBracket  = token.LeftBracket
	RightBracket = token.RightBracket
	GreaterThan  = token.GreaterThan
)

// Codes carried by ParseError.
const (
	ErrUnexpectedToken      = diag.SynUnexpectedToken
	ErrFrontMatterDelimiter = diag.SynFrontMatterDelimiter
	ErrFrontMatterEntry     = diag.SynFrontMatterEntry
	ErrUnterminatedEmphasis = diag.SynUnterminatedEmphasis
	ErrMalformedLink        = diag.SynMalformedLink
	ErrUnterminatedFence    = diag.SynUnterminatedFence
	ErrUnterminatedCode     = diag.SynUnterminatedCode
	ErrTableRowMismatch     = diag.SynTableRowMismatch
)

// Scan tokenizes text. It never fails; the result always ends with an EOF token.
func Scan(text string) []Token {
	return lexer.ScanString(text)
}

// Parse builds a document from tokens produced by Scan.
// On failure the error is a *ParseError and no document is returned.
func Parse(tokens []Token) (*Document, error) {
	return parser.Parse(tokens, parser.Options{})
}

// ParseDocument scans and parses text.
func ParseDocument(text string) (*Document, error) {
	return Parse(Scan(text))
}

// Render serializes doc as HTML with no separators between blocks.
func Render(doc *Document) string {
	return render.HTML(doc)
}
