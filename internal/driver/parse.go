package driver

import (
	"mackerel/internal/ast"
	"mackerel/internal/diag"
	"mackerel/internal/parser"
	"mackerel/internal/source"
)

type ParseResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Document *ast.Document
	Bag      *diag.Bag
	// Err is the parse failure, if any. It is also present in Bag.
	Err error
}

// Parse loads, scans and parses path. The returned error covers loading only;
// a syntax error is stored in ParseResult.Err and reported into the bag.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	tr, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	doc, perr := parser.Parse(tr.Tokens, parser.Options{
		Reporter: diag.BagReporter{Bag: tr.Bag},
	})
	return &ParseResult{
		FileSet:  tr.FileSet,
		File:     tr.File,
		Document: doc,
		Bag:      tr.Bag,
		Err:      perr,
	}, nil
}
