package driver

import (
	"fmt"

	"mackerel/internal/diag"
	"mackerel/internal/lexer"
	"mackerel/internal/source"
	"mackerel/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and scans it. Scanning never fails, so the bag stays
// empty; it is returned so callers can treat every stage the same way.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lexer.Scan(file),
		Bag:     diag.NewBag(maxDiagnostics),
	}, nil
}
