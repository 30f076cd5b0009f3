package driver

import (
	"fmt"
	"time"

	"mackerel/internal/diag"
	"mackerel/internal/parser"
	"mackerel/internal/project"
	"mackerel/internal/render"
	"mackerel/internal/source"
)

// RenderOptions are the HTML switches that affect output bytes.
type RenderOptions struct {
	Newlines    bool
	FrontMatter bool
}

func (o RenderOptions) options() []render.Option {
	return []render.Option{
		render.WithNewlines(o.Newlines),
		render.WithFrontMatter(o.FrontMatter),
	}
}

// CacheKey derives the disk cache key for content rendered with o.
func (o RenderOptions) CacheKey(content project.Digest) project.Digest {
	flags := []byte{0, 0}
	if o.Newlines {
		flags[0] = 1
	}
	if o.FrontMatter {
		flags[1] = 1
	}
	return project.Combine(content, []byte("html"), flags)
}

type RenderResult struct {
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
	HTML    string
	Cached  bool
}

// RenderFile converts one markup file into HTML. A nil cache disables caching.
// When parsing fails the result still carries the bag with the diagnostic.
func RenderFile(path string, opts RenderOptions, cache *DiskCache, maxDiagnostics int) (*RenderResult, error) {
	tr, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	res := &RenderResult{FileSet: tr.FileSet, File: tr.File, Bag: tr.Bag}

	key := opts.CacheKey(tr.File.Hash)
	var payload DiskPayload
	hit, err := cache.Get(key, &payload)
	if err != nil {
		return res, err
	}
	if hit {
		res.HTML = payload.HTML
		res.Cached = true
		return res, nil
	}

	html, err := renderTokens(tr, opts)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	res.HTML = html

	err = cache.Put(key, &DiskPayload{
		Source:      path,
		ContentHash: tr.File.Hash,
		HTML:        html,
		RenderedAt:  time.Now().Unix(),
	})
	if err != nil {
		return res, fmt.Errorf("failed to write cache entry: %w", err)
	}
	return res, nil
}

func renderTokens(tr *TokenizeResult, opts RenderOptions) (string, error) {
	doc, err := parser.Parse(tr.Tokens, parser.Options{
		Reporter: diag.BagReporter{Bag: tr.Bag},
	})
	if err != nil {
		return "", err
	}
	return render.HTML(doc, opts.options()...), nil
}
