package ast

import (
	"reflect"
	"sort"
)

// FrontMatter is the metadata table declared at the top of a document.
type FrontMatter map[string]string

// Keys returns the front matter keys in lexical order.
func (fm FrontMatter) Keys() []string {
	keys := make([]string, 0, len(fm))
	for k := range fm {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Document is the root of a parsed markup file.
type Document struct {
	FrontMatter FrontMatter
	Blocks      []Block
}

// Equal reports whether two documents are structurally identical.
// A nil and an empty front matter table compare equal.
func Equal(a, b *Document) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.FrontMatter) != len(b.FrontMatter) {
		return false
	}
	for k, v := range a.FrontMatter {
		if w, ok := b.FrontMatter[k]; !ok || w != v {
			return false
		}
	}
	return reflect.DeepEqual(a.Blocks, b.Blocks)
}
