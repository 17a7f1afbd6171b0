// Package indexing plugs the stemmer into bleve as the stem_fa token filter
// and builds Persian search indexes around it.
package indexing

import (
	"errors"
	"sync/atomic"

	"github.com/blevesearch/bleve/analysis"
	"github.com/blevesearch/bleve/registry"
	"github.com/kljensen/snowball/english"

	"github.com/kuandriy/persian-stemmer/internal/text"
)

// FilterName is the registry name of the stemming token filter.
const FilterName = "stem_fa"

// ErrUnbound is returned when an analyzer using stem_fa is built before Use.
var ErrUnbound = errors.New("indexing: no stemmer bound to " + FilterName)

// Stemmer is the part of stemmer.Stemmer the filter needs.
type Stemmer interface {
	Stem(word string) string
}

// Filter replaces each token's term with its stem.
type Filter struct {
	stemmer Stemmer
	latin   bool
}

// NewFilter returns a filter over s. With latin set, Latin-script tokens go
// through the English snowball stemmer instead of being kept as is.
func NewFilter(s Stemmer, latin bool) *Filter {
	return &Filter{stemmer: s, latin: latin}
}

// Filter stems tokens in place. Keyword tokens pass through; tokens whose
// stem is empty are dropped.
func (f *Filter) Filter(input analysis.TokenStream) analysis.TokenStream {
	out := input[:0]
	for _, tok := range input {
		if tok.KeyWord {
			out = append(out, tok)
			continue
		}
		stem := f.stem(string(tok.Term))
		if stem == "" {
			continue
		}
		tok.Term = []byte(stem)
		out = append(out, tok)
	}
	return out
}

func (f *Filter) stem(term string) string {
	if f.latin && text.IsLatin(term) {
		return english.Stem(term, false)
	}
	return f.stemmer.Stem(term)
}

var bound atomic.Pointer[Filter]

// Use binds the stemmer that analyzers built from now on will use.
func Use(s Stemmer, latin bool) {
	bound.Store(NewFilter(s, latin))
}

func init() {
	registry.RegisterTokenFilter(FilterName, filterConstructor)
}

func filterConstructor(config map[string]interface{}, cache *registry.Cache) (analysis.TokenFilter, error) {
	f := bound.Load()
	if f == nil {
		return nil, ErrUnbound
	}
	return f, nil
}
