package indexing

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/analysis/char/zerowidthnonjoiner"
	"github.com/blevesearch/bleve/analysis/lang/fa"
	"github.com/blevesearch/bleve/analysis/token/lowercase"
	"github.com/blevesearch/bleve/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/mapping"
)

// AnalyzerName is the default analyzer of mappings from NewMapping.
const AnalyzerName = "persian_stem"

// FieldText holds a document's line of text.
const FieldText = "text"

// Document is one indexed line.
type Document struct {
	Source string `json:"source"`
	Line   int    `json:"line"`
	Text   string `json:"text"`
}

// NewMapping builds an index mapping whose default analyzer stems Persian
// with the stemmer bound by Use.
func NewMapping() (*mapping.IndexMappingImpl, error) {
	m := bleve.NewIndexMapping()
	err := m.AddCustomAnalyzer(AnalyzerName, map[string]interface{}{
		"type":         custom.Name,
		"char_filters": []string{zerowidthnonjoiner.Name},
		"tokenizer":    unicode.Name,
		"token_filters": []string{
			lowercase.Name,
			fa.StopName,
			FilterName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("add %s analyzer: %w", AnalyzerName, err)
	}
	m.DefaultAnalyzer = AnalyzerName
	return m, nil
}

// NewIndex opens a memory-only index over NewMapping.
func NewIndex() (bleve.Index, error) {
	m, err := NewMapping()
	if err != nil {
		return nil, err
	}
	return bleve.NewMemOnly(m)
}

// IndexLines indexes every non-blank line of r as a Document in one batch and
// returns how many were added.
func IndexLines(idx bleve.Index, source string, r io.Reader) (int, error) {
	batch := idx.NewBatch()
	sc := bufio.NewScanner(r)
	n, added := 0, 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		doc := Document{Source: source, Line: n, Text: line}
		if err := batch.Index(fmt.Sprintf("%s:%d", source, n), doc); err != nil {
			return added, err
		}
		added++
	}
	if err := sc.Err(); err != nil {
		return added, err
	}
	if err := idx.Batch(batch); err != nil {
		return 0, err
	}
	return added, nil
}

// Search runs a match query for q and returns up to size hits with their
// stored text.
func Search(idx bleve.Index, q string, size int) (*bleve.SearchResult, error) {
	req := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(q), size, 0, false)
	req.Fields = []string{FieldText}
	return idx.Search(req)
}
