package text

import "sort"

// Freq counts stems across a set of documents: total occurrences and the
// number of documents each stem appears in.
type Freq struct {
	Count   map[string]int `json:"count"`
	DocFreq map[string]int `json:"docFreq"`
	Docs    int            `json:"docs"`
}

// NewFreq creates an empty counter.
func NewFreq() *Freq {
	return &Freq{
		Count:   make(map[string]int),
		DocFreq: make(map[string]int),
	}
}

// Add records one document's stems.
func (f *Freq) Add(stems []string) {
	seen := make(map[string]bool, len(stems))
	for _, s := range stems {
		f.Count[s]++
		if !seen[s] {
			f.DocFreq[s]++
			seen[s] = true
		}
	}
	f.Docs++
}

// TermCount is one row of Top.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
	DF    int    `json:"df"`
}

// Top returns the n most frequent stems, ties broken by term. n <= 0 returns
// all of them.
func (f *Freq) Top(n int) []TermCount {
	out := make([]TermCount, 0, len(f.Count))
	for term, c := range f.Count {
		out = append(out, TermCount{Term: term, Count: c, DF: f.DocFreq[term]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
