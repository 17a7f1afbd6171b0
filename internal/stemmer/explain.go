package stemmer

// Trace records how one pass reached its stem. Stage fields stay empty when
// the pass returned before reaching them.
type Trace struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	// Skipped is why the word was returned unchanged: empty, latin, number
	// or short.
	Skipped     string   `json:"skipped,omitempty"`
	Mokassar    string   `json:"mokassar,omitempty"`
	Working     string   `json:"working,omitempty"`
	Candidates  []string `json:"candidates,omitempty"`
	Terminated  bool     `json:"terminated,omitempty"`
	Verb        string   `json:"verb,omitempty"`
	VerbPattern string   `json:"verbPattern,omitempty"`
	Fallback    string   `json:"fallback,omitempty"`
	TieBreak    bool     `json:"tieBreak,omitempty"`
	Result      string   `json:"result"`
	// Cached is the stem currently cached for the word, if any.
	Cached string `json:"cached,omitempty"`
}

// Explain runs one uncached pass over word and reports every stage. It never
// writes the cache and never takes its result from it; Cached only shows what
// the cache currently holds.
func (s *Stemmer) Explain(word string) Trace {
	tr := Trace{Input: word}
	tr.Normalized, tr.Skipped = prepare(word)
	if tr.Skipped != "" {
		tr.Result = tr.Normalized
		return tr
	}
	if s.cache != nil {
		tr.Cached, _ = s.cache.Get(tr.Normalized)
	}
	tr.Result = s.pass(tr.Normalized, &tr)
	return tr
}
