// Package stemmer reduces inflected Persian words to their stems using a
// lexicon, broken-plural and verb dictionaries, and an ordered table of
// affix-stripping pattern rules.
package stemmer

import (
	"errors"

	"go.uber.org/zap"

	"github.com/kuandriy/persian-stemmer/internal/text"
)

// maxRounds bounds the fixpoint loop in Stem.
const maxRounds = 32

// ErrNoTables is returned by New when no tables are given.
var ErrNoTables = errors.New("stemmer: nil tables")

// Options configures a Stemmer.
type Options struct {
	EnableCache bool
	EnableVerb  bool
	// PatternRank selects among surviving candidates: positive sorts
	// descending, negative ascending, and |PatternRank| picks the position.
	// Zero keeps rule order and picks the first.
	PatternRank int
	// CacheSize bounds the cache; zero or less means unbounded.
	CacheSize int
	Logger    *zap.Logger
}

// DefaultOptions returns cache on, verbs on, rank 1, unbounded cache.
func DefaultOptions() Options {
	return Options{
		EnableCache: true,
		EnableVerb:  true,
		PatternRank: 1,
	}
}

// Stemmer is safe for concurrent use. Tables are only read; the cache is
// the single shared mutable structure.
type Stemmer struct {
	tables *Tables
	opts   Options
	cache  Cache
	log    *zap.Logger
}

// New creates a Stemmer over tables.
func New(tables *Tables, opts Options) (*Stemmer, error) {
	if tables == nil {
		return nil, ErrNoTables
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &Stemmer{tables: tables, opts: opts, log: log}
	if opts.EnableCache {
		s.cache = NewCache(opts.CacheSize)
	}
	return s, nil
}

// Stem re-stems its own output until it stops changing. If the outputs
// cycle, the smallest word of the cycle is returned, so Stem(Stem(w)) ==
// Stem(w) holds either way.
func (s *Stemmer) Stem(word string) string {
	seen := []string{word}
	for i := 0; i < maxRounds; i++ {
		out := s.StemOnce(word)
		if out == word {
			return out
		}
		for j, prev := range seen {
			if prev == out {
				return smallest(seen[j:])
			}
		}
		seen = append(seen, out)
		word = out
	}
	s.log.Debug("fixpoint did not settle", zap.String("word", seen[0]), zap.String("last", word))
	return word
}

// StemOnce runs a single stemming pass.
func (s *Stemmer) StemOnce(word string) string {
	word, skip := prepare(word)
	if skip != "" {
		return word
	}

	if s.cache != nil {
		if stem, ok := s.cache.Get(word); ok {
			return stem
		}
	}
	return s.remember(word, s.pass(word, nil))
}

// prepare normalizes word and reports why it is returned as is, if it is.
func prepare(word string) (string, string) {
	word = text.Normalize(word)
	switch {
	case word == "":
		return word, "empty"
	case text.IsNumber(word):
		return word, "number"
	case text.IsLatin(word):
		return word, "latin"
	case runeLen(word) <= 2:
		return word, "short"
	}
	return word, ""
}

// pass is the uncached body of StemOnce over a normalized word. tr, when
// not nil, records each stage.
func (s *Stemmer) pass(word string, tr *Trace) string {
	if stem := s.MokassarStem(word); stem != "" {
		if tr != nil {
			tr.Mokassar = stem
		}
		return stem
	}

	working := s.NormalizeValidate(word, false)
	if tr != nil {
		tr.Working = working
	}
	if stem := s.MokassarStem(working); stem != "" {
		if tr != nil {
			tr.Mokassar = stem
		}
		return stem
	}

	candidates, terminated := s.ApplyRules(working)
	if tr != nil {
		tr.Candidates = append([]string(nil), candidates...)
		tr.Terminated = terminated
	}

	if s.opts.EnableVerb {
		if stem := s.ResolveVerb(working); stem != "" {
			candidates = []string{stem}
			if tr != nil {
				tr.Verb = stem
			}
		} else if stem := s.VerbPatternResolve(working); stem != "" {
			candidates = []string{stem}
			if tr != nil {
				tr.VerbPattern = stem
			}
		}
	}

	if len(candidates) == 0 {
		if v := s.NormalizeValidate(working, true); s.Validate(v) {
			if tr != nil {
				tr.Fallback = v
			}
			return v
		}
		candidates = []string{working}
	}

	if terminated && len(candidates) > 1 {
		if tr != nil {
			tr.TieBreak = true
		}
		return ResolveTies(candidates)
	}
	return selectRanked(candidates, s.opts.PatternRank)
}

func (s *Stemmer) remember(key, stem string) string {
	if s.cache != nil {
		s.cache.Put(key, stem)
	}
	return stem
}

// Restore loads previously computed stems into the cache. It is a no-op
// when caching is disabled.
func (s *Stemmer) Restore(stems map[string]string) {
	if s.cache == nil {
		return
	}
	for word, stem := range stems {
		s.cache.Put(word, stem)
	}
	s.log.Debug("cache restored", zap.Int("entries", len(stems)))
}

// Snapshot copies the cache contents; nil when caching is disabled.
func (s *Stemmer) Snapshot() map[string]string {
	if s.cache == nil {
		return nil
	}
	return s.cache.Snapshot()
}

// CacheLen reports the number of cached stems.
func (s *Stemmer) CacheLen() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

func smallest(words []string) string {
	best := words[0]
	for _, w := range words[1:] {
		if w < best {
			best = w
		}
	}
	return best
}
