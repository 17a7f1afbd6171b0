// Package tables reads the stemmer's data files: pattern rules, lexicon,
// broken plurals, verb dictionaries and affix exception lists.
package tables

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kuandriy/persian-stemmer/internal/stemmer"
)

// ErrInit marks every load failure. The stemmer cannot run without its
// tables, so callers treat it as fatal.
var ErrInit = errors.New("initialization failed")

// Files names the data files inside the data directory.
type Files struct {
	Patterns         string `yaml:"patterns" env:"STEMFA_PATTERNS_FILE" env-default:"Patterns.fa"`
	VerbPatterns     string `yaml:"verb_patterns" env:"STEMFA_VERB_PATTERNS_FILE" env-default:"verb_patterns.fa"`
	Lexicon          string `yaml:"lexicon" env:"STEMFA_LEXICON_FILE" env-default:"Dictionary.fa"`
	Mokassar         string `yaml:"mokassar" env:"STEMFA_MOKASSAR_FILE" env-default:"Mokassar.fa"`
	Verbs            string `yaml:"verbs" env:"STEMFA_VERBS_FILE" env-default:"VerbList.fa"`
	InformalVerbs    string `yaml:"informal_verbs" env:"STEMFA_INFORMAL_VERBS_FILE" env-default:"InformalVerbList.fa"`
	SuffixExceptions string `yaml:"suffix_exceptions" env:"STEMFA_SUFFIX_FILE" env-default:"suffix.fa"`
	PrefixExceptions string `yaml:"prefix_exceptions" env:"STEMFA_PREFIX_FILE" env-default:"prefix.fa"`
}

// DefaultFiles returns the standard file names.
func DefaultFiles() Files {
	return Files{
		Patterns:         "Patterns.fa",
		VerbPatterns:     "verb_patterns.fa",
		Lexicon:          "Dictionary.fa",
		Mokassar:         "Mokassar.fa",
		Verbs:            "VerbList.fa",
		InformalVerbs:    "InformalVerbList.fa",
		SuffixExceptions: "suffix.fa",
		PrefixExceptions: "prefix.fa",
	}
}

// Loader reads a data directory once. The first successful Load is kept
// and returned by every later call.
type Loader struct {
	Dir   string
	Files Files
	// Verbs controls whether the verb dictionaries and verb patterns are read.
	Verbs bool

	log    *zap.Logger
	mu     sync.Mutex
	tables *stemmer.Tables
}

// NewLoader creates a Loader for dir with the default file names.
func NewLoader(dir string, verbs bool, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{Dir: dir, Files: DefaultFiles(), Verbs: verbs, log: log}
}

// Load reads all tables concurrently.
func (l *Loader) Load(ctx context.Context) (*stemmer.Tables, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.tables != nil {
		return l.tables, nil
	}

	t := &stemmer.Tables{}
	g, ctx := errgroup.WithContext(ctx)

	read := func(name string, parse func(io.Reader) error) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return l.parseFile(name, parse)
		})
	}

	read(l.Files.Patterns, func(r io.Reader) (err error) {
		t.Rules, err = ParseRules(r)
		return err
	})
	read(l.Files.Lexicon, func(r io.Reader) (err error) {
		t.Lexicon, err = ParseLexicon(r)
		return err
	})
	read(l.Files.Mokassar, func(r io.Reader) (err error) {
		t.Mokassar, err = ParseMokassar(r)
		return err
	})
	read(l.Files.SuffixExceptions, func(r io.Reader) (err error) {
		t.SuffixExceptions, err = ParseList(r)
		return err
	})
	read(l.Files.PrefixExceptions, func(r io.Reader) (err error) {
		t.PrefixExceptions, err = ParseList(r)
		return err
	})
	if l.Verbs {
		read(l.Files.VerbPatterns, func(r io.Reader) (err error) {
			t.VerbRules, err = ParseRules(r)
			return err
		})
		read(l.Files.Verbs, func(r io.Reader) (err error) {
			t.Verbs, err = ParseVerbs(r)
			return err
		})
		read(l.Files.InformalVerbs, func(r io.Reader) (err error) {
			t.InformalVerbs, err = ParseVerbs(r)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}

	l.log.Info("tables loaded",
		zap.String("dir", l.Dir),
		zap.Int("rules", len(t.Rules)),
		zap.Int("verb_rules", len(t.VerbRules)),
		zap.Int("lexicon", len(t.Lexicon)),
		zap.Int("mokassar", len(t.Mokassar)),
		zap.Int("verbs", len(t.Verbs)),
		zap.Int("informal_verbs", len(t.InformalVerbs)),
	)
	l.tables = t
	return t, nil
}

func (l *Loader) parseFile(name string, parse func(io.Reader) error) error {
	path := filepath.Join(l.Dir, name)
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := parse(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
