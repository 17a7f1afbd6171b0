package stemmer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// PoS tags the kind of affix a rule strips.
type PoS byte

const (
	PoSNoun  PoS = 'N' // default nominal rule
	PoSEzafe PoS = 'K' // kasre ezafe, resolved mokassar-first
	PoSVerb  PoS = 'V'
)

// ParsePoS maps a table tag to a PoS. Anything other than K or V is nominal.
func ParsePoS(tag string) PoS {
	switch strings.TrimSpace(tag) {
	case "K":
		return PoSEzafe
	case "V":
		return PoSVerb
	}
	return PoSNoun
}

// Rule is one pattern rule: a regular expression with a "stem" group and
// replacement templates tried in order.
type Rule struct {
	Pattern       string
	Substitutions []string
	PoS           PoS
	MinLength     int
	Terminal      bool

	re *regexp2.Regexp
}

var (
	pyGroup    = regexp.MustCompile(`\(\?P<`)
	pyNamedRef = regexp.MustCompile(`\\g<(\w+)>`)
	pyIndexRef = regexp.MustCompile(`\\(\d)`)
)

// NewRule compiles a rule. Python-style "(?P<name>" groups and "\g<name>" or
// "\1" template references are rewritten to the engine's syntax.
func NewRule(pattern string, substitutions []string, pos PoS, minLength int, terminal bool) (Rule, error) {
	re, err := compile(pattern)
	if err != nil {
		return Rule{}, err
	}
	subs := make([]string, 0, len(substitutions))
	for _, s := range substitutions {
		subs = append(subs, translateTemplate(s))
	}
	return Rule{
		Pattern:       pattern,
		Substitutions: subs,
		PoS:           pos,
		MinLength:     minLength,
		Terminal:      terminal,
		re:            re,
	}, nil
}

// MustRule is NewRule that panics on a bad pattern.
func MustRule(pattern string, substitutions []string, pos PoS, minLength int, terminal bool) Rule {
	r, err := NewRule(pattern, substitutions, pos, minLength, terminal)
	if err != nil {
		panic(err)
	}
	return r
}

func compile(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pyGroup.ReplaceAllString(pattern, "(?<"), regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return re, nil
}

func translateTemplate(t string) string {
	t = pyNamedRef.ReplaceAllString(t, "$${$1}")
	return pyIndexRef.ReplaceAllString(t, "$${$1}")
}

// Match reports whether the rule's pattern matches word.
func (r Rule) Match(word string) bool {
	ok, err := r.re.MatchString(word)
	return err == nil && ok
}

// extract applies template to word and trims the result. A word the pattern
// does not match comes back unchanged.
func (r Rule) extract(word, template string) string {
	return extract(r.re, word, template)
}

func extract(re *regexp2.Regexp, word, template string) string {
	out, err := re.Replace(word, template, -1, -1)
	if err != nil {
		return word
	}
	return strings.TrimSpace(out)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
