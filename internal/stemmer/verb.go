package stemmer

import "strings"

// ResolveVerb looks word up in the verb dictionary, then in the informal one.
// A formal entry yields its past stem when that is a dictionary word and the
// present stem otherwise; an informal entry prefers any non-empty past stem.
func (s *Stemmer) ResolveVerb(word string) string {
	if vs, ok := s.tables.Verbs[word]; ok {
		return s.formalStem(vs)
	}
	if vs, ok := s.tables.InformalVerbs[word]; ok {
		if vs.Past != "" {
			return vs.Past
		}
		return vs.Present
	}
	return ""
}

func (s *Stemmer) formalStem(vs VerbStem) string {
	if s.Validate(vs.Past) {
		return vs.Past
	}
	return vs.Present
}

// VerbAffixProbe wraps word in each verb affix template and returns the first
// template whose result is a dictionary word. A hit means word is itself
// something affixes derive from, so a rule that produced it over-stripped.
// Only the first template gets a glide "ی" after a final ا or و.
func (s *Stemmer) VerbAffixProbe(word string) string {
	if word == "" || strings.Contains(word, " ") {
		return ""
	}
	for i, affix := range verbAffixes {
		stem := word
		if i == 0 && (strings.HasSuffix(word, "ا") || strings.HasSuffix(word, "و")) {
			stem += "ی"
		}
		if s.Validate(s.NormalizeValidate(strings.Replace(affix, "*", stem, 1), true)) {
			return affix
		}
	}
	return ""
}

// VerbPatternResolve runs the verb rule table over word. Each matching rule
// contributes its first template result that is long enough; the first such
// candidate found in the formal verb dictionary wins.
func (s *Stemmer) VerbPatternResolve(word string) string {
	for _, rule := range s.tables.VerbRules {
		if !rule.Match(word) {
			continue
		}
		candidate, ok := firstLongEnough(rule, word)
		if !ok {
			continue
		}
		if vs, ok := s.tables.Verbs[candidate]; ok {
			if stem := s.formalStem(vs); stem != "" {
				return stem
			}
		}
	}
	return ""
}

// firstLongEnough returns the first template result meeting the rule's
// minimum length.
func firstLongEnough(rule Rule, word string) (string, bool) {
	for _, t := range rule.Substitutions {
		if c := rule.extract(word, t); runeLen(c) >= rule.MinLength {
			return c, true
		}
	}
	return "", false
}
