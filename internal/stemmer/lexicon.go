package stemmer

import (
	"strings"
)

// Validate reports whether word is a known dictionary form or broken plural.
func (s *Stemmer) Validate(word string) bool {
	if s.tables.Lexicon.Has(word) {
		return true
	}
	_, ok := s.tables.Mokassar[word]
	return ok
}

// NormalizeValidate canonicalizes word against the lexicon. It walks a fixed
// list of substitutions and affix removals, each applied to the current form
// and kept only when the result validates. The returned form still has to be
// checked with Validate; when nothing applies word comes back trimmed.
func (s *Stemmer) NormalizeValidate(word string, removeSpace bool) string {
	word = strings.TrimSpace(word)
	last := runeLen(word) - 2

	try := func(candidate string) {
		if s.Validate(candidate) {
			word = candidate
		}
	}

	if strings.HasPrefix(word, "ا") {
		try("آ" + strings.TrimPrefix(word, "ا"))
	}
	if inRange(runeIndex(word, "ا"), 1, last) {
		try(strings.ReplaceAll(word, "ا", "أ"))
	}
	if inRange(runeIndex(word, "ا"), 1, last) {
		try(strings.ReplaceAll(word, "ا", "إ"))
	}
	if inRange(runeIndex(word, "ئو"), 1, last) {
		try(strings.ReplaceAll(word, "ئو", "ؤ"))
	}
	if strings.HasSuffix(word, "ء") {
		try(strings.ReplaceAll(word, "ء", ""))
	}
	if inRange(runeIndex(word, "ئ"), 1, last) {
		try(strings.ReplaceAll(word, "ئ", "ی"))
	}
	if removeSpace && inRange(runeIndex(word, " "), 1, last) {
		try(strings.ReplaceAll(word, " ", ""))
	}

	// دیندار / دین دار
	if !s.tables.SuffixExceptions.Has(word) {
		if suffix := longestSuffix(word); suffix != "" {
			if strings.HasSuffix(word, " "+suffix) {
				try(strings.TrimSuffix(word, " "+suffix))
			} else {
				try(strings.TrimSuffix(word, suffix))
			}
		}
	}

	if !s.tables.PrefixExceptions.Has(word) {
		if prefix := firstPrefix(word, prefixes); prefix != "" {
			try(stripPrefix(word, prefix))
		}
	}

	if prefix := firstPrefix(word, prefixExceptions); prefix != "" {
		try(stripPrefix(word, prefix))
	}

	return word
}

func longestSuffix(word string) string {
	best := ""
	for _, suffix := range suffixes {
		if runeLen(suffix) > runeLen(best) && strings.HasSuffix(word, suffix) {
			best = suffix
		}
	}
	return best
}

func firstPrefix(word string, list []string) string {
	for _, prefix := range list {
		if strings.HasPrefix(word, prefix) {
			return prefix
		}
	}
	return ""
}

func stripPrefix(word, prefix string) string {
	if strings.HasPrefix(word, prefix+" ") {
		return strings.TrimPrefix(word, prefix+" ")
	}
	return strings.TrimPrefix(word, prefix)
}

// runeIndex is strings.Index counted in runes.
func runeIndex(s, substr string) int {
	i := strings.Index(s, substr)
	if i < 0 {
		return -1
	}
	return runeLen(s[:i])
}

func inRange(d, from, to int) bool {
	return d >= from && d <= to
}
