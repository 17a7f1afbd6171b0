package stemmer

import "github.com/dlclark/regexp2"

// Pronoun suffix grammar. The look-behind keeps the glide "ی" after ا/و.
var (
	zamirWithPlural = regexp2.MustCompile(
		`^(?<stem>.+?)((?<=(ا|و))ی)?(ها)?(ی)?(ات|ی|م|ت|ش| تان|تان| مان|مان| شان|شان|ء)$`, regexp2.None)
	zamirWithoutPlural = regexp2.MustCompile(
		`^(?<stem>.+?)((?<=(ا|و))ی)?(ها)?(ی)?((ات)?( تان|تان| مان|مان| شان|شان)|ی|م|ت|ش|ء)$`, regexp2.None)
)

// RemoveZamir strips a possessive or object pronoun suffix. withPlural picks
// the grammar variant where "ات" stands alone instead of preceding a plural
// pronoun. A word without such a suffix is returned unchanged.
func RemoveZamir(word string, withPlural bool) string {
	if withPlural {
		return extract(zamirWithPlural, word, "${stem}")
	}
	return extract(zamirWithoutPlural, word, "${stem}")
}

// MokassarStem returns the singular of a broken plural, trying the word as
// is and then with a pronoun suffix removed. It returns "" on a miss.
func (s *Stemmer) MokassarStem(word string) string {
	if stem, ok := s.tables.Mokassar[word]; ok {
		return stem
	}
	for _, withPlural := range []bool{true, false} {
		if stem, ok := s.tables.Mokassar[RemoveZamir(word, withPlural)]; ok {
			return stem
		}
	}
	return ""
}
