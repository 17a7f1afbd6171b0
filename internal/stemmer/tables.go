package stemmer

// WordSet is a set of exact word forms.
type WordSet map[string]struct{}

// NewWordSet builds a set from words.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s WordSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// VerbStem holds the past and present stems of a verb; either may be empty.
type VerbStem struct {
	Past    string `json:"past"`
	Present string `json:"present"`
}

// Tables is the read-only data the stemmer works from. It is built once by
// the loader and shared by every Stemmer without locking; nothing writes to
// it after construction.
type Tables struct {
	Rules     []Rule // ordered; evaluation order matters
	VerbRules []Rule

	Lexicon       WordSet
	Mokassar      map[string]string // broken plural -> singular
	Verbs         map[string]VerbStem
	InformalVerbs map[string]VerbStem

	SuffixExceptions WordSet
	PrefixExceptions WordSet
}

// Fixed affix lists.
var (
	verbAffixes = []string{"*ش", "*نده", "*ا", "*ار", "وا*", "اثر*",
		"فرو*", "پیش*", "گرو*", "*ه", "*گار", "*ن"}

	suffixes = []string{"كار", "ناك", "وار", "آسا", "آگین", "بار", "بان", "دان", "زار", "انه",
		"سار", "سان", "لاخ", "مند", "دار", "سازنده", "مرد", "گیرنده", "کننده", "گرا", "نما", "متر", "گان",
		// inflectional endings are stripped like derivational ones
		"ها", "تر", "ترین", "ام", "ات", "اش"}

	prefixes         = []string{"بی", "با", "پیش", "غیر", "فرو", "هم", "نا", "یک"}
	prefixExceptions = []string{"غیر"}
	zamirSuffixes    = []string{"م", "ت", "ش"}
)
