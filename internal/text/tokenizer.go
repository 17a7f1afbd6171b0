package text

import (
	"strings"
	"unicode"
)

var stopWords = map[string]bool{
	"و": true, "در": true, "به": true, "از": true, "که": true, "این": true,
	"را": true, "با": true, "است": true, "برای": true, "آن": true, "یک": true,
	"تا": true, "هم": true, "بر": true, "نیز": true, "اما": true, "یا": true,
	"هر": true, "اگر": true, "چه": true, "پس": true, "بود": true, "شد": true,
	"می": true, "ای": true, "اینکه": true, "آنها": true, "ما": true, "من": true,
	"شما": true, "او": true, "ایشان": true, "خود": true, "همه": true,
}

// Tokenize normalizes raw text and splits it into words. Runs of letters,
// digits and combining marks form a word; everything else separates. Stop
// words and single-character tokens are dropped.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	raw := strings.FieldsFunc(Normalize(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r)
	})

	var tokens []string
	for _, t := range raw {
		t = strings.ToLower(t)
		if len([]rune(t)) > 1 && !stopWords[t] {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// StemAll maps stem over tokens, dropping empty results.
func StemAll(tokens []string, stem func(string) string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if s := stem(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}
