package text

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// diacritics covers fathatan through sukun (U+064B..U+0652).
var diacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x064B, Hi: 0x0652, Stride: 1}},
}

// canonical folds Arabic homoglyphs onto their Persian form and turns
// invisible separators into a plain space.
func canonical(r rune) rune {
	switch r {
	case 'ي':
		return 'ی'
	case 'ة', 'ۀ':
		return 'ه'
	case 'ك':
		return 'ک'
	case 'ؤ':
		return 'و'
	case 'إ', 'أ':
		return 'ا'
	case '\u200b', '\u200c', '\u200d', '\u200e', '\u200f':
		return ' '
	}
	return r
}

// Normalize canonicalizes character variants, drops the eight Arabic
// diacritics and trims surrounding whitespace.
func Normalize(word string) string {
	// transform.Chain keeps per-call buffers, so it is built fresh each time.
	t := transform.Chain(runes.Remove(runes.In(diacritics)), runes.Map(canonical))
	out, _, err := transform.String(t, word)
	if err != nil {
		return strings.TrimSpace(word)
	}
	return strings.TrimSpace(out)
}

// IsLatin reports whether s is non-empty and made only of ASCII and Latin
// letters. Spaces, digits and symbols count, so "hello world" and "!!!" are
// both Latin.
func IsLatin(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII && !unicode.Is(unicode.Latin, r) {
			return false
		}
	}
	return true
}

// IsNumber reports whether s is a number, either parseable as a float or
// made only of decimal digits in any script (Persian digits included).
func IsNumber(s string) bool {
	if s == "" {
		return false
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
