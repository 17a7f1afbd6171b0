package stemmer

import (
	"sort"
	"strings"
)

// ResolveTies picks one stem from several terminal candidates. A sorted-last
// candidate ending in "ان" wins; otherwise when the second candidate is the
// first plus a pronoun suffix the shorter one wins; otherwise sorted-last.
func ResolveTies(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	last := sorted[len(sorted)-1]
	if strings.HasSuffix(last, "ان") || len(sorted) < 2 {
		return last
	}

	first := sorted[0]
	second := strings.ReplaceAll(sorted[1], " ", "")
	for _, z := range zamirSuffixes {
		if second == first+z {
			return first
		}
	}
	return last
}

// selectRanked orders candidates by rank sign (descending for positive,
// ascending for negative) and returns the |rank|-th. Rank 0 keeps the
// collected order. Ranks past the end select the last candidate.
func selectRanked(candidates []string, rank int) string {
	if len(candidates) == 0 {
		return ""
	}
	if rank == 0 {
		return candidates[0]
	}
	sorted := append([]string(nil), candidates...)
	if rank > 0 {
		sort.Sort(sort.Reverse(sort.StringSlice(sorted)))
	} else {
		sort.Strings(sorted)
		rank = -rank
	}
	if rank > len(sorted) {
		rank = len(sorted)
	}
	return sorted[rank-1]
}
