package tables

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kuandriy/persian-stemmer/internal/stemmer"
)

// lines calls fn for every non-blank line of r with its 1-based number.
func lines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.Trim(sc.Text(), "\r\n ")
		if line == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	return sc.Err()
}

// ParseRules reads one rule per line:
//
//	pattern,sub1;sub2,pos,min_length,terminal
func ParseRules(r io.Reader) ([]stemmer.Rule, error) {
	var rules []stemmer.Rule
	err := lines(r, func(n int, line string) error {
		f := strings.Split(line, ",")
		if len(f) < 5 {
			return fmt.Errorf("line %d: want 5 fields, got %d", n, len(f))
		}
		minLength, err := strconv.Atoi(strings.TrimSpace(f[3]))
		if err != nil {
			return fmt.Errorf("line %d: min length: %w", n, err)
		}
		rule, err := stemmer.NewRule(f[0], strings.Split(f[1], ";"), stemmer.ParsePoS(f[2]), minLength, parseBool(f[4]))
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		rules = append(rules, rule)
		return nil
	})
	return rules, err
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "true", "t", "1":
		return true
	}
	return false
}

// ParseList reads one word form per line.
func ParseList(r io.Reader) (stemmer.WordSet, error) {
	set := stemmer.WordSet{}
	err := lines(r, func(_ int, line string) error {
		set[line] = struct{}{}
		return nil
	})
	return set, err
}

// ParseLexicon reads the dictionary, one word form per line.
func ParseLexicon(r io.Reader) (stemmer.WordSet, error) {
	return ParseList(r)
}

// ParseMokassar reads "surface\tsingular" pairs.
func ParseMokassar(r io.Reader) (map[string]string, error) {
	m := make(map[string]string)
	err := lines(r, func(n int, line string) error {
		f := strings.Split(line, "\t")
		if len(f) < 2 {
			return fmt.Errorf("line %d: want surface and stem separated by a tab", n)
		}
		m[strings.TrimSpace(f[0])] = strings.TrimSpace(f[1])
		return nil
	})
	return m, err
}

// ParseVerbs reads "surface\tpast\tpresent" lines. Missing trailing stems
// are empty.
func ParseVerbs(r io.Reader) (map[string]stemmer.VerbStem, error) {
	m := make(map[string]stemmer.VerbStem)
	err := lines(r, func(n int, line string) error {
		f := strings.Split(line, "\t")
		for len(f) < 3 {
			f = append(f, "")
		}
		surface := strings.TrimSpace(f[0])
		if surface == "" {
			return fmt.Errorf("line %d: empty verb form", n)
		}
		m[surface] = stemmer.VerbStem{
			Past:    strings.TrimSpace(f[1]),
			Present: strings.TrimSpace(f[2]),
		}
		return nil
	})
	return m, err
}
