package stemmer

// outcome is what one rule contributes to the candidate list.
type outcome struct {
	stem     string
	accepted bool
	terminal bool
}

// ApplyRules runs the rule table over word in order and collects candidate
// stems. terminated is set when a terminal rule's candidate is accepted; no
// rule after it is evaluated.
func (s *Stemmer) ApplyRules(word string) (candidates []string, terminated bool) {
	for _, rule := range s.tables.Rules {
		o := s.evalRule(rule, word, len(candidates) == 0)
		if !o.accepted {
			continue
		}
		candidates = append(candidates, o.stem)
		if o.terminal {
			return candidates, true
		}
	}
	return candidates, false
}

// evalRule is a pure function of the rule, the word and whether any
// candidate has been collected yet. Templates after the first are only
// tried while results fall short of the minimum length.
func (s *Stemmer) evalRule(rule Rule, word string, empty bool) outcome {
	if rule.PoS == PoSEzafe && !empty {
		return outcome{}
	}
	if !rule.Match(word) {
		return outcome{}
	}
	candidate, ok := firstLongEnough(rule, word)
	if !ok {
		return outcome{}
	}

	switch rule.PoS {
	case PoSEzafe:
		if stem := s.MokassarStem(candidate); stem != "" {
			return outcome{stem: stem, accepted: true}
		}
		if v := s.NormalizeValidate(candidate, true); s.Validate(v) {
			return outcome{stem: v, accepted: true}
		}
	case PoSVerb:
		if s.VerbAffixProbe(candidate) == "" {
			return outcome{stem: candidate, accepted: true}
		}
	default:
		// Only the ezafe branch keeps the canonical form; nouns keep the
		// matched candidate.
		if s.Validate(s.NormalizeValidate(candidate, true)) {
			return outcome{stem: candidate, accepted: true, terminal: rule.Terminal}
		}
	}
	return outcome{}
}
