package stemmer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuleTranslatesPythonSyntax(t *testing.T) {
	r, err := NewRule(`^(?P<stem>.+)ها$`, []string{`\g<stem>`, `\1ه`}, PoSNoun, 2, true)
	require.NoError(t, err)

	assert.True(t, r.Match("کتابها"))
	assert.Equal(t, []string{"${stem}", "${1}ه"}, r.Substitutions)
	assert.Equal(t, "کتاب", r.extract("کتابها", r.Substitutions[0]))
	assert.Equal(t, "کتابه", r.extract("کتابها", r.Substitutions[1]))
}

func TestNewRuleBadPattern(t *testing.T) {
	_, err := NewRule(`^(?<stem>.+`, []string{"${stem}"}, PoSNoun, 2, false)
	assert.Error(t, err)
}

func TestParsePoS(t *testing.T) {
	assert.Equal(t, PoSEzafe, ParsePoS("K"))
	assert.Equal(t, PoSVerb, ParsePoS(" V "))
	assert.Equal(t, PoSNoun, ParsePoS("N"))
	assert.Equal(t, PoSNoun, ParsePoS(""))
}

func TestApplyRules(t *testing.T) {
	tests := []struct {
		name           string
		tables         *Tables
		input          string
		wantCandidates []string
		wantTerminated bool
	}{
		{
			name: "terminal noun rule",
			tables: &Tables{
				Lexicon: NewWordSet("کتاب"),
				Rules:   []Rule{noun(`^(?<stem>.+)ها$`, 2, true)},
			},
			input:          "کتابها",
			wantCandidates: []string{"کتاب"},
			wantTerminated: true,
		},
		{
			name: "non-terminal rules accumulate in order",
			tables: &Tables{
				Lexicon: NewWordSet("کتابی", "کتاب"),
				Rules: []Rule{
					noun(`^(?<stem>.+)م$`, 2, false),
					noun(`^(?<stem>.+)یم$`, 2, false),
				},
			},
			input:          "کتابیم",
			wantCandidates: []string{"کتابی", "کتاب"},
		},
		{
			name: "terminal acceptance stops later rules",
			tables: &Tables{
				Lexicon: NewWordSet("کتابهای", "کتابها", "کتاب"),
				Rules: []Rule{
					noun(`^(?<stem>.+)م$`, 2, false),
					noun(`^(?<stem>.+)یم$`, 2, true),
					noun(`^(?<stem>.+)هایم$`, 2, false),
				},
			},
			input:          "کتابهایم",
			wantCandidates: []string{"کتابهای", "کتابها"},
			wantTerminated: true,
		},
		{
			name: "noun candidate kept as matched",
			tables: &Tables{
				Lexicon: NewWordSet("رزمندگان", "رزمند"),
				Rules:   []Rule{noun(`^(?<stem>.+)م$`, 2, false)},
			},
			input:          "رزمندگانم",
			wantCandidates: []string{"رزمندگان"},
		},
		{
			name: "rejected terminal does not terminate",
			tables: &Tables{
				Lexicon: NewWordSet("کتاب"),
				Rules: []Rule{
					noun(`^(?<stem>.+)م$`, 2, true),
					noun(`^(?<stem>.+)یم$`, 2, false),
				},
			},
			input:          "کتابیم",
			wantCandidates: []string{"کتاب"},
		},
		{
			name: "short result falls through to next template",
			tables: &Tables{
				Lexicon: NewWordSet("خانه"),
				Rules:   []Rule{noun(`^(?<stem>.+)ها$`, 4, false, "${stem}", "${stem}ه")},
			},
			input:          "خانها",
			wantCandidates: []string{"خانه"},
		},
		{
			name: "ezafe resolves broken plural",
			tables: &Tables{
				Mokassar: map[string]string{"کتب": "کتاب"},
				Rules:    []Rule{MustRule(`^(?<stem>.+)ی$`, []string{"${stem}"}, PoSEzafe, 2, false)},
			},
			input:          "کتبی",
			wantCandidates: []string{"کتاب"},
		},
		{
			name: "ezafe falls back to lexicon",
			tables: &Tables{
				Lexicon: NewWordSet("دوست"),
				Rules:   []Rule{MustRule(`^(?<stem>.+)ی$`, []string{"${stem}"}, PoSEzafe, 2, false)},
			},
			input:          "دوستی",
			wantCandidates: []string{"دوست"},
		},
		{
			name: "ezafe skipped once a candidate exists",
			tables: &Tables{
				Lexicon:  NewWordSet("دوست"),
				Mokassar: map[string]string{"دوست": "رفیق"},
				Rules: []Rule{
					noun(`^(?<stem>.+)ی$`, 2, false),
					MustRule(`^(?<stem>.+)ی$`, []string{"${stem}"}, PoSEzafe, 2, false),
				},
			},
			input:          "دوستی",
			wantCandidates: []string{"دوست"},
		},
		{
			name: "verb candidate accepted when nothing derives from it",
			tables: &Tables{
				Rules: []Rule{MustRule(`^می(?<stem>.+)م$`, []string{"${stem}"}, PoSVerb, 2, false)},
			},
			input:          "میخورم",
			wantCandidates: []string{"خور"},
		},
		{
			name: "verb candidate rejected as over-strip",
			tables: &Tables{
				Lexicon: NewWordSet("خورش"),
				Rules:   []Rule{MustRule(`^می(?<stem>.+)م$`, []string{"${stem}"}, PoSVerb, 2, false)},
			},
			input: "میخورم",
		},
		{
			name: "no rule matches",
			tables: &Tables{
				Rules: []Rule{noun(`^(?<stem>.+)ها$`, 2, true)},
			},
			input: "کتاب",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStemmer(t, tt.tables)
			got, terminated := s.ApplyRules(tt.input)
			if diff := cmp.Diff(tt.wantCandidates, got); diff != "" {
				t.Errorf("ApplyRules(%q) candidates mismatch (-want +got):\n%s", tt.input, diff)
			}
			assert.Equal(t, tt.wantTerminated, terminated)
		})
	}
}
