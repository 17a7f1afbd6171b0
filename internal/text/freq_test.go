package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFreqTop(t *testing.T) {
	f := NewFreq()
	f.Add([]string{"کتاب", "خانه", "کتاب"})
	f.Add([]string{"کتاب", "دوست"})
	f.Add(nil)

	if f.Docs != 3 {
		t.Errorf("Docs = %d, want 3", f.Docs)
	}

	want := []TermCount{
		{Term: "کتاب", Count: 3, DF: 2},
		{Term: "خانه", Count: 1, DF: 1},
	}
	if diff := cmp.Diff(want, f.Top(2)); diff != "" {
		t.Errorf("Top(2) mismatch (-want +got):\n%s", diff)
	}
	if got := len(f.Top(0)); got != 3 {
		t.Errorf("len(Top(0)) = %d, want 3", got)
	}
}
