package reflection

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyzeDepth_Default(t *testing.T) {
	a := AnalyzeDepth("the weather was nice", 1, nil)
	if a.CurrentDepth != 1 {
		t.Errorf("CurrentDepth = %d, want 1", a.CurrentDepth)
	}
	if a.DepthIncrease {
		t.Error("DepthIncrease = true, want false")
	}
	if a.ReadyForSummary {
		t.Error("ReadyForSummary = true, want false")
	}
}

func TestAnalyzeDepth_PatternInsight(t *testing.T) {
	a := AnalyzeDepth("I realize this pattern goes back to my childhood", 1, nil)
	if a.CurrentDepth != 3 {
		t.Fatalf("CurrentDepth = %d, want 3", a.CurrentDepth)
	}
	if !a.DepthIncrease {
		t.Error("DepthIncrease = false, want true")
	}
	for _, want := range []string{"Self-awareness breakthrough", "Pattern recognition", "Historical insight"} {
		if !containsStr(a.QualityIndicators, want) {
			t.Errorf("QualityIndicators missing %q: %v", want, a.QualityIndicators)
		}
	}
}

func TestAnalyzeDepth_HighestTierWins(t *testing.T) {
	a := AnalyzeDepth("I feel sad because I keep repeating this, and I accept that now", 1, nil)
	if a.CurrentDepth != 5 {
		t.Errorf("CurrentDepth = %d, want 5 (highest matching tier)", a.CurrentDepth)
	}
}

// The bounded-drift formula is max(calculated, min(previous, calculated+1)).
// A large previous depth with a shallow message collapses to calculated+1,
// not to a smooth decay. That behavior is intentional; these cases pin it.
func TestAnalyzeDepth_BoundedDrift(t *testing.T) {
	cases := []struct {
		text     string
		previous int
		want     int
	}{
		{"the weather was nice", 5, 2},          // calculated 1, prev 5 -> 2
		{"the weather was nice", 2, 2},          // prev within 1 of raw signal
		{"the weather was nice", 1, 1},          // no drift at the floor
		{"I feel sad because of work", 5, 3},    // calculated 2 -> 3
		{"I realize the pattern now", 5, 4},     // calculated 3 -> 4
		{"I realize the pattern now", 2, 3},     // raw signal dominates upward
		{"I accept what happened", 1, 5},        // calculated 5 jumps straight up
	}
	for _, tc := range cases {
		a := AnalyzeDepth(tc.text, tc.previous, nil)
		if a.CurrentDepth != tc.want {
			t.Errorf("AnalyzeDepth(%q, prev=%d).CurrentDepth = %d, want %d",
				tc.text, tc.previous, a.CurrentDepth, tc.want)
		}
	}
}

func TestAnalyzeDepth_DepthRange(t *testing.T) {
	texts := []string{
		"", "I feel", "I realize I accept everything", "random words here",
	}
	for _, text := range texts {
		for prev := 1; prev <= 5; prev++ {
			a := AnalyzeDepth(text, prev, nil)
			if a.CurrentDepth < 1 || a.CurrentDepth > 5 {
				t.Errorf("AnalyzeDepth(%q, %d).CurrentDepth = %d, out of [1,5]",
					text, prev, a.CurrentDepth)
			}
		}
	}
}

func TestAnalyzeDepth_ReadyForSummaryAtDepth4(t *testing.T) {
	a := AnalyzeDepth("I understand now what this is really about", 3, nil)
	if a.CurrentDepth < 4 {
		t.Fatalf("CurrentDepth = %d, want >= 4", a.CurrentDepth)
	}
	if !a.ReadyForSummary {
		t.Error("ReadyForSummary = false at depth >= 4, want true")
	}
}

func TestAnalyzeDepth_ReadyForSummaryByIndicators(t *testing.T) {
	a := AnalyzeDepth("I'm grateful that I realize the pattern", 1, nil)
	if len(a.QualityIndicators) < 3 {
		t.Fatalf("QualityIndicators = %v, want >= 3", a.QualityIndicators)
	}
	if !a.ReadyForSummary {
		t.Error("ReadyForSummary = false with 3+ indicators, want true")
	}
}

func TestAnalyzeDepth_NextStepsPerTier(t *testing.T) {
	shallow := AnalyzeDepth("nothing in particular", 1, nil)
	deep := AnalyzeDepth("I understand now what this is really about", 4, nil)
	if len(shallow.NextSteps) == 0 || len(deep.NextSteps) == 0 {
		t.Fatal("next steps missing")
	}
	if reflect.DeepEqual(shallow.NextSteps, deep.NextSteps) {
		t.Error("depth 1 and depth 4 guidance should differ")
	}
}

func TestAnalyzeDepth_Deterministic(t *testing.T) {
	const text = "I realize I keep repeating this pattern from childhood"
	a := AnalyzeDepth(text, 2, []string{"earlier message"})
	b := AnalyzeDepth(text, 2, []string{"earlier message"})
	if !reflect.DeepEqual(a, b) {
		t.Errorf("AnalyzeDepth not deterministic:\n%+v\n%+v", a, b)
	}
}

func containsStr(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestSummary_CitesDepth(t *testing.T) {
	for depth := 1; depth <= 5; depth++ {
		got := Summary([]string{"a", "b"}, depth, nil)
		if !strings.Contains(got, "depth "+string(rune('0'+depth))) {
			t.Errorf("Summary for depth %d does not cite it: %q", depth, got)
		}
	}
}

func TestSummary_ListsInsights(t *testing.T) {
	got := Summary(nil, 3, []string{"Pattern recognition", "Gratitude"})
	if !strings.Contains(got, "Pattern recognition") || !strings.Contains(got, "Gratitude") {
		t.Errorf("Summary missing insight labels: %q", got)
	}
}

func TestSummary_ClampsDepth(t *testing.T) {
	if got := Summary(nil, 9, nil); !strings.Contains(got, "depth 5") {
		t.Errorf("Summary(depth=9) = %q, want clamped to 5", got)
	}
	if got := Summary(nil, 0, nil); !strings.Contains(got, "depth 1") {
		t.Errorf("Summary(depth=0) = %q, want clamped to 1", got)
	}
}
