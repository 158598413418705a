package distortion

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestDetect_NoMatch(t *testing.T) {
	r := Detect("We went for a walk and talked about the garden")
	if r.Detected {
		t.Error("Detected = true, want false")
	}
	if len(r.Distortions) != 0 {
		t.Errorf("Distortions = %d rules, want 0", len(r.Distortions))
	}
	if r.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", r.Confidence)
	}
	if len(r.Suggestions) != 0 {
		t.Errorf("Suggestions = %v, want empty", r.Suggestions)
	}
}

func TestDetect_AllOrNothing(t *testing.T) {
	r := Detect("I always fail at everything and everyone hates me")
	if !r.Detected {
		t.Fatal("Detected = false, want true")
	}
	found := false
	for _, d := range r.Distortions {
		if d.Type == "all_or_nothing" {
			found = true
		}
	}
	if !found {
		t.Errorf("all_or_nothing not among detected types: %v", typeNames(r))
	}
}

func TestDetect_ConfidenceScale(t *testing.T) {
	r := Detect("I always mess up")
	if len(r.Distortions) == 1 && math.Abs(r.Confidence-0.3) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.3 for one match", r.Confidence)
	}

	// Hit enough rules to cross the cap.
	r = Detect("I always fail, it's all my fault, I'm such a failure, I know it will go wrong, this is a disaster")
	if len(r.Distortions) >= 4 && r.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want capped at 1.0 for %d matches", r.Confidence, len(r.Distortions))
	}
}

func TestDetect_CatalogOrder(t *testing.T) {
	// labeling phrase appears before the all_or_nothing word, but the
	// result must follow catalog order.
	r := Detect("I'm such a failure because I always mess up")
	if len(r.Distortions) < 2 {
		t.Fatalf("expected >= 2 distortions, got %d: %v", len(r.Distortions), typeNames(r))
	}
	order := map[string]int{}
	for i, rule := range Catalog() {
		order[rule.Type] = i
	}
	for i := 1; i < len(r.Distortions); i++ {
		if order[r.Distortions[i-1].Type] >= order[r.Distortions[i].Type] {
			t.Errorf("distortions out of catalog order: %v", typeNames(r))
			break
		}
	}
}

func TestDetect_SuggestionsMirrorMatches(t *testing.T) {
	r := Detect("I always mess up and it's all my fault")
	if len(r.Suggestions) != len(r.Distortions) {
		t.Errorf("suggestions = %d, distortions = %d, want equal",
			len(r.Suggestions), len(r.Distortions))
	}
	for i, d := range r.Distortions {
		if r.Suggestions[i] != d.Reframe {
			t.Errorf("suggestion[%d] = %q, want %q", i, r.Suggestions[i], d.Reframe)
		}
	}
}

func TestDetect_Deterministic(t *testing.T) {
	const text = "I should have known, I'm such a failure and nothing goes right"
	a := Detect(text)
	b := Detect(text)
	if !reflect.DeepEqual(typeNames(a), typeNames(b)) || a.Confidence != b.Confidence {
		t.Error("Detect not deterministic")
	}
}

func TestExplain_Single(t *testing.T) {
	r := Detect("I always mess up")
	if len(r.Distortions) != 1 {
		t.Fatalf("expected exactly 1 distortion, got %d: %v", len(r.Distortions), typeNames(r))
	}
	got := Explain(r.Distortions)
	if got != r.Distortions[0].Explanation {
		t.Errorf("Explain single = %q, want the rule's own explanation", got)
	}
}

func TestExplain_Multiple(t *testing.T) {
	r := Detect("I always mess up and it's all my fault")
	if len(r.Distortions) < 2 {
		t.Fatalf("expected >= 2 distortions, got %d", len(r.Distortions))
	}
	got := Explain(r.Distortions)
	for _, d := range r.Distortions {
		if !strings.Contains(got, d.Name) {
			t.Errorf("combined explanation missing rule name %q: %q", d.Name, got)
		}
	}
}

func TestExplain_Empty(t *testing.T) {
	if got := Explain(nil); got != "" {
		t.Errorf("Explain(nil) = %q, want empty", got)
	}
}

func TestCatalog_TenRules(t *testing.T) {
	if len(Catalog()) != 10 {
		t.Errorf("catalog has %d rules, want 10", len(Catalog()))
	}
	seen := map[string]bool{}
	for _, r := range Catalog() {
		if seen[r.Type] {
			t.Errorf("duplicate rule type %q", r.Type)
		}
		seen[r.Type] = true
		if len(r.Patterns) == 0 {
			t.Errorf("rule %q has no patterns", r.Type)
		}
		if r.Explanation == "" || r.Reframe == "" {
			t.Errorf("rule %q missing explanation or reframe", r.Type)
		}
	}
}

func typeNames(r Result) []string {
	names := make([]string, len(r.Distortions))
	for i, d := range r.Distortions {
		names[i] = d.Type
	}
	return names
}
