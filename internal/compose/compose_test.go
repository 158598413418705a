package compose

import (
	"reflect"
	"strings"
	"testing"
)

func TestRespond_EmojiOnly(t *testing.T) {
	resp, err := Respond("😢😢 🙏", Context{PreviousDepth: 3})
	if err != nil {
		t.Fatalf("Respond error: %v", err)
	}
	if resp.Message != emojiPrompt {
		t.Errorf("Message = %q, want clarification prompt", resp.Message)
	}
	if resp.Reflection.CurrentDepth != 3 {
		t.Errorf("depth = %d, want 3 (unchanged)", resp.Reflection.CurrentDepth)
	}
	if resp.IsCrisis {
		t.Error("IsCrisis = true for emoji input")
	}
}

func TestRespond_CrisisShortCircuit(t *testing.T) {
	resp, err := Respond("I want to end my life tonight", Context{PreviousDepth: 2})
	if err != nil {
		t.Fatalf("Respond error: %v", err)
	}
	if !resp.IsCrisis {
		t.Fatal("IsCrisis = false, want true")
	}
	if !strings.Contains(resp.Message, "988") {
		t.Error("crisis message missing lifeline resources")
	}
	if resp.Distortions != nil {
		t.Error("Distortions non-nil: crisis should skip further analysis")
	}
	if resp.SessionSummary != "" {
		t.Error("SessionSummary non-empty on crisis path")
	}
}

func TestRespond_EmotionKeyword(t *testing.T) {
	resp, _ := Respond("I've been feeling really anxious lately", Context{PreviousDepth: 1})
	if !strings.Contains(resp.Message, "Anxiety") {
		t.Errorf("Message = %q, want the anxious-specific reply", resp.Message)
	}
	if resp.FollowUpQuestion == "" {
		t.Error("missing follow-up question")
	}
}

func TestRespond_FirstEmotionWins(t *testing.T) {
	// Both "overwhelmed" and "sad" appear; dictionary order picks overwhelmed.
	resp, _ := Respond("I'm so overwhelmed and sad", Context{PreviousDepth: 1})
	if !strings.Contains(resp.Message, "overwhelmed") {
		t.Errorf("Message = %q, want the overwhelmed reply (first match wins)", resp.Message)
	}
}

func TestRespond_GenericDefault(t *testing.T) {
	resp, _ := Respond("some things happened this week", Context{PreviousDepth: 1})
	if resp.Message != defaultMessage {
		t.Errorf("Message = %q, want generic default", resp.Message)
	}
}

func TestRespond_DepthTieredMessage(t *testing.T) {
	resp, _ := Respond("I realize this pattern keeps repeating", Context{PreviousDepth: 2})
	if resp.Reflection.CurrentDepth != 3 {
		t.Fatalf("depth = %d, want 3", resp.Reflection.CurrentDepth)
	}
	if resp.Message != depth3Message {
		t.Errorf("Message = %q, want depth-3 message", resp.Message)
	}
}

func TestRespond_DistortionAppended(t *testing.T) {
	resp, _ := Respond("I always ruin everything for everyone", Context{PreviousDepth: 1})
	if resp.Distortions == nil || !resp.Distortions.Detected {
		t.Fatal("expected distortions to be detected")
	}
	// Concatenation, not replacement: base message still present.
	if !strings.Contains(resp.Message, defaultMessage) {
		t.Errorf("base message replaced instead of extended: %q", resp.Message)
	}
	if !strings.Contains(resp.Message, "another angle") {
		t.Errorf("missing invitational sentence: %q", resp.Message)
	}
}

func TestRespond_SessionSummaryWhenReady(t *testing.T) {
	history := []string{"first message", "second message"}
	resp, _ := Respond("I understand now what this is really about", Context{
		SessionHistory: history,
		PreviousDepth:  3,
	})
	if !resp.Reflection.ReadyForSummary {
		t.Fatal("ReadyForSummary = false, want true at depth 4")
	}
	if resp.SessionSummary == "" {
		t.Error("SessionSummary empty despite readiness")
	}
	if !strings.Contains(resp.SessionSummary, "depth 4") {
		t.Errorf("summary does not cite depth: %q", resp.SessionSummary)
	}
}

func TestRespond_Deterministic(t *testing.T) {
	ctx := Context{SessionHistory: []string{"earlier"}, PreviousDepth: 2, ConversationCount: 3}
	a, _ := Respond("I feel anxious because work never stops", ctx)
	b, _ := Respond("I feel anxious because work never stops", ctx)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Respond not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestRespond_EmptyInput(t *testing.T) {
	resp, err := Respond("", Context{PreviousDepth: 1})
	if err != nil {
		t.Fatalf("Respond error: %v", err)
	}
	if resp.Message == "" || resp.FollowUpQuestion == "" {
		t.Error("empty input must still produce a well-formed response")
	}
}

func TestDeepen_TopicMatch(t *testing.T) {
	resp := Deepen("sad", "prior reply", "it's mostly about my family, my mother especially", 1)
	if !strings.Contains(resp.Message, "Family") {
		t.Errorf("Message = %q, want family topic reply", resp.Message)
	}
}

func TestDeepen_FirstTopicWins(t *testing.T) {
	// "family" and "work" both present; table order picks family.
	resp := Deepen("sad", "", "my family and my work are both a mess", 1)
	if !strings.Contains(resp.Message, "Family") {
		t.Errorf("Message = %q, want family topic (first match wins)", resp.Message)
	}
}

func TestDeepen_ProbingVariantAtDepth(t *testing.T) {
	shallow := Deepen("sad", "", "it's about my family", 1)
	deep := Deepen("sad", "", "it's about my family", 3)
	if shallow.FollowUpQuestion == deep.FollowUpQuestion {
		t.Error("depth >= 3 should switch to the probing question variant")
	}
}

func TestDeepen_GenericFallbackTiers(t *testing.T) {
	low := Deepen("sad", "", "hmm, not sure what else to say", 1)
	mid := Deepen("sad", "", "hmm, not sure what else to say", 3)
	high := Deepen("sad", "", "hmm, not sure what else to say", 4)
	if low.Message == mid.Message || mid.Message == high.Message {
		t.Error("fallback tiers should produce distinct messages")
	}
}

func TestDeepen_CrisisShortCircuit(t *testing.T) {
	resp := Deepen("sad", "", "honestly I just want to die", 2)
	if !resp.IsCrisis {
		t.Fatal("IsCrisis = false, want true")
	}
	if !strings.Contains(resp.Message, "988") {
		t.Error("crisis message missing resources")
	}
}

func TestDeepen_EmojiGuard(t *testing.T) {
	resp := Deepen("sad", "", "�broken", 2)
	if resp.Message == emojiPrompt {
		t.Error("text mixed with emoji should not trigger the emoji guard")
	}
	resp = Deepen("sad", "", "💔", 2)
	if resp.Message != emojiPrompt {
		t.Errorf("Message = %q, want emoji clarification prompt", resp.Message)
	}
}

func TestEmojiOnly(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"😀", true},
		{"😀 🙏 ", true},
		{"❤️", true},
		{"hello", false},
		{"😀 ok", false},
		{"", false},
		{"   ", false},
	}
	for _, tc := range cases {
		if got := emojiOnly(tc.in); got != tc.want {
			t.Errorf("emojiOnly(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
