package analytics

import "strings"

// Fixed keyword tables for mood extraction. Literal substring lookup,
// first match wins; no fuzzy matching.

var moodCategories = []struct {
	mood     string
	keywords []string
}{
	{"anxious", []string{"anxious", "anxiety", "nervous", "worried", "panic"}},
	{"sad", []string{"sad", "down", "depressed", "crying", "grief"}},
	{"angry", []string{"angry", "mad", "furious", "frustrated", "irritated"}},
	{"overwhelmed", []string{"overwhelmed", "too much", "drowning", "stretched"}},
	{"lonely", []string{"lonely", "alone", "isolated"}},
	{"hopeful", []string{"hopeful", "optimistic", "looking forward", "excited"}},
	{"calm", []string{"calm", "peaceful", "relaxed", "at ease"}},
	{"happy", []string{"happy", "good", "great", "joyful", "content"}},
}

var negativeWords = []string{
	"sad", "angry", "anxious", "worried", "scared", "lonely", "hopeless",
	"overwhelmed", "depressed", "frustrated", "tired", "hurt", "awful",
	"terrible", "bad", "crying", "miserable",
}

var positiveWords = []string{
	"happy", "calm", "hopeful", "grateful", "peaceful", "good", "better",
	"relieved", "proud", "excited", "content", "joyful",
}

// Intensifier table: strongest first so "extremely" is not shadowed by
// a weaker match. Default intensity is 5.
var intensifiers = []struct {
	word  string
	value int
}{
	{"extremely", 9},
	{"incredibly", 9},
	{"completely", 8},
	{"totally", 8},
	{"very", 7},
	{"really", 7},
	{"so ", 6},
	{"quite", 6},
	{"a little", 3},
	{"a bit", 3},
	{"slightly", 2},
}

// extractMood maps free text to one of the eight mood categories,
// defaulting to "neutral".
func extractMood(text string) string {
	lower := strings.ToLower(text)
	for _, c := range moodCategories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.mood
			}
		}
	}
	return "neutral"
}

// moodSentiment classifies text against the fixed word lists. Negative
// wins ties.
func moodSentiment(text string) Sentiment {
	lower := strings.ToLower(text)
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			return SentimentNegative
		}
	}
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			return SentimentPositive
		}
	}
	return SentimentNeutral
}

// moodIntensity reads the first matching intensifier, defaulting to 5.
func moodIntensity(text string) int {
	lower := strings.ToLower(text)
	for _, in := range intensifiers {
		if strings.Contains(lower, in.word) {
			return in.value
		}
	}
	return 5
}

// moodValue collapses a mood point to a single value scaled to ±5 for
// trend math: sentiment sign times intensity, halved.
func moodValue(p MoodPoint) float64 {
	sign := 0.0
	switch p.Sentiment {
	case SentimentNegative:
		sign = -1
	case SentimentPositive:
		sign = 1
	}
	return sign * float64(p.Intensity) / 2.0
}
