package distortion

import "strings"

// Result holds the distortion scan output for one message.
type Result struct {
	Detected    bool
	Distortions []Rule   // matched rules in catalog order
	Confidence  float64  // min(0.3 * matched, 1.0)
	Suggestions []string // reframes of matched rules
}

// Detect scans a message against the distortion catalog. A rule is
// detected when any one of its patterns matches; matches are collected
// in catalog order, never match order.
func Detect(text string) Result {
	lower := strings.ToLower(text)

	var result Result
	for _, rule := range catalog {
		for _, p := range rule.Patterns {
			if p.MatchString(lower) {
				result.Distortions = append(result.Distortions, rule)
				result.Suggestions = append(result.Suggestions, rule.Reframe)
				break
			}
		}
	}

	if len(result.Distortions) > 0 {
		result.Detected = true
		result.Confidence = 0.3 * float64(len(result.Distortions))
		if result.Confidence > 1.0 {
			result.Confidence = 1.0
		}
	}

	return result
}

// Explain turns matched rules into user-facing text: the rule's own
// explanation when exactly one matched, or a combined sentence naming
// all matched rules.
func Explain(rules []Rule) string {
	switch len(rules) {
	case 0:
		return ""
	case 1:
		return rules[0].Explanation
	}

	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return "I noticed a few thinking patterns in what you shared: " +
		joinNames(names) + ". These are common mental habits, not flaws — and noticing them is the first step to loosening their grip."
}

// joinNames joins rule names with commas and a final "and".
func joinNames(names []string) string {
	if len(names) == 2 {
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
}
