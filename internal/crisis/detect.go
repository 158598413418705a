package crisis

import (
	"fmt"
	"regexp"
	"strings"
)

// tier groups patterns sharing one severity and score weight.
type tier struct {
	severity Severity
	weight   float64
	patterns []*regexp.Regexp
}

// Pattern catalogs. Order is fixed; several callers depend on stable
// label ordering in DetectedPatterns.
var tiers = []tier{
	{
		severity: SeverityCritical,
		weight:   1.0,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`kill myself`),
			regexp.MustCompile(`end my life`),
			regexp.MustCompile(`want to die`),
			regexp.MustCompile(`suicide`),
			regexp.MustCompile(`better off dead`),
			regexp.MustCompile(`no reason to live`),
			regexp.MustCompile(`end it all`),
		},
	},
	{
		severity: SeverityHigh,
		weight:   0.9,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`hurt myself`),
			regexp.MustCompile(`harm myself`),
			regexp.MustCompile(`self[- ]harm`),
			regexp.MustCompile(`cutting myself`),
			regexp.MustCompile(`can'?t go on`),
			regexp.MustCompile(`no way out`),
			regexp.MustCompile(`giving up on everything`),
		},
	},
	{
		severity: SeverityMedium,
		weight:   0.7,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`hopeless`),
			regexp.MustCompile(`worthless`),
			regexp.MustCompile(`can'?t take (it|this) anymore`),
			regexp.MustCompile(`better (off )?without me`),
			regexp.MustCompile(`nothing matters`),
			regexp.MustCompile(`what'?s the point`),
		},
	},
	{
		severity: SeverityLow,
		weight:   0.5,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`so alone`),
			regexp.MustCompile(`nobody cares`),
			regexp.MustCompile(`empty inside`),
			regexp.MustCompile(`can'?t cope`),
			regexp.MustCompile(`falling apart`),
			regexp.MustCompile(`completely numb`),
		},
	},
}

// Protective factors reduce the running score; they signal safety,
// support, or help-seeking alongside distress language.
var protectivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`getting help`),
	regexp.MustCompile(`seeing (a|my) therapist`),
	regexp.MustCompile(`i'?m safe`),
	regexp.MustCompile(`wouldn'?t (actually|really) do`),
	regexp.MustCompile(`getting better`),
	regexp.MustCompile(`have (support|people who)`),
	regexp.MustCompile(`talked? to someone`),
}

// Context amplifiers raise urgency: immediacy, means, farewells.
var contextAmplifiers = []*regexp.Regexp{
	regexp.MustCompile(`tonight`),
	regexp.MustCompile(`right now`),
	regexp.MustCompile(`today`),
	regexp.MustCompile(`have a plan`),
	regexp.MustCompile(`pills`),
	regexp.MustCompile(`goodbye`),
	regexp.MustCompile(`final(ly)? decided`),
}

// Detect scans a message against the tiered crisis catalogs and returns
// the severity verdict. It is a pure function and never fails; text with
// no matches yields IsCrisis=false.
func Detect(text string) Result {
	lower := strings.ToLower(strings.TrimSpace(text))

	result := Result{Severity: SeverityLow}

	var totalScore float64
	patternCount := 0
	maxRank := 0

	for _, t := range tiers {
		for _, p := range t.patterns {
			if !p.MatchString(lower) {
				continue
			}
			result.DetectedPatterns = append(result.DetectedPatterns,
				fmt.Sprintf("%s: %s", t.severity, p.String()))
			totalScore += t.weight
			patternCount++
			if rank(t.severity) > maxRank {
				maxRank = rank(t.severity)
				result.Severity = t.severity
			}
		}
	}

	protectiveFactors := 0
	for _, p := range protectivePatterns {
		if p.MatchString(lower) {
			protectiveFactors++
			totalScore -= 0.2
		}
	}

	amplifiers := 0
	for _, p := range contextAmplifiers {
		if p.MatchString(lower) {
			amplifiers++
			totalScore += 0.3
		}
	}

	confidence := totalScore
	if confidence > 1.0 {
		confidence = 1.0
	}
	if patternCount > 1 {
		confidence = min1(confidence + 0.2)
	}
	if amplifiers > 0 {
		confidence = min1(confidence + float64(amplifiers)*0.1)
	}
	if confidence < 0 {
		confidence = 0
	}
	result.Confidence = confidence

	result.IsCrisis = totalScore >= 0.5 || result.Severity == SeverityCritical

	switch {
	case result.Severity == SeverityCritical || totalScore >= 0.9:
		result.Action = ActionIntervene
	case result.Severity == SeverityHigh || totalScore >= 0.7:
		result.Action = ActionSupport
	default:
		result.Action = ActionMonitor
	}

	return result
}

func min1(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}
