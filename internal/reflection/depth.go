package reflection

import (
	"regexp"
	"strings"
)

// Analysis holds the depth scan output for one message.
type Analysis struct {
	CurrentDepth      int // 1-5
	DepthIncrease     bool
	QualityIndicators []string
	ReadyForSummary   bool
	NextSteps         []string
}

// depthTier holds the linguistic markers for one reflection level.
// Weight equals the level number.
type depthTier struct {
	level    int
	patterns []*regexp.Regexp
}

var depthTiers = []depthTier{
	{
		level: 1,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`i feel`),
			regexp.MustCompile(`i'?m (sad|angry|anxious|tired|upset|stressed)`),
			regexp.MustCompile(`today (was|is)`),
		},
	},
	{
		level: 2,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`because`),
			regexp.MustCompile(`i think it'?s`),
			regexp.MustCompile(`makes me feel`),
			regexp.MustCompile(`when (he|she|they|it) `),
			regexp.MustCompile(`started when`),
		},
	},
	{
		level: 3,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`i realize`),
			regexp.MustCompile(`i notice`),
			regexp.MustCompile(`pattern`),
			regexp.MustCompile(`reminds me of`),
			regexp.MustCompile(`childhood`),
			regexp.MustCompile(`goes back to`),
			regexp.MustCompile(`keep (doing|repeating|ending up)`),
		},
	},
	{
		level: 4,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`i understand now`),
			regexp.MustCompile(`underneath (it|that|this) all`),
			regexp.MustCompile(`core belief`),
			regexp.MustCompile(`i'?ve been avoiding`),
			regexp.MustCompile(`(really|actually) about`),
			regexp.MustCompile(`protect(ing)? myself from`),
		},
	},
	{
		level: 5,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`i forgive`),
			regexp.MustCompile(`i accept`),
			regexp.MustCompile(`letting go of`),
			regexp.MustCompile(`i choose to`),
			regexp.MustCompile(`i'?m ready to (change|move|let)`),
			regexp.MustCompile(`make peace with`),
		},
	},
}

// qualityCategory is one of the six distinct insight signals scanned
// independently of depth.
type qualityCategory struct {
	label    string
	patterns []*regexp.Regexp
}

var qualityCategories = []qualityCategory{
	{
		label: "Self-awareness breakthrough",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`i (just )?realize`),
			regexp.MustCompile(`i never (noticed|saw it)`),
			regexp.MustCompile(`it hit me`),
		},
	},
	{
		label: "Pattern recognition",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`pattern`),
			regexp.MustCompile(`always happens`),
			regexp.MustCompile(`keep (doing|repeating)`),
			regexp.MustCompile(`every time`),
		},
	},
	{
		label: "Historical insight",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`childhood`),
			regexp.MustCompile(`growing up`),
			regexp.MustCompile(`when i was (young|little|a kid)`),
			regexp.MustCompile(`my past`),
		},
	},
	{
		label: "Future-oriented thinking",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`from now on`),
			regexp.MustCompile(`going forward`),
			regexp.MustCompile(`next time i('?ll| will)`),
			regexp.MustCompile(`i hope to`),
		},
	},
	{
		label: "Gratitude",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`grateful`),
			regexp.MustCompile(`thankful`),
			regexp.MustCompile(`i appreciate`),
		},
	},
	{
		label: "Growth mindset",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`i can learn`),
			regexp.MustCompile(`i'?m (growing|learning)`),
			regexp.MustCompile(`getting better at`),
			regexp.MustCompile(`working on (myself|it)`),
		},
	},
}

// nextSteps returns the canned guidance for a depth tier.
func nextSteps(depth int) []string {
	switch {
	case depth >= 4:
		return []string{
			"Sit with what this connects to underneath the surface.",
			"Consider what younger you would have needed to hear.",
		}
	case depth == 3:
		return []string{
			"Consider how far back this pattern reaches.",
			"Notice what the moments that trigger it have in common.",
		}
	case depth == 2:
		return []string{
			"Explore what situations tend to bring this feeling up.",
			"Ask yourself what this feeling might be trying to tell you.",
		}
	default:
		return []string{
			"Notice where in your body you feel this emotion.",
			"Try naming the feeling as precisely as you can.",
		}
	}
}

// AnalyzeDepth scores a message against the five-tier marker catalog
// and applies the bounded-drift rule against previousDepth. history is
// accepted for interface symmetry with Summary; the depth formula does
// not consult it.
func AnalyzeDepth(text string, previousDepth int, history []string) Analysis {
	_ = history
	lower := strings.ToLower(text)

	if previousDepth < 1 {
		previousDepth = 1
	}
	if previousDepth > 5 {
		previousDepth = 5
	}

	// Raw signal: the highest tier with at least one match, default 1.
	calculated := 1
	for _, t := range depthTiers {
		for _, p := range t.patterns {
			if p.MatchString(lower) {
				if t.level > calculated {
					calculated = t.level
				}
				break
			}
		}
	}

	// Bounded drift: current = max(calculated, min(previous, calculated+1)).
	// The decrease case yields calculated+1 when previous is far above the
	// raw signal; that asymmetry is intentional, see the regression tests.
	current := previousDepth
	if calculated+1 < current {
		current = calculated + 1
	}
	if calculated > current {
		current = calculated
	}
	if current > 5 {
		current = 5
	}

	var indicators []string
	for _, c := range qualityCategories {
		for _, p := range c.patterns {
			if p.MatchString(lower) {
				indicators = append(indicators, c.label)
				break
			}
		}
	}

	return Analysis{
		CurrentDepth:      current,
		DepthIncrease:     current > previousDepth,
		QualityIndicators: indicators,
		ReadyForSummary:   current >= 4 || len(indicators) >= 3,
		NextSteps:         nextSteps(current),
	}
}
