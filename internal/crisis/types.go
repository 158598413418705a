package crisis

// Severity orders crisis tiers from least to most urgent.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// rank maps a severity to its upgrade priority. Higher never downgrades.
func rank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// Action is the recommended response tier for a detection result.
type Action string

const (
	ActionMonitor   Action = "monitor"
	ActionSupport   Action = "support"
	ActionIntervene Action = "immediate_intervention"
)

// Result holds the full crisis detection output for one message.
type Result struct {
	IsCrisis         bool
	Severity         Severity
	DetectedPatterns []string // "{severity}: {pattern}" labels, scan order
	Confidence       float64  // informational only, clamped to [0, 1]
	Action           Action
}
