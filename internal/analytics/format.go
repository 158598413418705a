package analytics

import (
	"fmt"
	"strings"
)

// Format renders trend statistics as aligned terminal output.
func Format(tr Trends) string {
	if tr.Sessions == 0 {
		return fmt.Sprintf("haven trends --period %s\n\n  No sessions found in this period.\n", tr.Period)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "haven trends --period %s\n", tr.Period)

	fmt.Fprintf(&b, "\nOverview (%d sessions)\n", tr.Sessions)
	fmt.Fprintf(&b, "  %-18s %7.1f\n", "avg mood (±5)", tr.AvgMood)
	fmt.Fprintf(&b, "  %-18s %7.1f\n", "mood stability", tr.MoodStability)
	fmt.Fprintf(&b, "  %-18s %7.1f\n", "avg depth", tr.AvgDepth)
	fmt.Fprintf(&b, "  %-18s %7d\n", "max depth", tr.MaxDepth)
	fmt.Fprintf(&b, "  %-18s %7s\n", "engagement", tr.Engagement)

	if len(tr.FrequentMoods) > 0 {
		b.WriteString("\nFrequent moods\n")
		for _, m := range tr.FrequentMoods {
			fmt.Fprintf(&b, "  %-14s %4d\n", m.Mood, m.Count)
		}
	}

	b.WriteString("\nProgress\n")
	fmt.Fprintf(&b, "  %-18s %4d\n", "milestones", tr.TotalMilestones)
	fmt.Fprintf(&b, "  %-18s %4d\n", "insights", tr.TotalInsights)
	fmt.Fprintf(&b, "  %-18s %4d\n", "coping strategies", tr.CopingStrategies)

	return b.String()
}
