// Package report renders a finalized session record as a markdown
// note suitable for a journal vault.
package report

import (
	"fmt"
	"strings"

	"github.com/elowen/haven/internal/analytics"
	"github.com/elowen/haven/internal/reflection"
)

// SessionNote renders a full markdown note for one finalized session.
func SessionNote(s analytics.Session) string {
	var b strings.Builder

	// Frontmatter
	b.WriteString("---\n")
	b.WriteString(fmt.Sprintf("date: %s\n", s.StartTime.Format("2006-01-02")))
	b.WriteString("type: session\n")
	b.WriteString(fmt.Sprintf("session_id: \"%s\"\n", s.SessionID))
	b.WriteString(fmt.Sprintf("duration_minutes: %d\n", s.Duration))
	b.WriteString(fmt.Sprintf("interactions: %d\n", s.TotalInteractions))
	b.WriteString(fmt.Sprintf("max_depth: %d\n", s.MaxReflectionDepth))
	b.WriteString(fmt.Sprintf("engagement: %d\n", s.EngagementScore))
	if s.CrisisDetected {
		b.WriteString(fmt.Sprintf("crisis: %s\n", s.CrisisSeverity))
	}
	b.WriteString("tags: [haven-session]\n")
	b.WriteString("---\n\n")

	b.WriteString(fmt.Sprintf("# Session %s\n\n", s.StartTime.Format("2006-01-02 15:04")))

	// Mood progression
	if len(s.MoodProgression) > 0 {
		b.WriteString("## Mood Progression\n\n")
		for _, p := range s.MoodProgression {
			b.WriteString(fmt.Sprintf("- %s — %s (%s, intensity %d, depth %d)\n",
				p.Timestamp.Format("15:04"), p.Mood, p.Sentiment, p.Intensity, p.ReflectionDepth))
		}
		b.WriteString("\n")
	}

	if len(s.Milestones) > 0 {
		b.WriteString("## Milestones\n\n")
		for _, m := range s.Milestones {
			b.WriteString(fmt.Sprintf("- **%s**: %s\n", m.Kind, m.Description))
		}
		b.WriteString("\n")
	}

	if len(s.Insights) > 0 {
		b.WriteString("## Insights\n\n")
		for _, in := range s.Insights {
			b.WriteString(fmt.Sprintf("- %s\n", in.Description))
		}
		b.WriteString("\n")
	}

	// Closing reflection
	b.WriteString("## Reflection\n\n")
	var insights []string
	for _, m := range s.Milestones {
		if m.Kind == analytics.MilestoneInsight {
			insights = append(insights, m.Description)
		}
	}
	var history []string
	for _, p := range s.MoodProgression {
		history = append(history, p.Mood)
	}
	b.WriteString(reflection.Summary(history, s.MaxReflectionDepth, insights))
	b.WriteString("\n")

	return b.String()
}
