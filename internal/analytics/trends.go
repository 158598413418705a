package analytics

import (
	"math"
	"sort"
	"time"
)

// MoodTrends computes multi-session trend statistics over the archived
// history within the period window. An empty window yields an all-zero
// shape with a stable engagement direction.
func (t *Tracker) MoodTrends(period Period) Trends {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := periodCutoff(t.now(), period)

	var sessions []Session
	for _, s := range t.history {
		if !s.StartTime.Before(cutoff) {
			sessions = append(sessions, s)
		}
	}

	result := Trends{Period: period, Engagement: "stable"}
	if len(sessions) == 0 {
		return result
	}
	result.Sessions = len(sessions)

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})

	// Mood mean and stability over every reading in the window.
	var values []float64
	moodCounts := make(map[string]int)
	for _, s := range sessions {
		for _, p := range s.MoodProgression {
			values = append(values, moodValue(p))
			moodCounts[p.Mood]++
		}
	}
	if len(values) > 0 {
		var sum float64
		for _, v := range values {
			sum += v
		}
		mean := sum / float64(len(values))
		result.AvgMood = mean

		var sumSq float64
		for _, v := range values {
			d := v - mean
			sumSq += d * d
		}
		result.MoodStability = math.Sqrt(sumSq / float64(len(values)))
	}

	result.FrequentMoods = topMoods(moodCounts, 5)

	// Depth and cumulative counters.
	var depthSum int
	for _, s := range sessions {
		depthSum += s.MaxReflectionDepth
		if s.MaxReflectionDepth > result.MaxDepth {
			result.MaxDepth = s.MaxReflectionDepth
		}
		result.TotalMilestones += len(s.Milestones)
		result.TotalInsights += len(s.Insights)
		for _, m := range s.Milestones {
			if m.Kind == MilestoneCoping {
				result.CopingStrategies++
			}
		}
	}
	result.AvgDepth = float64(depthSum) / float64(len(sessions))

	result.Engagement = engagementDirection(sessions)

	return result
}

// periodCutoff returns the window start for a period ending now.
func periodCutoff(now time.Time, period Period) time.Time {
	switch period {
	case PeriodDaily:
		return now.AddDate(0, 0, -1)
	case PeriodMonthly:
		return now.AddDate(0, -1, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}

// topMoods returns the most frequent moods, count descending with
// alphabetical tie-break, capped at limit.
func topMoods(counts map[string]int, limit int) []MoodCount {
	out := make([]MoodCount, 0, len(counts))
	for mood, count := range counts {
		out = append(out, MoodCount{Mood: mood, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Mood < out[j].Mood
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// engagementDirection compares the last five sessions against the
// earlier ones; a gap above five points either way breaks "stable".
func engagementDirection(sessions []Session) string {
	if len(sessions) < 2 {
		return "stable"
	}

	split := len(sessions) - 5
	if split < 1 {
		split = 1
	}
	earlier, recent := sessions[:split], sessions[split:]

	recentAvg := avgEngagement(recent)
	earlierAvg := avgEngagement(earlier)

	switch {
	case recentAvg > earlierAvg+5:
		return "increasing"
	case recentAvg < earlierAvg-5:
		return "decreasing"
	default:
		return "stable"
	}
}

func avgEngagement(sessions []Session) float64 {
	if len(sessions) == 0 {
		return 0
	}
	var sum int
	for _, s := range sessions {
		sum += s.EngagementScore
	}
	return float64(sum) / float64(len(sessions))
}
