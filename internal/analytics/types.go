package analytics

import "time"

// Sentiment classifies one mood reading.
type Sentiment string

const (
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentPositive Sentiment = "positive"
)

// MoodPoint is one mood reading, appended per interaction in
// conversation order.
type MoodPoint struct {
	Timestamp       time.Time `json:"timestamp"`
	Mood            string    `json:"mood"`
	ReflectionDepth int       `json:"reflection_depth"`
	Sentiment       Sentiment `json:"sentiment"`
	Intensity       int       `json:"intensity"` // 1-10
}

// MilestoneKind labels the three therapeutic milestone categories.
type MilestoneKind string

const (
	MilestoneInsight    MilestoneKind = "insight"
	MilestoneCoping     MilestoneKind = "coping_strategy"
	MilestoneRegulation MilestoneKind = "emotional_regulation"
)

// Milestone is one timestamped therapeutic milestone.
type Milestone struct {
	Kind        MilestoneKind `json:"kind"`
	Description string        `json:"description"`
	Timestamp   time.Time     `json:"timestamp"`
}

// Insight is one session-level observation derived from the mood
// progression.
type Insight struct {
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Session is the per-session analytics record. It is mutable only
// while owned by an open Tracker; EndSession freezes it into history.
type Session struct {
	SessionID          string      `json:"session_id"`
	StartTime          time.Time   `json:"start_time"`
	EndTime            time.Time   `json:"end_time,omitempty"`
	Duration           int         `json:"duration_minutes"`
	TotalInteractions  int         `json:"total_interactions"`
	MaxReflectionDepth int         `json:"max_reflection_depth"`
	InitialMood        string      `json:"initial_mood"`
	FinalMood          string      `json:"final_mood,omitempty"`
	MoodProgression    []MoodPoint `json:"mood_progression"`
	CrisisDetected     bool        `json:"crisis_detected"`
	CrisisSeverity     string      `json:"crisis_severity,omitempty"`
	Milestones         []Milestone `json:"milestones,omitempty"`
	EngagementScore    int         `json:"engagement_score"` // 0-100
	Insights           []Insight   `json:"insights,omitempty"`
}

// Store is the persistence port for archived session history. The
// tracker only reads it at construction and writes after EndSession;
// implementations live in internal/store.
type Store interface {
	Load() ([]Session, error)
	Save(history []Session) error
}

// Period selects the trend window.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Trends holds the multi-session trend statistics for a period.
type Trends struct {
	Period           Period
	Sessions         int
	AvgMood          float64 // sentiment x intensity scaled to [-5, 5]
	MoodStability    float64 // standard deviation of mood values
	FrequentMoods    []MoodCount
	AvgDepth         float64
	MaxDepth         int
	Engagement       string // "increasing", "decreasing", "stable"
	TotalMilestones  int
	TotalInsights    int
	CopingStrategies int
}

// MoodCount pairs a mood label with its frequency.
type MoodCount struct {
	Mood  string
	Count int
}
