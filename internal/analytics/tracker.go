package analytics

import (
	"strings"
	"sync"
	"time"

	"github.com/elowen/haven/internal/crisis"
)

// Tracker accumulates per-message telemetry into one open session and
// an append-only history. One Tracker per conversation; the mutex
// keeps a shared instance safe, but there is no multi-tenancy.
type Tracker struct {
	mu      sync.Mutex
	store   Store
	current *Session
	history []Session

	now func() time.Time
}

// NewTracker builds a tracker backed by the given store. A nil store
// keeps history in memory only. Load failure degrades to an empty
// history rather than propagating.
func NewTracker(store Store) *Tracker {
	t := &Tracker{store: store, now: time.Now}
	if store != nil {
		if history, err := store.Load(); err == nil {
			t.history = history
		}
	}
	return t
}

// Milestone phrase sets. Literal lowercase substrings, one milestone
// appended per matching set.
var milestonePhrases = []struct {
	kind        MilestoneKind
	description string
	phrases     []string
}{
	{
		kind:        MilestoneInsight,
		description: "Gained a new insight",
		phrases:     []string{"i realize", "i never thought", "makes sense now", "i see now", "it hit me"},
	},
	{
		kind:        MilestoneCoping,
		description: "Identified a coping strategy",
		phrases:     []string{"i could try", "i'll try", "i will try", "breathing", "journaling", "next time i"},
	},
	{
		kind:        MilestoneRegulation,
		description: "Practiced emotional regulation",
		phrases:     []string{"i feel calmer", "feel better now", "less anxious", "more in control", "calmed down"},
	},
}

// StartSession opens a fresh session record, silently replacing any
// session still open. Callers wanting the previous session archived
// must call EndSession first.
func (t *Tracker) StartSession(sessionID, initialMood string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.current = &Session{
		SessionID:          sessionID,
		StartTime:          now,
		MaxReflectionDepth: 1,
		InitialMood:        initialMood,
		MoodProgression: []MoodPoint{{
			Timestamp:       now,
			Mood:            initialMood,
			ReflectionDepth: 1,
			Sentiment:       moodSentiment(initialMood),
			Intensity:       moodIntensity(initialMood),
		}},
	}
}

// RecordInteraction folds one exchange into the open session. No-op
// when no session is open.
func (t *Tracker) RecordInteraction(userInput, aiResponse string, reflectionDepth int, cr *crisis.Result) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.current
	if s == nil {
		return
	}
	_ = aiResponse

	now := t.now()
	s.TotalInteractions++
	if reflectionDepth > s.MaxReflectionDepth {
		s.MaxReflectionDepth = reflectionDepth
	}

	s.MoodProgression = append(s.MoodProgression, MoodPoint{
		Timestamp:       now,
		Mood:            extractMood(userInput),
		ReflectionDepth: reflectionDepth,
		Sentiment:       moodSentiment(userInput),
		Intensity:       moodIntensity(userInput),
	})

	if cr != nil && cr.IsCrisis {
		s.CrisisDetected = true
		s.CrisisSeverity = string(cr.Severity)
	}

	lower := strings.ToLower(userInput)
	for _, m := range milestonePhrases {
		for _, phrase := range m.phrases {
			if strings.Contains(lower, phrase) {
				s.Milestones = append(s.Milestones, Milestone{
					Kind:        m.kind,
					Description: m.description,
					Timestamp:   now,
				})
				break
			}
		}
	}

	// A negative, negative, positive run in the last three readings
	// marks an emotional turnaround worth surfacing later.
	n := len(s.MoodProgression)
	if n >= 3 {
		a, b, c := s.MoodProgression[n-3], s.MoodProgression[n-2], s.MoodProgression[n-1]
		if a.Sentiment == SentimentNegative && b.Sentiment == SentimentNegative && c.Sentiment == SentimentPositive {
			s.Insights = append(s.Insights, Insight{
				Kind:        "emotional_pattern",
				Description: "Mood lifted after sustained difficulty",
				Timestamp:   now,
			})
		}
	}

	s.EngagementScore = engagementScore(s)
}

// engagementScore applies the additive formula; the interaction term
// saturates at 40 before summing.
func engagementScore(s *Session) int {
	interactions := s.TotalInteractions * 10
	if interactions > 40 {
		interactions = 40
	}
	score := interactions + 15*s.MaxReflectionDepth + 10*len(s.Milestones) + 5*len(s.Insights)
	if score > 100 {
		score = 100
	}
	return score
}

// EndSession finalizes the open session, archives it, and clears the
// singleton slot. Returns nil when no session was open. The returned
// record is final even when persisting the history fails; the save
// error is reported separately.
func (t *Tracker) EndSession() (*Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.current
	if s == nil {
		return nil, nil
	}

	now := t.now()
	s.EndTime = now
	s.Duration = int(now.Sub(s.StartTime).Minutes())
	if n := len(s.MoodProgression); n > 0 {
		s.FinalMood = s.MoodProgression[n-1].Mood
	}

	switch {
	case s.Duration >= 10:
		s.EngagementScore += 10
	case s.Duration >= 5:
		s.EngagementScore += 5
	}
	if s.EngagementScore > 100 {
		s.EngagementScore = 100
	}

	t.history = append(t.history, *s)
	t.current = nil

	var err error
	if t.store != nil {
		err = t.store.Save(t.history)
	}
	return s, err
}

// History returns a copy of the archived sessions.
func (t *Tracker) History() []Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Session, len(t.history))
	copy(out, t.history)
	return out
}

// Current returns a snapshot of the open session, or nil.
func (t *Tracker) Current() *Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return nil
	}
	snap := *t.current
	return &snap
}
