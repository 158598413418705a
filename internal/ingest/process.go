package ingest

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/elowen/haven/internal/analytics"
	"github.com/elowen/haven/internal/archive"
	"github.com/elowen/haven/internal/compose"
	"github.com/elowen/haven/internal/config"
	"github.com/elowen/haven/internal/crisis"
	"github.com/elowen/haven/internal/redact"
)

// Result holds the outcome of processing one transcript.
type Result struct {
	SessionID   string
	Session     *analytics.Session
	ArchivePath string
	Skipped     bool
	Reason      string
}

// Process replays a transcript's user messages through the full
// pipeline into the tracker, then finalizes and optionally archives
// the session. Persistence failures degrade to warnings; the analysis
// itself always completes.
func Process(path string, tracker *analytics.Tracker, cfg config.Config) (*Result, error) {
	t, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	messages := t.UserMessages()
	if len(messages) == 0 {
		return &Result{Skipped: true, Reason: "no user messages"}, nil
	}

	sessionID := t.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	initialMood := messages[0]
	if cfg.Privacy.RedactPII {
		initialMood = redact.Scrub(initialMood)
	}
	tracker.StartSession(sessionID, initialMood)

	var history []string
	depth := 1
	for _, msg := range messages {
		resp, err := compose.Respond(msg, compose.Context{
			SessionHistory:    history,
			PreviousDepth:     depth,
			ConversationCount: len(history),
		})
		if err != nil {
			// Respond never fails; keep the guard for contract changes.
			return nil, fmt.Errorf("compose response: %w", err)
		}
		depth = resp.Reflection.CurrentDepth

		var cr *crisis.Result
		if resp.IsCrisis {
			detected := crisis.Detect(msg)
			cr = &detected
		}

		recorded := msg
		if cfg.Privacy.RedactPII {
			recorded = redact.Scrub(msg)
		}
		tracker.RecordInteraction(recorded, resp.Message, depth, cr)
		history = append(history, recorded)
	}

	sess, err := tracker.EndSession()
	if err != nil {
		log.Printf("warning: could not persist session %s: %v", sessionID, err)
	}
	if sess == nil {
		return &Result{Skipped: true, Reason: "session not open"}, nil
	}

	result := &Result{SessionID: sessionID, Session: sess}

	if cfg.Archive.Enabled {
		archPath, err := archive.Write(*sess, cfg.ArchiveDir())
		if err != nil {
			log.Printf("warning: could not archive session %s: %v", sessionID, err)
		} else {
			result.ArchivePath = archPath
		}
	}

	return result, nil
}
