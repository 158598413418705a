package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/elowen/haven/internal/analytics"
)

// SQLiteStore keeps the session history in a SQLite database. The full
// record travels as a JSON payload; a few columns are duplicated so
// the history stays queryable outside the app.
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id       TEXT PRIMARY KEY,
	started_at       TEXT NOT NULL,
	duration_minutes INTEGER NOT NULL,
	max_depth        INTEGER NOT NULL,
	engagement       INTEGER NOT NULL,
	crisis_detected  INTEGER NOT NULL,
	payload          TEXT NOT NULL
);
`

// OpenSQLite opens (and if needed initializes) a history database at
// the given path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the full history ordered by start time.
func (s *SQLiteStore) Load() ([]analytics.Session, error) {
	rows, err := s.db.Query(`SELECT payload FROM sessions ORDER BY started_at`)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var history []analytics.Session
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		var sess analytics.Session
		if err := json.Unmarshal([]byte(payload), &sess); err != nil {
			// A corrupt row degrades to "not present" rather than
			// failing the whole load.
			continue
		}
		history = append(history, sess)
	}
	return history, rows.Err()
}

// Save upserts every history record.
func (s *SQLiteStore) Save(history []analytics.Session) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO sessions (session_id, started_at, duration_minutes, max_depth, engagement, crisis_detected, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			started_at = excluded.started_at,
			duration_minutes = excluded.duration_minutes,
			max_depth = excluded.max_depth,
			engagement = excluded.engagement,
			crisis_detected = excluded.crisis_detected,
			payload = excluded.payload`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare save: %w", err)
	}
	defer stmt.Close()

	for _, sess := range history {
		payload, err := json.Marshal(sess)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("marshal session %s: %w", sess.SessionID, err)
		}
		crisisFlag := 0
		if sess.CrisisDetected {
			crisisFlag = 1
		}
		if _, err := stmt.Exec(
			sess.SessionID,
			sess.StartTime.UTC().Format("2006-01-02T15:04:05Z"),
			sess.Duration,
			sess.MaxReflectionDepth,
			sess.EngagementScore,
			crisisFlag,
			string(payload),
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("save session %s: %w", sess.SessionID, err)
		}
	}

	return tx.Commit()
}
