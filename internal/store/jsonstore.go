// Package store provides persistence backends for session history.
// Both backends implement the analytics.Store port.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/elowen/haven/internal/analytics"
)

// JSONStore keeps the session history in a single JSON file, the
// default backend.
type JSONStore struct {
	path string
}

// NewJSONStore builds a store rooted at stateDir/session-history.json.
func NewJSONStore(stateDir string) *JSONStore {
	return &JSONStore{path: filepath.Join(stateDir, "session-history.json")}
}

// Load reads the history from disk. A missing file yields an empty
// history, not an error.
func (s *JSONStore) Load() ([]analytics.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}

	var history []analytics.Session
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}
	return history, nil
}

// Save writes the full history to disk.
func (s *JSONStore) Save(history []analytics.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	return os.WriteFile(s.path, data, 0o644)
}
