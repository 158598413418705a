// Package ingest replays chat transcripts through the analysis
// pipeline, either one file at a time or from a watched drop
// directory.
package ingest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Entry is a single line in a JSONL chat transcript.
type Entry struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
}

// Transcript holds a parsed conversation.
type Transcript struct {
	SessionID string
	Entries   []Entry
}

// ParseFile reads and parses a JSONL chat transcript file.
func ParseFile(path string) (*Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a JSONL transcript from a reader. Unparseable lines are
// skipped rather than failing the whole transcript.
func Parse(r io.Reader) (*Transcript, error) {
	var t Transcript

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if entry.Role != "user" && entry.Role != "assistant" {
			continue
		}

		if t.SessionID == "" && entry.SessionID != "" {
			t.SessionID = entry.SessionID
		}
		t.Entries = append(t.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan transcript: %w", err)
	}

	return &t, nil
}

// UserMessages returns the user-side texts in conversation order.
func (t *Transcript) UserMessages() []string {
	var out []string
	for _, e := range t.Entries {
		if e.Role == "user" {
			out = append(out, e.Text)
		}
	}
	return out
}
