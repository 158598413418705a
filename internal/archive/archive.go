// Package archive stores finalized session records as zstd-compressed
// JSON, one file per session.
package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/elowen/haven/internal/analytics"
)

// Write compresses a finalized session record into
// archiveDir/{session-id}.json.zst and returns the archive path.
func Write(sess analytics.Session, archiveDir string) (string, error) {
	if sess.SessionID == "" {
		return "", fmt.Errorf("session has no ID")
	}

	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}

	payload, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	destPath := Path(sess.SessionID, archiveDir)
	dest, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("create archive: %w", err)
	}
	defer dest.Close()

	encoder, err := zstd.NewWriter(dest)
	if err != nil {
		return "", fmt.Errorf("create zstd encoder: %w", err)
	}

	if _, err := encoder.Write(payload); err != nil {
		encoder.Close()
		return "", fmt.Errorf("compress: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("finalize compression: %w", err)
	}

	return destPath, nil
}

// Read loads a session record back from its archive file.
func Read(archivePath string) (analytics.Session, error) {
	var sess analytics.Session

	src, err := os.Open(archivePath)
	if err != nil {
		return sess, fmt.Errorf("open archive: %w", err)
	}
	defer src.Close()

	decoder, err := zstd.NewReader(src)
	if err != nil {
		return sess, fmt.Errorf("create zstd decoder: %w", err)
	}
	defer decoder.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, decoder); err != nil {
		return sess, fmt.Errorf("decompress: %w", err)
	}

	if err := json.Unmarshal(buf.Bytes(), &sess); err != nil {
		return sess, fmt.Errorf("parse archived session: %w", err)
	}
	return sess, nil
}

// IsArchived reports whether an archive file exists for a session ID.
func IsArchived(sessionID, archiveDir string) bool {
	_, err := os.Stat(Path(sessionID, archiveDir))
	return err == nil
}

// Path returns the deterministic archive path for a session ID.
func Path(sessionID, archiveDir string) string {
	return filepath.Join(archiveDir, sessionID+".json.zst")
}
