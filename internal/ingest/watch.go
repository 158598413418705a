package ingest

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/elowen/haven/internal/analytics"
	"github.com/elowen/haven/internal/config"
)

// settleDelay gives writers time to finish a transcript before it is
// processed.
const settleDelay = 500 * time.Millisecond

// Watch processes every .jsonl transcript dropped into dir until the
// context is cancelled. Each transcript runs through Process with a
// fresh conversation slot on the shared tracker; failures on one file
// never stop the watcher.
func Watch(ctx context.Context, dir string, tracker *analytics.Tracker, cfg config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	seen := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".jsonl") {
				continue
			}
			if seen[event.Name] {
				continue
			}
			seen[event.Name] = true

			time.Sleep(settleDelay)

			result, err := Process(event.Name, tracker, cfg)
			if err != nil {
				log.Printf("warning: process %s: %v", filepath.Base(event.Name), err)
				continue
			}
			if result.Skipped {
				log.Printf("skipped %s: %s", filepath.Base(event.Name), result.Reason)
				continue
			}
			log.Printf("processed %s: session %s, engagement %d",
				filepath.Base(event.Name), result.SessionID, result.Session.EngagementScore)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("warning: watcher: %v", err)
		}
	}
}
