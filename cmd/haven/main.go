package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/elowen/haven/internal/analytics"
	"github.com/elowen/haven/internal/archive"
	"github.com/elowen/haven/internal/compose"
	"github.com/elowen/haven/internal/config"
	"github.com/elowen/haven/internal/crisis"
	"github.com/elowen/haven/internal/ingest"
	"github.com/elowen/haven/internal/redact"
	"github.com/elowen/haven/internal/report"
	"github.com/elowen/haven/internal/store"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "analyze":
		if len(os.Args) < 3 {
			fatal("usage: haven analyze <text>")
		}
		analyze(strings.Join(os.Args[2:], " "))

	case "chat":
		cfg, tracker, closeStore := mustTracker()
		defer closeStore()
		chat(cfg, tracker, os.Stdin, os.Stdout)

	case "process":
		if len(os.Args) < 3 {
			fatal("usage: haven process <transcript.jsonl>")
		}
		cfg, tracker, closeStore := mustTracker()
		defer closeStore()
		result, err := ingest.Process(os.Args[2], tracker, cfg)
		if err != nil {
			fatal("process: %v", err)
		}
		if result.Skipped {
			fmt.Printf("skipped: %s\n", result.Reason)
		} else {
			fmt.Printf("recorded session %s (%d interactions, engagement %d)\n",
				result.SessionID, result.Session.TotalInteractions, result.Session.EngagementScore)
			if result.ArchivePath != "" {
				fmt.Printf("archived: %s\n", result.ArchivePath)
			}
		}

	case "watch":
		if len(os.Args) < 3 {
			fatal("usage: haven watch <dir>")
		}
		cfg, tracker, closeStore := mustTracker()
		defer closeStore()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := ingest.Watch(ctx, os.Args[2], tracker, cfg); err != nil {
			fatal("watch: %v", err)
		}

	case "trends":
		period := analytics.Period(flagValue(os.Args[2:], "--period"))
		if period == "" {
			period = analytics.PeriodWeekly
		}
		switch period {
		case analytics.PeriodDaily, analytics.PeriodWeekly, analytics.PeriodMonthly:
		default:
			fatal("unknown period %q (daily, weekly, monthly)", period)
		}
		_, tracker, closeStore := mustTracker()
		defer closeStore()
		fmt.Print(analytics.Format(tracker.MoodTrends(period)))

	case "report":
		if len(os.Args) < 3 {
			fatal("usage: haven report <session-id>")
		}
		cfg, tracker, closeStore := mustTracker()
		defer closeStore()
		sess, err := findSession(os.Args[2], tracker, cfg)
		if err != nil {
			fatal("report: %v", err)
		}
		fmt.Print(report.SessionNote(sess))

	case "init":
		path, err := config.WriteDefault(config.DefaultConfig().DataPath)
		if err != nil {
			fatal("init: %v", err)
		}
		fmt.Printf("wrote %s\n", config.CompressHome(path))

	case "version":
		fmt.Printf("haven v%s\n", version)

	case "help", "--help", "-h":
		usage()

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

// analyze runs one message through the pipeline and prints the result
// without touching session state.
func analyze(text string) {
	resp, err := compose.Respond(text, compose.Context{PreviousDepth: 1})
	if err != nil {
		fatal("analyze: %v", err)
	}

	if resp.IsCrisis {
		fmt.Println(resp.Message)
		return
	}

	fmt.Printf("depth:      %d/5\n", resp.Reflection.CurrentDepth)
	if len(resp.Reflection.QualityIndicators) > 0 {
		fmt.Printf("indicators: %s\n", strings.Join(resp.Reflection.QualityIndicators, ", "))
	}
	if resp.Distortions != nil && resp.Distortions.Detected {
		for _, d := range resp.Distortions.Distortions {
			fmt.Printf("pattern:    %s\n", d.Type)
		}
	}
	fmt.Printf("\n%s\n", resp.Message)
	if resp.FollowUpQuestion != "" {
		fmt.Printf("\n%s\n", resp.FollowUpQuestion)
	}
}

// chat runs an interactive session on in until EOF or "quit".
// Detection runs on the raw line; what reaches the tracker (and from
// there the store and archive) is scrubbed when redaction is enabled.
func chat(cfg config.Config, tracker *analytics.Tracker, in io.Reader, out io.Writer) {
	fmt.Fprintf(out, "haven v%s — type how you're feeling, \"/deeper <text>\" to reflect further, or \"quit\" to finish.\n\n", version)

	scrub := func(text string) string {
		if cfg.Privacy.RedactPII {
			return redact.Scrub(text)
		}
		return text
	}

	scanner := bufio.NewScanner(in)
	sessionID := uuid.NewString()
	var history []string
	depth := 1
	started := false
	var lastInput, lastMessage string

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		// "/deeper <text>" opts into the deeper-reflection layer on
		// the previous exchange.
		if followUp, ok := strings.CutPrefix(line, "/deeper "); ok && lastInput != "" {
			deep := compose.Deepen(lastInput, lastMessage, followUp, depth)
			var cr *crisis.Result
			if deep.IsCrisis {
				detected := crisis.Detect(followUp)
				cr = &detected
			}
			recorded := scrub(followUp)
			tracker.RecordInteraction(recorded, deep.Message, depth, cr)
			history = append(history, recorded)
			fmt.Fprintf(out, "\n%s\n\n%s\n\n", deep.Message, deep.FollowUpQuestion)
			continue
		}

		if !started {
			tracker.StartSession(sessionID, scrub(line))
			started = true
		}

		resp, err := compose.Respond(line, compose.Context{
			SessionHistory:    history,
			PreviousDepth:     depth,
			ConversationCount: len(history),
		})
		if err != nil {
			fatal("respond: %v", err)
		}
		depth = resp.Reflection.CurrentDepth

		var cr *crisis.Result
		if resp.IsCrisis {
			detected := crisis.Detect(line)
			cr = &detected
		}
		recorded := scrub(line)
		tracker.RecordInteraction(recorded, resp.Message, depth, cr)
		history = append(history, recorded)
		lastInput, lastMessage = line, resp.Message

		fmt.Fprintf(out, "\n%s\n", resp.Message)
		if resp.FollowUpQuestion != "" {
			fmt.Fprintf(out, "\n%s\n", resp.FollowUpQuestion)
		}
		if resp.SessionSummary != "" {
			fmt.Fprintf(out, "\n%s\n", resp.SessionSummary)
		}
		fmt.Fprintln(out)
	}

	if !started {
		return
	}
	sess, err := tracker.EndSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "haven: warning: could not persist session: %v\n", err)
	}
	if sess == nil {
		return
	}
	fmt.Fprintf(out, "\nsession %s: %d interactions, depth %d/5, engagement %d\n",
		sess.SessionID, sess.TotalInteractions, sess.MaxReflectionDepth, sess.EngagementScore)
	if cfg.Archive.Enabled {
		if path, err := archive.Write(*sess, cfg.ArchiveDir()); err == nil {
			fmt.Fprintf(out, "archived: %s\n", config.CompressHome(path))
		}
	}
}

// findSession looks up a finalized session by ID, first in history,
// then in the compressed archive.
func findSession(id string, tracker *analytics.Tracker, cfg config.Config) (analytics.Session, error) {
	for _, s := range tracker.History() {
		if s.SessionID == id {
			return s, nil
		}
	}
	if archive.IsArchived(id, cfg.ArchiveDir()) {
		return archive.Read(archive.Path(id, cfg.ArchiveDir()))
	}
	return analytics.Session{}, fmt.Errorf("session %s not found", id)
}

// mustTracker loads config and builds a history-backed tracker.
func mustTracker() (config.Config, *analytics.Tracker, func()) {
	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}

	closeStore := func() {}
	var st analytics.Store
	switch cfg.Storage.Backend {
	case "sqlite":
		if err := os.MkdirAll(cfg.StateDir(), 0o755); err != nil {
			fatal("create state dir: %v", err)
		}
		db, err := store.OpenSQLite(filepath.Join(cfg.StateDir(), "history.db"))
		if err != nil {
			fatal("open store: %v", err)
		}
		st = db
		closeStore = func() { db.Close() }
	default:
		st = store.NewJSONStore(cfg.StateDir())
	}

	return cfg, analytics.NewTracker(st), closeStore
}

func usage() {
	fmt.Fprintf(os.Stderr, `haven v%s — reflective journaling companion

Usage:
  haven analyze <text>          Analyze one message and print the response
  haven chat                    Interactive session on stdin
  haven process <file.jsonl>    Replay a transcript into session history
  haven watch <dir>             Watch a directory for new transcripts
  haven trends [--period p]     Mood trends (daily, weekly, monthly)
  haven report <session-id>     Render a markdown note for a session
  haven init                    Write a default config file
  haven version                 Print version
  haven help                    Show this help

Configuration: ~/.config/haven/config.toml
`, version)
}

func flagValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "haven: "+format+"\n", args...)
	os.Exit(1)
}
