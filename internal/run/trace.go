package run

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Trace sources: which half of a run emitted the event.
const (
	SourceRunner   = "runner"
	SourcePipeline = "pipeline"
	SourceFrontend = "frontend"
)

// TraceEvent is one line of a run's trace. Stage carries the pipeline stage
// names; Kind is set on failures and matches the run error event's kind.
type TraceEvent struct {
	Timestamp string         `json:"timestamp"`
	RunID     string         `json:"run_id"`
	Source    string         `json:"source"`
	Stage     string         `json:"stage"`
	Kind      string         `json:"kind,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// TraceLogger persists one JSONL file per run so a whole generation, backend
// and frontend halves together, can be replayed after the fact.
type TraceLogger struct {
	dir string
	mu  sync.Mutex
}

// NewTraceLogger creates a logger rooted at dir (tmp/run_logs when empty).
func NewTraceLogger(dir string) *TraceLogger {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		trimmed = filepath.Join("tmp", "run_logs")
	}
	_ = os.MkdirAll(trimmed, 0o755)
	return &TraceLogger{dir: trimmed}
}

// traceFileID maps a run id onto a safe file name. Anything outside the
// id alphabet becomes an underscore so a crafted id cannot escape dir.
func traceFileID(runID string) string {
	id := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '_' || r == '-':
			return r
		}
		return '_'
	}, strings.TrimSpace(runID))
	if id == "" {
		return "unknown"
	}
	return id
}

func (l *TraceLogger) filePath(runID string) string {
	return filepath.Join(l.dir, traceFileID(runID)+".jsonl")
}

// Append stamps and writes one trace line for the run. Events without a run
// id are dropped; trace writes never fail a run.
func (l *TraceLogger) Append(ev TraceEvent) {
	if l == nil || strings.TrimSpace(ev.RunID) == "" {
		return
	}
	ev.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	ev.RunID = strings.TrimSpace(ev.RunID)
	ev.Source = strings.TrimSpace(ev.Source)
	ev.Stage = strings.TrimSpace(ev.Stage)
	line, err := json.Marshal(ev)
	if err != nil {
		return
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = os.MkdirAll(l.dir, 0o755)
	f, err := os.OpenFile(l.filePath(ev.RunID), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(line)
}

// Read returns every trace event recorded for a run, oldest first. A run
// with no trace file yields an empty slice. Unparseable lines are skipped.
func (l *TraceLogger) Read(runID string) ([]TraceEvent, error) {
	if l == nil {
		return nil, nil
	}
	data, err := os.ReadFile(l.filePath(runID))
	if err != nil {
		if os.IsNotExist(err) {
			return []TraceEvent{}, nil
		}
		return nil, fmt.Errorf("read trace file: %w", err)
	}

	lines := bytes.Split(data, []byte("\n"))
	out := make([]TraceEvent, 0, len(lines))
	for _, line := range lines {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var ev TraceEvent
		if err := json.Unmarshal(line, &ev); err != nil {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}
