package run

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"desthetik/internal/form"
	"desthetik/internal/graph"
	"desthetik/internal/jsonutil"
	"desthetik/internal/llm"
	"desthetik/internal/pipeline"
	"desthetik/internal/store/artifact"
	"desthetik/internal/store/design"
)

const runTimeout = 5 * time.Minute

// ValidationError rejects a start request before any model call happens.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "answers are not submittable: " + strings.Join(e.Violations, "; ")
}

// Runner owns generation runs: it gates them on form state, executes the
// pipeline in the background, and publishes progress through the broker.
type Runner struct {
	sessions  *form.Store
	designs   *design.Store
	pipe      *pipeline.Pipeline
	artifacts *artifact.S3Store
	events    *EventBroker
	trace     *TraceLogger
}

func NewRunner(sessions *form.Store, designs *design.Store, pipe *pipeline.Pipeline, artifacts *artifact.S3Store, trace *TraceLogger) *Runner {
	return &Runner{
		sessions:  sessions,
		designs:   designs,
		pipe:      pipe,
		artifacts: artifacts,
		events:    NewEventBroker(),
		trace:     trace,
	}
}

// Events returns the broker (needed for wiring the watch endpoints).
func (r *Runner) Events() *EventBroker { return r.events }

// Trace returns the trace logger (needed for the debug endpoints).
func (r *Runner) Trace() *TraceLogger { return r.trace }

// Start validates the session, marks it busy and launches the pipeline in
// the background. The returned run id can immediately be watched. A failed
// run never touches the session's previous graph.
func (r *Runner) Start(sessionID string) (string, error) {
	sess, ok := r.sessions.Get(sessionID)
	if !ok {
		return "", fmt.Errorf("session %s not found", sessionID)
	}
	if violations := form.Violations(&sess.Answers); len(violations) > 0 {
		return "", &ValidationError{Violations: violations}
	}
	if _, err := r.sessions.SetBusy(sessionID, true); err != nil {
		return "", err
	}

	runID := uuid.NewString()
	eventCh := r.events.Allocate(runID, 128)
	answers := sess.Answers

	go func() {
		defer func() {
			if _, err := r.sessions.SetBusy(sessionID, false); err != nil {
				log.Printf("run %s: clear busy: %v", runID, err)
			}
			close(eventCh)
			r.events.ScheduleCleanup(runID)
		}()
		r.execute(runID, sessionID, &answers, eventCh)
	}()

	return runID, nil
}

func (r *Runner) execute(runID, sessionID string, answers *form.Answers, eventCh chan Event) {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	r.trace.Append(TraceEvent{
		RunID:  runID,
		Source: SourceRunner,
		Stage:  "start",
		Fields: map[string]any{"session_id": sessionID},
	})

	notify := func(stage, message string) {
		r.trace.Append(TraceEvent{
			RunID:  runID,
			Source: SourcePipeline,
			Stage:  stage,
			Fields: map[string]any{"message": message},
		})
		publish(eventCh, Event{Type: EventStage, RunID: runID, Stage: stage, Message: message})
	}

	result, err := r.pipe.Generate(ctx, answers, notify)
	if err != nil {
		kind := string(pipeline.KindOf(err))
		var perm *llm.PermanentError
		permanent := errors.As(err, &perm)
		log.Printf("run %s failed (%s, permanent=%t): %v", runID, kind, permanent, err)
		r.trace.Append(TraceEvent{
			RunID:  runID,
			Source: SourceRunner,
			Stage:  "error",
			Kind:   kind,
			Fields: map[string]any{"error": err.Error(), "permanent": permanent},
		})
		publish(eventCh, Event{
			Type:      EventError,
			RunID:     runID,
			Kind:      kind,
			Message:   err.Error(),
			Permanent: permanent,
		})
		return
	}

	d := design.Design{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		CreatedAt:      time.Now().UTC(),
		DetailedDesign: result.DetailedDesign,
		Graph:          result.Graph,
	}
	if err := r.designs.Put(d); err != nil {
		log.Printf("run %s: save design: %v", runID, err)
	}
	if _, err := r.sessions.ReplaceGraph(sessionID, result.Graph, graph.Viewport{Zoom: 1}); err != nil {
		log.Printf("run %s: replace graph: %v", runID, err)
	}
	r.archive(ctx, runID, result)

	r.trace.Append(TraceEvent{
		RunID:  runID,
		Source: SourceRunner,
		Stage:  "complete",
		Fields: map[string]any{"design_id": d.ID},
	})
	publish(eventCh, Event{
		Type:           EventComplete,
		RunID:          runID,
		DesignID:       d.ID,
		DetailedDesign: result.DetailedDesign,
		Graph:          result.Graph,
	})
}

// archive stores the run's artifacts when object storage is configured.
func (r *Runner) archive(ctx context.Context, runID string, result *pipeline.Result) {
	if r.artifacts == nil {
		return
	}
	if err := r.artifacts.Put(ctx, runID, "detailed_design.md", "text/markdown", []byte(result.DetailedDesign)); err != nil {
		log.Printf("run %s: archive prose: %v", runID, err)
	}
	raw, err := jsonutil.MarshalIndentNoEscape(result.Graph, "", "  ")
	if err != nil {
		log.Printf("run %s: marshal graph: %v", runID, err)
		return
	}
	if err := r.artifacts.Put(ctx, runID, "graph.json", "application/json", raw); err != nil {
		log.Printf("run %s: archive graph: %v", runID, err)
	}
}

func publish(ch chan Event, ev Event) {
	select {
	case ch <- ev:
	default:
		// watcher fell behind; drop rather than stall the pipeline
	}
}
