package run

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"desthetik/internal/form"
	"desthetik/internal/graph"
	"desthetik/internal/llm"
	"desthetik/internal/pipeline"
	"desthetik/internal/store/design"
)

func newTestRunner(t *testing.T, client llm.Client) (*Runner, *form.Store, *design.Store) {
	t.Helper()
	dir := t.TempDir()
	sessions := form.NewStore(filepath.Join(dir, "sessions.json"))
	designs := design.New(filepath.Join(dir, "designs.json"))
	trace := NewTraceLogger(filepath.Join(dir, "run_logs"))
	return NewRunner(sessions, designs, pipeline.New(client), nil, trace), sessions, designs
}

func fillSession(t *testing.T, sessions *form.Store, id string) {
	t.Helper()
	long := func(n int) string { return strings.Repeat("x", n) }
	values := map[string]string{
		"product_intent": "A mobile app for freelancers to track billable time",
		"core_problem":   long(120),
		"solution_idea":  long(150),
		"ideal_user":     long(40),
		"platform":       "Web App",
		"inspirations":   long(110),
		"data_storage":   "Not Sure",
	}
	for name, value := range values {
		if _, err := sessions.SetField(id, name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
}

func drain(t *testing.T, ch chan Event) []Event {
	t.Helper()
	var events []Event
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-deadline:
			t.Fatal("timed out waiting for run events")
		}
	}
}

func TestRunner_StartAndComplete(t *testing.T) {
	r, sessions, designs := newTestRunner(t, llm.NewFakeClient())
	sess := sessions.Create()
	fillSession(t, sessions, sess.ID)

	runID, err := r.Start(sess.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	ch, ok := r.Events().Get(runID)
	if !ok {
		t.Fatal("run channel not registered")
	}
	events := drain(t, ch)
	last := events[len(events)-1]
	if last.Type != EventComplete {
		t.Fatalf("expected complete event, got %+v", last)
	}
	if last.Graph == nil || len(last.Graph.Nodes) == 0 {
		t.Fatal("complete event carries no graph")
	}

	after, _ := sessions.Get(sess.ID)
	if after.Busy {
		t.Fatal("busy flag not cleared after completion")
	}
	if after.Graph == nil || len(after.Graph.Nodes) == 0 {
		t.Fatal("session graph was not replaced")
	}
	if got := designs.BySession(sess.ID); len(got) != 1 {
		t.Fatalf("expected one saved design, got %d", len(got))
	}
}

func TestRunner_ValidationRejectsBeforeRun(t *testing.T) {
	fake := llm.NewFakeClient()
	fake.TextErr = errors.New("must never be called")
	r, sessions, _ := newTestRunner(t, fake)
	sess := sessions.Create()
	fillSession(t, sessions, sess.ID)
	if _, err := sessions.SetField(sess.ID, "core_problem", "too short"); err != nil {
		t.Fatalf("set field: %v", err)
	}

	_, err := r.Start(sess.ID)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	after, _ := sessions.Get(sess.ID)
	if after.Busy {
		t.Fatal("rejected start must not leave the session busy")
	}
}

func TestRunner_FailureKeepsPreviousGraph(t *testing.T) {
	fake := llm.NewFakeClient()
	fake.JSONErr = errors.New("504 gateway timeout")
	r, sessions, designs := newTestRunner(t, fake)
	sess := sessions.Create()
	fillSession(t, sessions, sess.ID)

	previous := graph.Placeholder()
	if _, err := sessions.ReplaceGraph(sess.ID, previous, graph.Viewport{Zoom: 1}); err != nil {
		t.Fatalf("seed graph: %v", err)
	}

	runID, err := r.Start(sess.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	ch, _ := r.Events().Get(runID)
	events := drain(t, ch)
	last := events[len(events)-1]
	if last.Type != EventError || last.Kind != string(pipeline.KindTransport) {
		t.Fatalf("expected transport error event, got %+v", last)
	}

	after, _ := sessions.Get(sess.ID)
	if after.Busy {
		t.Fatal("busy flag not cleared after failure")
	}
	if len(after.Graph.Nodes) != len(previous.Nodes) {
		t.Fatal("failed run must not touch the previous graph")
	}
	if got := designs.BySession(sess.ID); len(got) != 0 {
		t.Fatalf("failed run must not save a design, got %d", len(got))
	}
}

func TestRunner_PermanentFailureMarkedOnErrorEvent(t *testing.T) {
	fake := llm.NewFakeClient()
	fake.JSONErr = llm.NewPermanentError(errors.New("context_length_exceeded"))
	r, sessions, _ := newTestRunner(t, fake)
	sess := sessions.Create()
	fillSession(t, sessions, sess.ID)

	runID, err := r.Start(sess.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	ch, _ := r.Events().Get(runID)
	events := drain(t, ch)
	last := events[len(events)-1]
	if last.Type != EventError {
		t.Fatalf("expected error event, got %+v", last)
	}
	if !last.Permanent {
		t.Fatal("permanent failure not marked on the error event")
	}
}

func TestRunner_BusySessionRejectsSecondStart(t *testing.T) {
	r, sessions, _ := newTestRunner(t, llm.NewFakeClient())
	sess := sessions.Create()
	fillSession(t, sessions, sess.ID)
	if _, err := sessions.SetBusy(sess.ID, true); err != nil {
		t.Fatalf("set busy: %v", err)
	}
	if _, err := r.Start(sess.ID); err == nil {
		t.Fatal("expected busy session to reject a second start")
	}
}

func TestTraceLogger_AppendRead(t *testing.T) {
	l := NewTraceLogger(filepath.Join(t.TempDir(), "logs"))
	l.Append(TraceEvent{RunID: "run-1", Source: SourceRunner, Stage: "start", Fields: map[string]any{"session_id": "s-1"}})
	l.Append(TraceEvent{RunID: "run-1", Source: SourcePipeline, Stage: "detailed_design"})
	l.Append(TraceEvent{RunID: "run-1", Source: SourceRunner, Stage: "error", Kind: "transport"})
	l.Append(TraceEvent{RunID: "run-2", Source: SourceRunner, Stage: "start"})

	events, err := l.Read("run-1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Stage != "start" || events[1].Stage != "detailed_design" {
		t.Fatalf("unexpected stages: %+v", events)
	}
	if events[0].Fields["session_id"] != "s-1" {
		t.Fatalf("fields lost: %+v", events[0].Fields)
	}
	if events[2].Kind != "transport" {
		t.Fatalf("error kind lost: %+v", events[2])
	}
}

func TestTraceLogger_SanitizesRunID(t *testing.T) {
	l := NewTraceLogger(filepath.Join(t.TempDir(), "logs"))
	l.Append(TraceEvent{RunID: "../../etc/passwd", Source: SourceRunner, Stage: "start"})
	events, err := l.Read("../../etc/passwd")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected the event under the sanitized id, got %d", len(events))
	}
}

func TestEventBroker_AllocateGet(t *testing.T) {
	b := NewEventBroker()
	ch := b.Allocate("run-1", 4)
	got, ok := b.Get("run-1")
	if !ok || got != ch {
		t.Fatal("allocated channel not retrievable")
	}
	if _, ok := b.Get("missing"); ok {
		t.Fatal("unknown run must not resolve")
	}
}
