package run

import (
	"strings"
	"sync"
	"time"

	"desthetik/internal/graph"
)

const completedRunRetention = 30 * time.Second

// Event types published over a run's channel.
const (
	EventStage    = "stage"
	EventComplete = "complete"
	EventError    = "error"
)

// Event is one progress update of a generation run. On error events Kind
// classifies the failure and Permanent marks ones retrying will not fix.
type Event struct {
	Type           string       `json:"type"`
	RunID          string       `json:"run_id"`
	Stage          string       `json:"stage,omitempty"`
	Message        string       `json:"message,omitempty"`
	Kind           string       `json:"kind,omitempty"`
	Permanent      bool         `json:"permanent,omitempty"`
	DesignID       string       `json:"design_id,omitempty"`
	DetailedDesign string       `json:"detailed_design,omitempty"`
	Graph          *graph.Graph `json:"graph,omitempty"`
}

// EventBroker manages per-run event channels.
type EventBroker struct {
	mu     sync.RWMutex
	events map[string]chan Event
}

func NewEventBroker() *EventBroker {
	return &EventBroker{events: make(map[string]chan Event)}
}

// Allocate creates and registers a new event channel for a run.
func (b *EventBroker) Allocate(runID string, size int) chan Event {
	if size <= 0 {
		size = 1
	}
	ch := make(chan Event, size)
	b.mu.Lock()
	b.events[strings.TrimSpace(runID)] = ch
	b.mu.Unlock()
	return ch
}

// Get returns the event channel for a run.
func (b *EventBroker) Get(runID string) (chan Event, bool) {
	b.mu.RLock()
	ch, ok := b.events[strings.TrimSpace(runID)]
	b.mu.RUnlock()
	return ch, ok
}

// ScheduleCleanup removes a run's event channel after a retention period.
func (b *EventBroker) ScheduleCleanup(runID string) {
	time.AfterFunc(completedRunRetention, func() {
		b.mu.Lock()
		delete(b.events, strings.TrimSpace(runID))
		b.mu.Unlock()
	})
}
