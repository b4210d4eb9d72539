package design

import (
	"time"

	"desthetik/internal/graph"
)

// Design is one successful generation kept for history: the prose the model
// wrote in stage one and the graph extracted from stage two.
type Design struct {
	ID             string       `json:"id"`
	SessionID      string       `json:"session_id"`
	CreatedAt      time.Time    `json:"created_at"`
	DetailedDesign string       `json:"detailed_design"`
	Graph          *graph.Graph `json:"graph"`
}
