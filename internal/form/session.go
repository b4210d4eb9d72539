package form

import (
	"time"

	"desthetik/internal/graph"
)

// Session is one founder's form state plus the graph currently on their
// canvas. The graph slot has one writer at a time and is only ever replaced
// wholesale (generation, import, or share-decode).
type Session struct {
	ID        string         `json:"id"`
	Answers   Answers        `json:"answers"`
	Active    int            `json:"active"`
	Busy      bool           `json:"busy"`
	Graph     *graph.Graph   `json:"graph,omitempty"`
	Viewport  graph.Viewport `json:"viewport"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CurrentField returns the definition of the active question.
func (s *Session) CurrentField() FieldSpec {
	idx := s.Active
	if idx < 0 {
		idx = 0
	}
	if idx >= FieldCount {
		idx = FieldCount - 1
	}
	return Fields[idx]
}

// CurrentValid reports whether the active question's answer passes its check.
func (s *Session) CurrentValid() bool {
	spec := s.CurrentField()
	return CheckField(spec, s.Answers.Get(spec.Name)) == nil
}

// Next advances to the following question. The UI disables the control on
// invalid input, but this guard is the authoritative one: on an invalid
// active field, or at the last question, Next is a no-op.
func (s *Session) Next() bool {
	if s.Active >= FieldCount-1 {
		return false
	}
	if !s.CurrentValid() {
		return false
	}
	s.Active++
	return true
}

// Previous steps back one question. Retreating is always permitted so an
// earlier answer can be fixed.
func (s *Session) Previous() bool {
	if s.Active <= 0 {
		return false
	}
	s.Active--
	return true
}

// Submittable reports whether every one of the seven answers passes
// independently. This is the gate checked immediately before generation.
func (s *Session) Submittable() bool {
	return Submittable(&s.Answers)
}
