package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"desthetik/internal/form"
	"desthetik/internal/graph"
	"desthetik/internal/jsonutil"
	"desthetik/internal/llm"
	"desthetik/internal/prompt"
)

// Stage names reported to observers and trace logs.
const (
	StageDetailedDesign = "detailed_design"
	StageGraphStructure = "graph_structure"
	StageExtract        = "extract"
)

// Kind classifies a pipeline failure so the UI can word it correctly:
// a connectivity problem, a model-output problem, or a model that produced a
// structurally broken graph.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindTransport    Kind = "transport"
	KindExtraction   Kind = "extraction"
	KindInvalidGraph Kind = "invalid_graph"
)

// Error is a classified pipeline failure.
type Error struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pipeline %s (%s): %v", e.Stage, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the failure class, defaulting to transport for errors that
// did not come from the pipeline itself.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindTransport
}

// Observer receives stage progress while a generation runs. Implementations
// must not block; the pipeline calls them inline.
type Observer func(stage, message string)

// Pipeline turns validated form answers into a diagram graph through two
// strictly sequential model calls: prose first, then the graph re-expression
// of that prose. Step B cannot start before Step A's reply is in hand because
// its prompt embeds the prose.
type Pipeline struct {
	LLM       llm.Client
	ProseTemp float32
	GraphTemp float32
}

// New uses the temperatures the original product ships with: coherent prose
// for the design stage, near-deterministic output for the graph stage.
func New(client llm.Client) *Pipeline {
	return &Pipeline{LLM: client, ProseTemp: 0.7, GraphTemp: 0.3}
}

// Result is one successful generation.
type Result struct {
	DetailedDesign string       `json:"detailed_design"`
	Graph          *graph.Graph `json:"graph"`
}

// Generate runs the full pipeline. The answers gate is re-checked here: it is
// the authoritative guard, and on violation the model is never called. No
// step retries automatically, and a failure leaves the caller's previous
// graph untouched because nothing is written until the Result returns.
func (p *Pipeline) Generate(ctx context.Context, answers *form.Answers, notify Observer) (*Result, error) {
	if notify == nil {
		notify = func(string, string) {}
	}
	if violations := form.Violations(answers); len(violations) > 0 {
		return nil, &Error{
			Kind:  KindValidation,
			Stage: StageDetailedDesign,
			Err:   fmt.Errorf("answers are not submittable: %s", strings.Join(violations, "; ")),
		}
	}

	// Step A: detailed design prose.
	notify(StageDetailedDesign, "generating detailed system design")
	detailedPrompt, err := prompt.RenderStrict(prompt.DetailedDesign, answers.Values())
	if err != nil {
		return nil, &Error{Kind: KindValidation, Stage: StageDetailedDesign, Err: err}
	}
	prose, err := p.LLM.GenerateText(ctx, detailedPrompt, p.ProseTemp)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Stage: StageDetailedDesign, Err: err}
	}
	if strings.TrimSpace(prose) == "" {
		return nil, &Error{Kind: KindTransport, Stage: StageDetailedDesign, Err: llm.ErrEmptyReply}
	}
	log.Printf("pipeline: detailed design ready (%d bytes)", len(prose))
	notify(StageDetailedDesign, "detailed design ready")

	// Step B: graph re-expression of the prose.
	notify(StageGraphStructure, "converting design into a graph")
	graphPrompt, err := prompt.RenderStrict(prompt.GraphStructure, map[string]string{
		"detailed_design": prose,
		"product_intent":  answers.ProductIntent,
	})
	if err != nil {
		return nil, &Error{Kind: KindValidation, Stage: StageGraphStructure, Err: err}
	}
	reply, err := p.LLM.GenerateJSON(ctx, graphPrompt, p.GraphTemp)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Stage: StageGraphStructure, Err: err}
	}
	notify(StageGraphStructure, "graph reply received")

	// Step C: tolerant extraction, then structural validation.
	notify(StageExtract, "extracting graph structure")
	var g graph.Graph
	if err := jsonutil.Unmarshal(reply, &g); err != nil {
		return nil, &Error{Kind: KindExtraction, Stage: StageExtract, Err: err}
	}
	if err := graph.Validate(&g); err != nil {
		return nil, &Error{Kind: KindInvalidGraph, Stage: StageExtract, Err: err}
	}
	if len(g.Nodes) == 0 {
		return nil, &Error{Kind: KindInvalidGraph, Stage: StageExtract, Err: fmt.Errorf("model returned a graph with no nodes")}
	}
	log.Printf("pipeline: extracted graph with %d nodes, %d edges", len(g.Nodes), len(g.Edges))

	return &Result{DetailedDesign: prose, Graph: &g}, nil
}
