package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"desthetik/internal/form"
	"desthetik/internal/llm"
)

func submittableAnswers() form.Answers {
	long := func(n int) string { return strings.Repeat("x", n) }
	return form.Answers{
		ProductIntent: "A mobile app for freelancers to track billable time across projects",
		CoreProblem:   long(120),
		SolutionIdea:  long(150),
		IdealUser:     long(40),
		Platform:      "Mobile App",
		Inspirations:  long(110),
		DataStorage:   "Yes",
	}
}

func TestGenerate_EndToEndWithFake(t *testing.T) {
	p := New(llm.NewFakeClient())
	answers := submittableAnswers()

	var stages []string
	res, err := p.Generate(context.Background(), &answers, func(stage, _ string) {
		stages = append(stages, stage)
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.DetailedDesign == "" {
		t.Fatal("detailed design prose is empty")
	}
	if len(res.Graph.Nodes) == 0 {
		t.Fatal("graph has no nodes")
	}
	for _, e := range res.Graph.Edges {
		found := false
		for _, n := range res.Graph.Nodes {
			if n.ID == e.Source || n.ID == e.Target {
				found = true
			}
		}
		if !found {
			t.Fatalf("edge %s does not touch any node", e.ID)
		}
	}

	joined := strings.Join(stages, ",")
	for _, want := range []string{StageDetailedDesign, StageGraphStructure, StageExtract} {
		if !strings.Contains(joined, want) {
			t.Fatalf("stage %s never reported (got %s)", want, joined)
		}
	}
}

func TestGenerate_RejectsUnsubmittableAnswers(t *testing.T) {
	fake := llm.NewFakeClient()
	fake.TextErr = errors.New("must never be called")
	p := New(fake)

	answers := submittableAnswers()
	answers.CoreProblem = "too short"
	_, err := p.Generate(context.Background(), &answers, nil)
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if strings.Contains(err.Error(), "must never be called") {
		t.Fatal("pipeline called the model despite failing validation")
	}
}

func TestGenerate_TransportFailureStepA(t *testing.T) {
	fake := llm.NewFakeClient()
	fake.TextErr = errors.New("connection refused")
	p := New(fake)

	answers := submittableAnswers()
	_, err := p.Generate(context.Background(), &answers, nil)
	if KindOf(err) != KindTransport {
		t.Fatalf("expected transport error, got %v", err)
	}
	var pe *Error
	if !errors.As(err, &pe) || pe.Stage != StageDetailedDesign {
		t.Fatalf("expected stage %s, got %+v", StageDetailedDesign, pe)
	}
}

func TestGenerate_TransportFailureStepB(t *testing.T) {
	fake := llm.NewFakeClient()
	fake.JSONErr = errors.New("504 gateway timeout")
	p := New(fake)

	answers := submittableAnswers()
	_, err := p.Generate(context.Background(), &answers, nil)
	if KindOf(err) != KindTransport {
		t.Fatalf("expected transport error, got %v", err)
	}
	var pe *Error
	if !errors.As(err, &pe) || pe.Stage != StageGraphStructure {
		t.Fatalf("expected stage %s, got %+v", StageGraphStructure, pe)
	}
}

func TestGenerate_ExtractionFailureIsDistinct(t *testing.T) {
	fake := llm.NewFakeClient()
	fake.JSONReply = "I am sorry, I cannot produce a diagram for this request."
	p := New(fake)

	answers := submittableAnswers()
	_, err := p.Generate(context.Background(), &answers, nil)
	if KindOf(err) != KindExtraction {
		t.Fatalf("expected extraction error, got %v", err)
	}
}

func TestGenerate_DanglingEdgeRejected(t *testing.T) {
	fake := llm.NewFakeClient()
	fake.JSONReply = `{"nodes": [{"id": "1", "position": {"x": 0, "y": 0}, "data": {"label": "A"}}],
		"edges": [{"id": "e1-2", "source": "1", "target": "2"}]}`
	p := New(fake)

	answers := submittableAnswers()
	_, err := p.Generate(context.Background(), &answers, nil)
	if KindOf(err) != KindInvalidGraph {
		t.Fatalf("expected invalid graph error, got %v", err)
	}
}

func TestGenerate_EmptyNodeListRejected(t *testing.T) {
	fake := llm.NewFakeClient()
	fake.JSONReply = `{"nodes": [], "edges": []}`
	p := New(fake)

	answers := submittableAnswers()
	_, err := p.Generate(context.Background(), &answers, nil)
	if KindOf(err) != KindInvalidGraph {
		t.Fatalf("expected invalid graph error, got %v", err)
	}
}
