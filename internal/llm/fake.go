package llm

import "context"

// FakeClient returns deterministic replies for offline runs and tests.
// When the scripted fields are unset it produces a minimal prose reply and a
// small fence-wrapped graph, which also exercises the tolerant extractor the
// way real model output does.
type FakeClient struct {
	TextReply string
	JSONReply string
	TextErr   error
	JSONErr   error
}

func NewFakeClient() *FakeClient { return &FakeClient{} }

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) GenerateText(_ context.Context, prompt string, _ float32) (string, error) {
	if f.TextErr != nil {
		return "", f.TextErr
	}
	if f.TextReply != "" {
		return f.TextReply, nil
	}
	return "The system consists of a web frontend, an API backend and a database. " +
		"The frontend collects user input and sends it to the backend, which stores " +
		"results in the database.", nil
}

func (f *FakeClient) GenerateJSON(_ context.Context, prompt string, _ float32) (string, error) {
	if f.JSONErr != nil {
		return "", f.JSONErr
	}
	if f.JSONReply != "" {
		return f.JSONReply, nil
	}
	return "```json\n" + `{
  "nodes": [
    {"id": "frontend", "position": {"x": 100, "y": 100}, "data": {"label": "Web Frontend", "color": "#3B82F6"}},
    {"id": "backend", "position": {"x": 700, "y": 100}, "data": {"label": "API Backend", "color": "#10B981"}},
    {"id": "database", "position": {"x": 1300, "y": 100}, "data": {"label": "Database", "color": "#8B5CF6"}}
  ],
  "edges": [
    {"id": "e-frontend-backend", "source": "frontend", "target": "backend", "type": "straight", "label": "API Calls"},
    {"id": "e-backend-database", "source": "backend", "target": "database", "type": "sine", "label": "Data Processing"}
  ]
}` + "\n```", nil
}
