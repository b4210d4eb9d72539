package graph

import (
	"strings"
	"testing"
	"time"
)

func twoNodeGraph() *Graph {
	return &Graph{
		Nodes: []Node{
			{ID: "1", Position: Position{X: 0, Y: 0}, Data: NodeData{Label: "Frontend"}},
			{ID: "2", Position: Position{X: 0, Y: 100}, Data: NodeData{Label: "Backend"}},
		},
		Edges: []Edge{
			{ID: "e1-2", Source: "1", Target: "2"},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := Validate(twoNodeGraph()); err != nil {
		t.Fatalf("valid graph rejected: %v", err)
	}
}

func TestValidate_EmptyGraph(t *testing.T) {
	if err := Validate(&Graph{}); err != nil {
		t.Fatalf("empty graph should be valid: %v", err)
	}
}

func TestValidate_DuplicateNodeID(t *testing.T) {
	g := twoNodeGraph()
	g.Nodes = append(g.Nodes, Node{ID: "1", Data: NodeData{Label: "dup"}})
	err := Validate(g)
	if err == nil || !strings.Contains(err.Error(), "duplicate node id") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestValidate_DanglingEdge(t *testing.T) {
	g := twoNodeGraph()
	g.Edges = append(g.Edges, Edge{ID: "e2-3", Source: "2", Target: "3"})
	err := Validate(g)
	if err == nil || !strings.Contains(err.Error(), "unknown target") {
		t.Fatalf("expected dangling edge error, got %v", err)
	}
}

func TestValidate_PaddedEndpointsResolve(t *testing.T) {
	g := &Graph{
		Nodes: []Node{
			{ID: "api ", Data: NodeData{Label: "API"}},
			{ID: "db", Data: NodeData{Label: "DB"}},
		},
		Edges: []Edge{
			{ID: "e-api-db", Source: "api ", Target: " db"},
		},
	}
	if err := Validate(g); err != nil {
		t.Fatalf("padded ids and endpoints must resolve alike: %v", err)
	}
}

func TestValidate_EmptyNodeID(t *testing.T) {
	g := &Graph{Nodes: []Node{{ID: "  "}}}
	if err := Validate(g); err == nil {
		t.Fatal("expected empty node id error")
	}
}

func TestPlaceholder_IsValid(t *testing.T) {
	if err := Validate(Placeholder()); err != nil {
		t.Fatalf("placeholder graph must validate: %v", err)
	}
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2025, 3, 9, 14, 5, 9, 0, time.UTC)
	got := ExportFileName(now)
	if got != "design_20250309_140509.json" {
		t.Fatalf("unexpected export name %q", got)
	}
}
