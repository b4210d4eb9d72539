package graph

import (
	"fmt"
	"time"
)

// Placeholder returns the default graph shown before any generation has run
// and used as the fallback when a share link fails to decode.
func Placeholder() *Graph {
	return &Graph{
		Nodes: []Node{
			{ID: "frontend", Position: Position{X: 0, Y: 0}, Data: NodeData{Label: "Frontend (React)"}},
			{ID: "backend", Position: Position{X: 200, Y: 0}, Data: NodeData{Label: "Backend (API)"}},
			{ID: "database", Position: Position{X: 400, Y: 0}, Data: NodeData{Label: "Database"}},
			{ID: "ai", Position: Position{X: 200, Y: 100}, Data: NodeData{Label: "AI Service (LLM)"}},
		},
		Edges: []Edge{
			{ID: "frontend-backend", Source: "frontend", Target: "backend"},
			{ID: "backend-database", Source: "backend", Target: "database"},
			{ID: "backend-ai", Source: "backend", Target: "ai"},
		},
	}
}

// ExportFileName returns the download name for an exported design.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("design_%s.json", now.Format("20060102_150405"))
}
