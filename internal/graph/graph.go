package graph

import (
	"fmt"
	"strings"
)

// EdgeType selects the rendering style used by the canvas.
type EdgeType string

const (
	EdgeTypeDefault    EdgeType = "default"
	EdgeTypeStep       EdgeType = "step"
	EdgeTypeSmoothstep EdgeType = "smoothstep"
	EdgeTypeStraight   EdgeType = "straight"
	EdgeTypeSine       EdgeType = "sine"
)

// Position is a 2-D canvas coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData carries the label and optional category color of a node.
type NodeData struct {
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// Node is one component box on the canvas.
type Node struct {
	ID       string   `json:"id"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

// Edge connects two nodes by id.
type Edge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   EdgeType `json:"type,omitempty"`
	Label  string   `json:"label,omitempty"`
}

// Graph is the nodes+edges structure handed to the rendering surface.
// It is always replaced wholesale; nothing mutates it in place.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Viewport is the canvas pan/zoom state carried alongside a shared graph.
type Viewport struct {
	Zoom float64 `json:"zoom"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Validate rejects graphs with duplicate node ids or edges whose source or
// target does not resolve to a node in the same graph. Node and edge counts
// are not constrained here.
func Validate(g *Graph) error {
	if g == nil {
		return fmt.Errorf("graph is nil")
	}
	ids := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		id := strings.TrimSpace(n.ID)
		if id == "" {
			return fmt.Errorf("node with empty id")
		}
		if _, dup := ids[id]; dup {
			return fmt.Errorf("duplicate node id %q", id)
		}
		ids[id] = struct{}{}
	}
	for _, e := range g.Edges {
		if strings.TrimSpace(e.ID) == "" {
			return fmt.Errorf("edge with empty id")
		}
		// Endpoints are trimmed the same way node ids are.
		if _, ok := ids[strings.TrimSpace(e.Source)]; !ok {
			return fmt.Errorf("edge %q references unknown source %q", e.ID, e.Source)
		}
		if _, ok := ids[strings.TrimSpace(e.Target)]; !ok {
			return fmt.Errorf("edge %q references unknown target %q", e.ID, e.Target)
		}
	}
	return nil
}

// Clone returns a deep copy so a stored graph cannot be mutated through a
// previously returned reference.
func Clone(g *Graph) *Graph {
	if g == nil {
		return nil
	}
	out := &Graph{
		Nodes: append([]Node(nil), g.Nodes...),
		Edges: append([]Edge(nil), g.Edges...),
	}
	return out
}
