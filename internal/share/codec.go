package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"

	"desthetik/internal/graph"
)

// FragmentMarker is the URL-fragment prefix ahead of an encoded envelope.
const FragmentMarker = "#share="

// maxDecodedBytes caps decompression so a hostile share link cannot balloon.
const maxDecodedBytes = 4 << 20

// Envelope is the serialized form of a graph plus the canvas viewport.
type Envelope struct {
	Nodes    []graph.Node   `json:"nodes"`
	Edges    []graph.Edge   `json:"edges"`
	Viewport graph.Viewport `json:"viewport"`
}

// Encode converts an envelope into a URL-fragment-safe string: deterministic
// JSON, raw DEFLATE, then unpadded base64url. On any internal failure it
// returns the empty sentinel rather than an error so callers can degrade
// gracefully; it never panics for a well-formed graph.
func Encode(env Envelope) string {
	if env.Nodes == nil {
		env.Nodes = []graph.Node{}
	}
	if env.Edges == nil {
		env.Edges = []graph.Edge{}
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return ""
	}
	if _, err := zw.Write(payload); err != nil {
		_ = zw.Close()
		return ""
	}
	if err := zw.Close(); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes())
}

// Decode reverses Encode for the fragment content after the marker. Every
// failure path (bad base64, truncated stream, bad JSON, wrong shape) returns
// (Envelope{}, false); it never returns an error and never panics, so a
// mangled share link falls back to the placeholder diagram instead of
// crashing the page.
func Decode(fragment string) (Envelope, bool) {
	fragment = strings.TrimSpace(strings.TrimPrefix(fragment, FragmentMarker))
	if fragment == "" {
		return Envelope{}, false
	}
	compressed, err := base64.RawURLEncoding.DecodeString(fragment)
	if err != nil {
		return Envelope{}, false
	}
	zr := flate.NewReader(bytes.NewReader(compressed))
	payload, err := io.ReadAll(io.LimitReader(zr, maxDecodedBytes))
	_ = zr.Close()
	if err != nil || len(payload) == 0 {
		return Envelope{}, false
	}

	// The decoded value must be an object with array-typed nodes and edges
	// before it is trusted as an envelope.
	var shape struct {
		Nodes json.RawMessage `json:"nodes"`
		Edges json.RawMessage `json:"edges"`
	}
	if err := json.Unmarshal(payload, &shape); err != nil {
		return Envelope{}, false
	}
	if !isArray(shape.Nodes) || !isArray(shape.Edges) {
		return Envelope{}, false
	}

	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Envelope{}, false
	}
	if env.Nodes == nil {
		env.Nodes = []graph.Node{}
	}
	if env.Edges == nil {
		env.Edges = []graph.Edge{}
	}
	return env, true
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
