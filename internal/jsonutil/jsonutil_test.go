package jsonutil

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func mustObject(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("extracted value is not an object: %v", err)
	}
	return m
}

func TestExtractObject_PlainJSON(t *testing.T) {
	raw, err := ExtractObject(`{"nodes": [], "edges": []}`)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	m := mustObject(t, raw)
	if _, ok := m["nodes"]; !ok {
		t.Fatal("nodes key missing")
	}
}

func TestExtractObject_FencedWithProse(t *testing.T) {
	text := "Here is the graph you asked for:\n```json\n{\"a\": 1}\n```\nLet me know if you need changes."
	raw, err := ExtractObject(text)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	m := mustObject(t, raw)
	if m["a"] != float64(1) {
		t.Fatalf("got %v", m)
	}
}

func TestExtractObject_UntaggedFence(t *testing.T) {
	text := "```\n{\"a\": true}\n```"
	raw, err := ExtractObject(text)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if mustObject(t, raw)["a"] != true {
		t.Fatal("wrong value")
	}
}

func TestExtractObject_BraceSpanInsideProse(t *testing.T) {
	text := `Sure! The result is {"nodes": [{"id": "1"}], "edges": []} as requested.`
	raw, err := ExtractObject(text)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	m := mustObject(t, raw)
	if _, ok := m["edges"]; !ok {
		t.Fatal("edges key missing")
	}
}

func TestExtractObject_TrailingComma(t *testing.T) {
	raw, err := ExtractObject(`{"a": 1, "b": [1, 2,],}`)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := map[string]any{"a": float64(1), "b": []any{float64(1), float64(2)}}
	if got := mustObject(t, raw); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestExtractObject_SmartQuotesAndBareKeys(t *testing.T) {
	raw, err := ExtractObject("{nodes: [], label: “hello”}")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	m := mustObject(t, raw)
	if m["label"] != "hello" {
		t.Fatalf("got %v", m)
	}
}

func TestExtractObject_NewlineInsideString(t *testing.T) {
	raw, err := ExtractObject("{\"label\": \"line one\nline two\"}")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if mustObject(t, raw)["label"] != "line one line two" {
		t.Fatal("newline not collapsed")
	}
}

func TestExtractObject_NonJSON(t *testing.T) {
	_, err := ExtractObject("I could not produce a diagram this time, sorry.")
	var ee *ExtractError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExtractError, got %v", err)
	}
	if ee.Raw == "" {
		t.Fatal("extract error must carry the original text")
	}
}

func TestExtractObject_Deterministic(t *testing.T) {
	text := "prefix {a: 1,} suffix"
	first, err1 := ExtractObject(text)
	second, err2 := ExtractObject(text)
	if err1 != nil || err2 != nil {
		t.Fatalf("extract: %v %v", err1, err2)
	}
	if string(first) != string(second) {
		t.Fatalf("non-deterministic extraction: %q vs %q", first, second)
	}
}

func TestUnmarshal_IntoStruct(t *testing.T) {
	var out struct {
		Nodes []struct {
			ID string `json:"id"`
		} `json:"nodes"`
	}
	text := "```json\n{\"nodes\": [{\"id\": \"api\"}]}\n```"
	if err := Unmarshal(text, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.Nodes) != 1 || out.Nodes[0].ID != "api" {
		t.Fatalf("got %+v", out)
	}
}

func TestMarshalNoEscape(t *testing.T) {
	b, err := MarshalNoEscape(map[string]string{"arrow": "a -> b"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"arrow":"a -> b"}` {
		t.Fatalf("got %s", b)
	}
}
