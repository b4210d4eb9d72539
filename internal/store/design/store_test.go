package design

import (
	"path/filepath"
	"testing"
	"time"

	"desthetik/internal/graph"
)

func sampleDesign(id, session string) Design {
	return Design{
		ID:             id,
		SessionID:      session,
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
		DetailedDesign: "frontend talks to backend",
		Graph:          graph.Placeholder(),
	}
}

func TestFileStore_PutGet(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "designs.json"))
	d := sampleDesign("d1", "s1")
	if err := st.Put(d); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok := st.Get("d1")
	if !ok {
		t.Fatal("design not found")
	}
	if got.DetailedDesign != d.DetailedDesign || len(got.Graph.Nodes) != len(d.Graph.Nodes) {
		t.Fatalf("got %+v", got)
	}
}

func TestFileStore_BySessionNewestFirst(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "designs.json"))
	older := sampleDesign("d1", "s1")
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	newer := sampleDesign("d2", "s1")
	other := sampleDesign("d3", "s2")
	for _, d := range []Design{older, newer, other} {
		if err := st.Put(d); err != nil {
			t.Fatalf("put: %v", err)
		}
	}
	got := st.BySession("s1")
	if len(got) != 2 {
		t.Fatalf("got %d designs", len(got))
	}
	if got[0].ID != "d2" || got[1].ID != "d1" {
		t.Fatalf("wrong order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFileStore_PersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "designs.json")
	st := New(path)
	if err := st.Put(sampleDesign("d1", "s1")); err != nil {
		t.Fatalf("put: %v", err)
	}

	reloaded := New(path)
	if _, ok := reloaded.Get("d1"); !ok {
		t.Fatal("design lost across reload")
	}
}

func TestStore_NilReceiverIsSafe(t *testing.T) {
	var st *Store
	if err := st.Put(sampleDesign("d1", "s1")); err != nil {
		t.Fatalf("nil put: %v", err)
	}
	if _, ok := st.Get("d1"); ok {
		t.Fatal("nil store returned a design")
	}
	if got := st.BySession("s1"); got != nil {
		t.Fatal("nil store returned designs")
	}
}
