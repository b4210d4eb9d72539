package form

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"desthetik/internal/graph"
)

// Store keeps form sessions in memory and persists them to a JSON file so a
// server restart does not lose in-progress answers. All mutations go through
// the store; callers never hold a live *Session.
type Store struct {
	path string

	loadOnce sync.Once
	mu       sync.RWMutex
	byID     map[string]*Session
}

func NewStore(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = filepath.Join("tmp", "form_sessions.json")
	}
	return &Store{path: path, byID: make(map[string]*Session)}
}

func (s *Store) ensureLoaded() {
	s.loadOnce.Do(func() {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var rows []*Session
		if err := json.Unmarshal(data, &rows); err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, row := range rows {
			if row == nil || strings.TrimSpace(row.ID) == "" {
				continue
			}
			// A crash mid-generation must not leave a session stuck busy.
			row.Busy = false
			s.byID[row.ID] = row
		}
	})
}

func (s *Store) save() {
	rows := make([]*Session, 0, len(s.byID))
	for _, sess := range s.byID {
		rows = append(rows, sess)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	_ = os.WriteFile(s.path, data, 0o644)
}

// Create starts a fresh session with empty answers at question zero.
func (s *Store) Create() *Session {
	s.ensureLoaded()
	now := time.Now().UTC()
	sess := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	s.byID[sess.ID] = sess
	s.save()
	s.mu.Unlock()
	return snapshot(sess)
}

// Get returns a copy of the session, if it exists.
func (s *Store) Get(id string) (*Session, bool) {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, false
	}
	return snapshot(sess), true
}

// SetField writes one answer. The write itself is unconstrained; the caller
// surfaces bound violations visually without blocking typing.
func (s *Store) SetField(id, name, value string) (*Session, error) {
	return s.update(id, func(sess *Session) error {
		return sess.Answers.Set(name, value)
	})
}

// Next runs the state machine's forward transition.
func (s *Store) Next(id string) (*Session, error) {
	return s.update(id, func(sess *Session) error {
		sess.Next()
		return nil
	})
}

// Previous runs the state machine's backward transition.
func (s *Store) Previous(id string) (*Session, error) {
	return s.update(id, func(sess *Session) error {
		sess.Previous()
		return nil
	})
}

// SetBusy flips the generation-in-progress flag. Starting fails if a run is
// already in flight for the session.
func (s *Store) SetBusy(id string, busy bool) (*Session, error) {
	return s.update(id, func(sess *Session) error {
		if busy && sess.Busy {
			return fmt.Errorf("form: session %s already has a generation in progress", id)
		}
		sess.Busy = busy
		return nil
	})
}

// ReplaceGraph swaps in a whole new graph. A nil graph clears the canvas; a
// failed generation never reaches this method, so the previous graph stays.
func (s *Store) ReplaceGraph(id string, g *graph.Graph, vp graph.Viewport) (*Session, error) {
	return s.update(id, func(sess *Session) error {
		sess.Graph = graph.Clone(g)
		sess.Viewport = vp
		return nil
	})
}

func (s *Store) update(id string, fn func(*Session) error) (*Session, error) {
	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("form: session %s not found", id)
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	sess.UpdatedAt = time.Now().UTC()
	s.save()
	return snapshot(sess), nil
}

func snapshot(sess *Session) *Session {
	cp := *sess
	cp.Graph = graph.Clone(sess.Graph)
	return &cp
}
