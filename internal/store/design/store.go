package design

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"

	"database/sql"
)

// Store keeps generated designs. With a Postgres DSN it writes through to the
// database; otherwise it falls back to a JSON file, which is enough for a
// single-node deployment. Reads go through an LRU cache either way.
type Store struct {
	path string
	db   *sql.DB

	loadOnce sync.Once
	mu       sync.RWMutex
	byID     map[string]Design

	schemaOnce sync.Once
	schemaErr  error

	cache *lru.Cache[string, Design]
}

func New(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = filepath.Join("tmp", "designs.json")
	}
	cache, _ := lru.New[string, Design](256)
	return &Store{path: path, byID: make(map[string]Design), cache: cache}
}

func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, Design](256)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, cache: cache}, nil
}

// NewFromEnv prefers Postgres when DESIGN_STORE_PG_DSN is set and falls back
// to the file store when the connection cannot be made.
func NewFromEnv(path string) *Store {
	dsn := strings.TrimSpace(os.Getenv("DESIGN_STORE_PG_DSN"))
	if dsn == "" {
		return New(path)
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		return New(path)
	}
	return s
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put stores one design.
func (s *Store) Put(d Design) error {
	if s == nil || strings.TrimSpace(d.ID) == "" {
		return nil
	}
	if s.db != nil {
		if err := s.putDB(d); err != nil {
			return err
		}
		s.cache.Add(d.ID, d)
		return nil
	}
	s.ensureLoadedFile()
	s.mu.Lock()
	s.byID[d.ID] = d
	s.saveFile()
	s.mu.Unlock()
	s.cache.Add(d.ID, d)
	return nil
}

// Get returns one design by id.
func (s *Store) Get(id string) (Design, bool) {
	if s == nil {
		return Design{}, false
	}
	id = strings.TrimSpace(id)
	if d, ok := s.cache.Get(id); ok {
		return d, true
	}
	if s.db != nil {
		d, ok := s.getDB(id)
		if ok {
			s.cache.Add(id, d)
		}
		return d, ok
	}
	s.ensureLoadedFile()
	s.mu.RLock()
	d, ok := s.byID[id]
	s.mu.RUnlock()
	if ok {
		s.cache.Add(id, d)
	}
	return d, ok
}

// BySession lists a session's designs, newest first.
func (s *Store) BySession(sessionID string) []Design {
	if s == nil {
		return nil
	}
	sessionID = strings.TrimSpace(sessionID)
	if s.db != nil {
		return s.bySessionDB(sessionID)
	}
	s.ensureLoadedFile()
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Design
	for _, d := range s.byID {
		if d.SessionID == sessionID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// --- file backend ---

func (s *Store) ensureLoadedFile() {
	s.loadOnce.Do(func() {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var rows []Design
		if err := json.Unmarshal(data, &rows); err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, row := range rows {
			if strings.TrimSpace(row.ID) == "" {
				continue
			}
			s.byID[row.ID] = row
		}
	})
}

// saveFile must be called with s.mu held.
func (s *Store) saveFile() {
	rows := make([]Design, 0, len(s.byID))
	for _, d := range s.byID {
		rows = append(rows, d)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	_ = os.WriteFile(s.path, data, 0o644)
}
