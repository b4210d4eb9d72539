package design

import (
	"encoding/json"
	"sort"
	"time"

	"desthetik/internal/graph"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS designs (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	detailed_design TEXT NOT NULL,
	graph JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS designs_session_idx ON designs (session_id, created_at DESC);
`

func (s *Store) ensureSchema() error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(schemaSQL)
	})
	return s.schemaErr
}

func (s *Store) putDB(d Design) error {
	if err := s.ensureSchema(); err != nil {
		return err
	}
	graphJSON, err := json.Marshal(d.Graph)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO designs (id, session_id, created_at, detailed_design, graph)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			session_id = EXCLUDED.session_id,
			created_at = EXCLUDED.created_at,
			detailed_design = EXCLUDED.detailed_design,
			graph = EXCLUDED.graph`,
		d.ID, d.SessionID, d.CreatedAt, d.DetailedDesign, graphJSON)
	return err
}

func (s *Store) getDB(id string) (Design, bool) {
	if err := s.ensureSchema(); err != nil {
		return Design{}, false
	}
	row := s.db.QueryRow(`
		SELECT id, session_id, created_at, detailed_design, graph
		FROM designs WHERE id = $1`, id)
	d, err := scanDesign(row)
	if err != nil {
		return Design{}, false
	}
	return d, true
}

func (s *Store) bySessionDB(sessionID string) []Design {
	if err := s.ensureSchema(); err != nil {
		return nil
	}
	rows, err := s.db.Query(`
		SELECT id, session_id, created_at, detailed_design, graph
		FROM designs WHERE session_id = $1
		ORDER BY created_at DESC`, sessionID)
	if err != nil {
		return nil
	}
	defer rows.Close()
	var out []Design
	for rows.Next() {
		d, err := scanDesign(rows)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDesign(row rowScanner) (Design, error) {
	var d Design
	var createdAt time.Time
	var graphJSON []byte
	if err := row.Scan(&d.ID, &d.SessionID, &createdAt, &d.DetailedDesign, &graphJSON); err != nil {
		return Design{}, err
	}
	d.CreatedAt = createdAt.UTC()
	var g graph.Graph
	if err := json.Unmarshal(graphJSON, &g); err != nil {
		return Design{}, err
	}
	d.Graph = &g
	return d, nil
}
