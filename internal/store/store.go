// Package store reads analysis-context snapshots from the host tool's
// SQLite database and persists analyst-accepted combinations back as
// entries.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/airvair/STAMPWebTool-sub001/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS controllers (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS control_actions (
	id             TEXT PRIMARY KEY,
	controller_id  TEXT NOT NULL,
	verb           TEXT NOT NULL,
	object         TEXT NOT NULL DEFAULT '',
	description    TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_actions_controller ON control_actions(controller_id);

CREATE TABLE IF NOT EXISTS hazards (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS ucca_entries (
	id               TEXT PRIMARY KEY,
	description      TEXT NOT NULL,
	interaction_type TEXT NOT NULL DEFAULT '',
	risk_score       REAL NOT NULL DEFAULT 0.0,
	created_at_unix  INTEGER NOT NULL
);
`

// Store wraps the analysis database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the analysis database and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadContext reads a full analysis-context snapshot. Interchange groups
// and the special policy have no database representation; callers layer
// those from configuration.
func (s *Store) LoadContext(ctx context.Context) (*model.AnalysisContext, error) {
	ac := &model.AnalysisContext{}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM controllers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load controllers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c model.Controller
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan controller: %w", err)
		}
		ac.Controllers = append(ac.Controllers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load controllers: %w", err)
	}

	actionRows, err := s.db.QueryContext(ctx,
		`SELECT id, controller_id, verb, object, description FROM control_actions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load control actions: %w", err)
	}
	defer actionRows.Close()
	for actionRows.Next() {
		var a model.ControlAction
		if err := actionRows.Scan(&a.ID, &a.ControllerID, &a.Verb, &a.Object, &a.Description); err != nil {
			return nil, fmt.Errorf("scan control action: %w", err)
		}
		ac.Actions = append(ac.Actions, a)
	}
	if err := actionRows.Err(); err != nil {
		return nil, fmt.Errorf("load control actions: %w", err)
	}

	hazardRows, err := s.db.QueryContext(ctx, `SELECT id, title, description FROM hazards ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load hazards: %w", err)
	}
	defer hazardRows.Close()
	for hazardRows.Next() {
		var h model.Hazard
		if err := hazardRows.Scan(&h.ID, &h.Title, &h.Description); err != nil {
			return nil, fmt.Errorf("scan hazard: %w", err)
		}
		ac.Hazards = append(ac.Hazards, h)
	}
	if err := hazardRows.Err(); err != nil {
		return nil, fmt.Errorf("load hazards: %w", err)
	}

	entryRows, err := s.db.QueryContext(ctx, `SELECT id, description, risk_score FROM ucca_entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	defer entryRows.Close()
	for entryRows.Next() {
		var e model.ExistingEntry
		if err := entryRows.Scan(&e.ID, &e.Description, &e.RiskScore); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		ac.Entries = append(ac.Entries, e)
	}
	if err := entryRows.Err(); err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	return ac, nil
}

// SeedContext writes a full snapshot into an empty database. Used by the
// CLI to import YAML snapshots and by tests to build fixtures.
func (s *Store) SeedContext(ctx context.Context, ac *model.AnalysisContext) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, c := range ac.Controllers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO controllers (id, name) VALUES (?, ?)`, c.ID, c.Name); err != nil {
			return fmt.Errorf("seed controller %s: %w", c.ID, err)
		}
	}
	for _, a := range ac.Actions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO control_actions (id, controller_id, verb, object, description) VALUES (?, ?, ?, ?, ?)`,
			a.ID, a.ControllerID, a.Verb, a.Object, a.Description); err != nil {
			return fmt.Errorf("seed action %s: %w", a.ID, err)
		}
	}
	for _, h := range ac.Hazards {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO hazards (id, title, description) VALUES (?, ?, ?)`,
			h.ID, h.Title, h.Description); err != nil {
			return fmt.Errorf("seed hazard %s: %w", h.ID, err)
		}
	}
	for _, e := range ac.Entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO ucca_entries (id, description, risk_score, created_at_unix) VALUES (?, ?, ?, ?)`,
			e.ID, e.Description, e.RiskScore, time.Now().Unix()); err != nil {
			return fmt.Errorf("seed entry %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

// SaveEntry persists an accepted candidate as an analyst-confirmed entry
// and returns the generated entry ID.
func (s *Store) SaveEntry(ctx context.Context, c model.Candidate) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ucca_entries (id, description, interaction_type, risk_score, created_at_unix) VALUES (?, ?, ?, ?, ?)`,
		id, c.Description, string(c.Type), c.RiskScore, time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("save entry: %w", err)
	}
	return id, nil
}
