// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session persists idea runs to a SQLite database so feedback
// cycles can be reviewed after the fact. Persistence belongs to the
// presentation side; the pipeline itself never touches the store.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

const dbFile = "sessions.db"

// Store manages the session SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the session database at cfg.Dir/sessions.db,
// creating the schema if it does not exist.
func NewStore(cfg types.SessionConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating session directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			source_ref TEXT,
			started_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS cycles (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			cycle INTEGER NOT NULL,
			ideas TEXT NOT NULL,
			feedback TEXT NOT NULL,
			recorded_at TEXT NOT NULL,
			UNIQUE(run_id, cycle)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cycles_run_id ON cycles(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// BeginRun registers a new run and returns its generated id.
func (s *Store) BeginRun(ctx context.Context, sourceRef string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, source_ref, started_at) VALUES (?, ?, ?)`,
		id, sourceRef, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	return id, nil
}

// RecordCycle stores one presentation cycle: the ideas shown and the
// feedback collected. Ideas and feedback are stored as YAML text, matching
// the stage-artifact format.
func (s *Store) RecordCycle(ctx context.Context, runID string, cycle int, ideas []types.ScriptIdea, feedback types.Feedback) error {
	ideasYAML, err := yaml.Marshal(ideas)
	if err != nil {
		return fmt.Errorf("marshaling ideas: %w", err)
	}
	feedbackYAML, err := yaml.Marshal(feedback)
	if err != nil {
		return fmt.Errorf("marshaling feedback: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO cycles (run_id, cycle, ideas, feedback, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		runID, cycle, string(ideasYAML), string(feedbackYAML),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting cycle %d for run %s: %w", cycle, runID, err)
	}
	return nil
}

// RunSummary describes one stored run.
type RunSummary struct {
	ID        string
	SourceRef string
	StartedAt time.Time
	Cycles    int
}

// ListRuns returns all runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.source_ref, r.started_at, count(c.rowid)
		 FROM runs r LEFT JOIN cycles c ON c.run_id = r.id
		 GROUP BY r.id ORDER BY r.started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var rs RunSummary
		var startedAt string
		if err := rows.Scan(&rs.ID, &rs.SourceRef, &startedAt, &rs.Cycles); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, startedAt); parseErr == nil {
			rs.StartedAt = t
		}
		runs = append(runs, rs)
	}
	return runs, rows.Err()
}

// RunExport is the YAML shape of an exported run.
type RunExport struct {
	RunID     string        `yaml:"run_id"`
	SourceRef string        `yaml:"source_ref,omitempty"`
	StartedAt string        `yaml:"started_at"`
	Cycles    []CycleExport `yaml:"cycles"`
}

// CycleExport is one presentation cycle inside a RunExport.
type CycleExport struct {
	Cycle    int                `yaml:"cycle"`
	Ideas    []types.ScriptIdea `yaml:"ideas"`
	Feedback types.Feedback     `yaml:"feedback"`
}

// ExportRun writes the full record of one run as YAML.
func (s *Store) ExportRun(ctx context.Context, runID string, w io.Writer) error {
	var export RunExport
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source_ref, started_at FROM runs WHERE id = ?`, runID,
	).Scan(&export.RunID, &export.SourceRef, &export.StartedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return fmt.Errorf("querying run %s: %w", runID, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT cycle, ideas, feedback FROM cycles WHERE run_id = ? ORDER BY cycle`, runID)
	if err != nil {
		return fmt.Errorf("querying cycles for run %s: %w", runID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var ce CycleExport
		var ideasYAML, feedbackYAML string
		if err := rows.Scan(&ce.Cycle, &ideasYAML, &feedbackYAML); err != nil {
			return fmt.Errorf("scanning cycle: %w", err)
		}
		if err := yaml.Unmarshal([]byte(ideasYAML), &ce.Ideas); err != nil {
			return fmt.Errorf("parsing stored ideas: %w", err)
		}
		if err := yaml.Unmarshal([]byte(feedbackYAML), &ce.Feedback); err != nil {
			return fmt.Errorf("parsing stored feedback: %w", err)
		}
		export.Cycles = append(export.Cycles, ce)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(export)
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	_, err = w.Write(data)
	return err
}
