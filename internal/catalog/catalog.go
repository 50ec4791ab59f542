// Package catalog persists benchmark run history in a local SQLite file
// so past passes can be listed and re-inspected.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"sqlbench/internal/bench"
	"sqlbench/internal/hostinfo"
)

// Store persists run records in the catalog SQLite DB. It creates a
// dedicated `latency_runs` table.
type Store struct {
	db *sql.DB
}

// RunRecord is one full harness invocation: its parameters and every
// per-(database, query) report it produced.
type RunRecord struct {
	RunID      string         `json:"run_id"`
	Suite      string         `json:"suite"`
	Runs       int            `json:"runs"`
	Mode       string         `json:"mode"`
	TimeoutSec int            `json:"timeout_sec"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Host       hostinfo.Info  `json:"host"`
	Reports    []bench.Report `json:"reports"`
}

// RunSummary is a lightweight row for listing.
type RunSummary struct {
	RunID     string    `json:"run_id"`
	Suite     string    `json:"suite"`
	Targets   int       `json:"targets"`
	Queries   int       `json:"queries"`
	Timeouts  int       `json:"timeouts"`
	StartedAt time.Time `json:"started_at"`
	Hostname  string    `json:"hostname"`
}

// Open opens (or creates) the run history table inside the given SQLite
// database file. If dbPath is empty, it defaults to
// ~/.config/sqlbench/catalog.db.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		home, _ := os.UserHomeDir()
		dbPath = filepath.Join(home, ".config", "sqlbench", "catalog.db")
	}
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS latency_runs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id      TEXT    NOT NULL UNIQUE,
		suite       TEXT    NOT NULL,
		runs        INTEGER NOT NULL,
		mode        TEXT    NOT NULL,
		timeout_sec INTEGER NOT NULL,
		targets     INTEGER NOT NULL,
		queries     INTEGER NOT NULL,
		timeouts    INTEGER NOT NULL,
		started_at  DATETIME NOT NULL,
		finished_at DATETIME NOT NULL,
		-- Full JSON for drill-down
		report_json TEXT,
		hostname    TEXT,
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_runs_suite ON latency_runs(suite);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON latency_runs(started_at DESC);
	`)
	return err
}

// Save persists a run record.
func (s *Store) Save(ctx context.Context, r *RunRecord) error {
	reportJSON, _ := json.Marshal(r)

	databases := map[string]bool{}
	queries := map[string]bool{}
	timeouts := 0
	for _, rep := range r.Reports {
		databases[rep.Database] = true
		queries[rep.Query] = true
		timeouts += rep.Stats.Timeouts
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO latency_runs (
			run_id, suite, runs, mode, timeout_sec,
			targets, queries, timeouts,
			started_at, finished_at, report_json, hostname
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		r.RunID, r.Suite, r.Runs, r.Mode, r.TimeoutSec,
		len(databases), len(queries), timeouts,
		r.StartedAt, r.FinishedAt, string(reportJSON), r.Host.Hostname,
	)
	return err
}

// ListRecent returns the N most recent runs.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, suite, targets, queries, timeouts, started_at, hostname
		FROM latency_runs
		ORDER BY started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []RunSummary
	for rows.Next() {
		var r RunSummary
		var started time.Time
		err := rows.Scan(&r.RunID, &r.Suite, &r.Targets, &r.Queries,
			&r.Timeouts, &started, &r.Hostname)
		if err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		r.StartedAt = started
		results = append(results, r)
	}
	return results, rows.Err()
}

// Get loads the full record for a given run.
func (s *Store) Get(ctx context.Context, runID string) (*RunRecord, error) {
	var reportJSON string
	err := s.db.QueryRowContext(ctx,
		"SELECT report_json FROM latency_runs WHERE run_id = ?", runID).
		Scan(&reportJSON)
	if err != nil {
		return nil, err
	}
	var r RunRecord
	if err := json.Unmarshal([]byte(reportJSON), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
