// Package store persists completed analysis runs, so operators can review
// what was analyzed and how long it took. The orchestrator never consults
// the store: results are not cached, recording is opt-in for callers.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"maat/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS analysis_runs (
	id          TEXT PRIMARY KEY,
	analysis    TEXT NOT NULL,
	vcs         TEXT NOT NULL,
	log_file    TEXT NOT NULL,
	row_count   INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analysis_runs_created ON analysis_runs(created_at);
`

// RunRecord is one completed analysis run
type RunRecord struct {
	ID         string    `json:"id"`
	Analysis   string    `json:"analysis"`
	VCS        string    `json:"vcs"`
	LogFile    string    `json:"logFile"`
	RowCount   int       `json:"rowCount"`
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RunAggregate summarizes runs per analysis kind
type RunAggregate struct {
	Analysis      string  `json:"analysis"`
	RunCount      int64   `json:"runCount"`
	TotalRows     int64   `json:"totalRows"`
	AvgDurationMs float64 `json:"avgDurationMs"`
}

// DB is the run-history database
type DB struct {
	conn   *sql.DB
	logger *logging.Logger
	path   string
}

// Open opens or creates the run-history database at path
func Open(path string, logger *logging.Logger) (*DB, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Debug("Run store opened", logging.Fields{"path": path})

	return &DB{conn: conn, logger: logger, path: path}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// RecordRun persists one completed run and returns its id. A missing ID is
// assigned, a zero CreatedAt becomes the current time.
func (db *DB) RecordRun(rec RunRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := db.conn.Exec(`
		INSERT INTO analysis_runs (id, analysis, vcs, log_file, row_count, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Analysis, rec.VCS, rec.LogFile, rec.RowCount, rec.DurationMs,
		rec.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}

	return rec.ID, nil
}

// RecentRuns returns the newest runs, newest first
func (db *DB) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.conn.Query(`
		SELECT id, analysis, vcs, log_file, row_count, duration_ms, created_at
		FROM analysis_runs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Analysis, &rec.VCS, &rec.LogFile,
			&rec.RowCount, &rec.DurationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// AggregateByAnalysis summarizes all recorded runs per analysis kind
func (db *DB) AggregateByAnalysis() ([]RunAggregate, error) {
	rows, err := db.conn.Query(`
		SELECT analysis, COUNT(*), SUM(row_count), AVG(duration_ms)
		FROM analysis_runs
		GROUP BY analysis
		ORDER BY analysis
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query aggregates: %w", err)
	}
	defer rows.Close()

	var out []RunAggregate
	for rows.Next() {
		var agg RunAggregate
		if err := rows.Scan(&agg.Analysis, &agg.RunCount, &agg.TotalRows, &agg.AvgDurationMs); err != nil {
			return nil, fmt.Errorf("failed to scan aggregate: %w", err)
		}
		out = append(out, agg)
	}
	return out, rows.Err()
}
