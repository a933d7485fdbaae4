// Package history persists scan summaries to a local sqlite database so
// score trends survive across runs.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/boshu2/agentaudit/internal/audit"
)

// Entry is one stored scan summary.
type Entry struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Score        int       `json:"score"`
	Findings     int       `json:"findings"`
	Suggestions  int       `json:"suggestions"`
	FilesScanned int       `json:"files_scanned"`
	DurationMs   int64     `json:"duration_ms"`
	Platform     string    `json:"platform"`
}

// Store is a sqlite-backed scan history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging history db: %w", err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS scans (
		id TEXT PRIMARY KEY,
		timestamp TEXT NOT NULL,
		score INTEGER NOT NULL,
		findings INTEGER NOT NULL,
		suggestions INTEGER NOT NULL,
		files_scanned INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		platform TEXT NOT NULL,
		result_json TEXT NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("creating scans table: %w", err)
	}
	return nil
}

// Record stores a scan result and returns its assigned id. The full
// result is kept as JSON alongside the summary columns.
func (s *Store) Record(result *audit.Result) (string, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	id := uuid.NewString()
	_, err = s.db.Exec(`
	INSERT INTO scans (id, timestamp, score, findings, suggestions, files_scanned, duration_ms, platform, result_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, result.Timestamp.Format(time.RFC3339), result.Score,
		len(result.Findings), len(result.Suggestions),
		result.FilesScanned, result.DurationMs, result.Platform, string(payload))
	if err != nil {
		return "", fmt.Errorf("inserting scan: %w", err)
	}
	return id, nil
}

// List returns the most recent entries, newest first.
func (s *Store) List(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
	SELECT id, timestamp, score, findings, suggestions, files_scanned, duration_ms, platform
	FROM scans ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying scans: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.Score, &e.Findings, &e.Suggestions,
			&e.FilesScanned, &e.DurationMs, &e.Platform); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		e.Timestamp, _ = time.Parse(time.RFC3339, ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
