// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists a record of past conversions in a local SQLite
// database, so an operator can see what was converted, when, and with what
// geometry without re-opening the drawings.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dxfoil/pkg/types"
)

const dbFile = "conversions.db"

// Entry is one recorded conversion.
type Entry struct {
	ID          int64     `yaml:"id"`
	Label       string    `yaml:"label"`
	SourcePath  string    `yaml:"source_path"`
	OutputPath  string    `yaml:"output_path"`
	Format      string    `yaml:"format"`
	ChordLength float64   `yaml:"chord_length"`
	UpperPoints int       `yaml:"upper_points"`
	LowerPoints int       `yaml:"lower_points"`
	ConvertedAt time.Time `yaml:"converted_at"`
}

// Store manages the conversion catalog database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog database under cfg.Dir, creating the
// schema if it does not exist.
func Open(cfg types.CatalogConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "catalog"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		label TEXT NOT NULL,
		source_path TEXT NOT NULL,
		output_path TEXT NOT NULL,
		format TEXT NOT NULL,
		chord_length REAL NOT NULL,
		upper_points INTEGER NOT NULL,
		lower_points INTEGER NOT NULL,
		converted_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one conversion into the catalog.
func (s *Store) Record(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions
			(label, source_path, output_path, format, chord_length, upper_points, lower_points, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Label, e.SourcePath, e.OutputPath, e.Format,
		e.ChordLength, e.UpperPoints, e.LowerPoints,
		e.ConvertedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("recording conversion %s: %w", e.Label, err)
	}
	return nil
}

// List returns the most recent conversions, newest first, up to limit
// (default 20 when limit is not positive).
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, label, source_path, output_path, format,
		        chord_length, upper_points, lower_points, converted_at
		 FROM conversions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var convertedAt string
		if err := rows.Scan(&e.ID, &e.Label, &e.SourcePath, &e.OutputPath, &e.Format,
			&e.ChordLength, &e.UpperPoints, &e.LowerPoints, &convertedAt); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, convertedAt); err == nil {
			e.ConvertedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Export writes every catalog entry to w as YAML, oldest first.
func (s *Store) Export(ctx context.Context, w io.Writer) error {
	entries, err := s.List(ctx, 1<<31-1)
	if err != nil {
		return err
	}
	// List returns newest first; exports read better oldest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding catalog export: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing catalog export: %w", err)
	}
	return nil
}
