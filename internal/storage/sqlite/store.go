// Package sqlite exports a generated dataset into a local SQLite file with the
// same seven tables as the Postgres schema.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ashita-ai/agentseed/internal/model"
)

//go:embed schema.sql
var Schema string

// Store is a sink backed by one SQLite database file.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the database at path and applies Schema.
// Foreign keys are enforced, so parents must be written first.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	// One writer; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Write inserts one batch inside a transaction.
func (s *Store) Write(ctx context.Context, table model.Table, records []model.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin %s: %w", table, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertSQL(table, records[0].Columns()))
	if err != nil {
		return fmt.Errorf("sqlite: prepare %s: %w", table, err)
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range records {
		if r.Table() != table {
			return fmt.Errorf("sqlite: insert %s: record %d belongs to %s", table, i, r.Table())
		}
		if _, err := stmt.ExecContext(ctx, bindValues(r.Values())...); err != nil {
			return fmt.Errorf("sqlite: insert %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit %s: %w", table, err)
	}
	s.logger.Debug("sqlite: batch inserted", "table", table, "rows", len(records))
	return nil
}

// Count returns the number of rows in table.
func (s *Store) Count(ctx context.Context, table model.Table) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM `+quote(string(table))).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite: count %s: %w", table, err)
	}
	return n, nil
}

// DB returns the underlying handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func insertSQL(table model.Table, columns []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quote(c)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(string(table)), strings.Join(quoted, ", "), placeholders)
}

// bindValues converts ids to text and timestamps to RFC 3339 UTC text so the
// file reads the same regardless of driver type mapping.
func bindValues(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		switch v := v.(type) {
		case uuid.UUID:
			out[i] = v.String()
		case time.Time:
			out[i] = v.UTC().Format(time.RFC3339Nano)
		case *time.Time:
			if v == nil {
				out[i] = nil
			} else {
				out[i] = v.UTC().Format(time.RFC3339Nano)
			}
		default:
			out[i] = v
		}
	}
	return out
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
