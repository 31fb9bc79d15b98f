package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ashita-ai/agentseed/internal/model"
)

// Write ingests one batch into table with COPY. A batch either lands in full
// or not at all.
func (db *DB) Write(ctx context.Context, table model.Table, records []model.Record) error {
	if len(records) == 0 {
		return nil
	}

	columns := records[0].Columns()
	rows := make([][]any, len(records))
	for i, r := range records {
		if r.Table() != table {
			return fmt.Errorf("storage: copy %s: record %d belongs to %s", table, i, r.Table())
		}
		rows[i] = r.Values()
	}

	copyCtx, cancel := context.WithTimeout(ctx, db.copyTimeout)
	defer cancel()

	n, err := db.pool.CopyFrom(copyCtx, pgx.Identifier{string(table)}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("storage: copy %s: %w", table, err)
	}
	if int(n) != len(records) {
		return fmt.Errorf("storage: copy %s: wrote %d of %d rows", table, n, len(records))
	}
	db.logger.Debug("storage: batch copied", "table", table, "rows", n)
	return nil
}

// Count returns the number of rows currently in table.
func (db *DB) Count(ctx context.Context, table model.Table) (int64, error) {
	var n int64
	q := "SELECT count(*) FROM " + pgx.Identifier{string(table)}.Sanitize()
	if err := db.pool.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: count %s: %w", table, err)
	}
	return n, nil
}

// VerifySchema checks that every seed table exists, so a missing schema is
// reported before any row is written.
func (db *DB) VerifySchema(ctx context.Context) error {
	for _, t := range model.Tables {
		var exists bool
		err := db.pool.QueryRow(ctx,
			`SELECT to_regclass($1) IS NOT NULL`, pgx.Identifier{string(t)}.Sanitize(),
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("storage: verify %s: %w", t, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s (run with --migrate)", ErrSchemaMissing, t)
		}
	}
	return nil
}
