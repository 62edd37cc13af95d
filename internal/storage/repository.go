package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"voicespend/internal/core"
	"voicespend/internal/ledger"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the durable ledger backend. Unlike the CSV file it
// appends rows instead of rewriting a snapshot, but it honors the same
// contract: append-only, insertion order preserved.
type SQLiteRepository struct {
	db *sql.DB
}

var _ ledger.Ledger = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: create db directory: %v", ledger.ErrStorage, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite database: %v", ledger.ErrStorage, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping database: %v", ledger.ErrStorage, err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append implements ledger.Appender.
func (r *SQLiteRepository) Append(ctx context.Context, rec core.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (date, time, category, amount) VALUES (?, ?, ?, ?)`,
		rec.Date, rec.Time, rec.Category, rec.Amount)
	if err != nil {
		return fmt.Errorf("%w: insert expense: %v", ledger.ErrStorage, err)
	}

	slog.InfoContext(ctx, "Expense saved to SQLite",
		"date", rec.Date,
		"category", rec.Category,
		"amount", rec.Amount)

	return nil
}

// RecordsForDate implements ledger.DateReader. Rows come back in insertion
// order (id).
func (r *SQLiteRepository) RecordsForDate(ctx context.Context, date string) ([]core.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, time, category, amount FROM expenses WHERE date = ? ORDER BY id`, date)
	if err != nil {
		return nil, fmt.Errorf("%w: query expenses: %v", ledger.ErrStorage, err)
	}
	defer rows.Close()

	var records []core.Record
	for rows.Next() {
		var rec core.Record
		if err := rows.Scan(&rec.Date, &rec.Time, &rec.Category, &rec.Amount); err != nil {
			return nil, fmt.Errorf("%w: scan expense: %v", ledger.ErrStorage, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate expenses: %v", ledger.ErrStorage, err)
	}
	return records, nil
}
