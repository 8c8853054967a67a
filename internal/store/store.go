// Package store: read/write access to the vacancy table kept in PostgreSQL. Every column is TEXT; NULL means missing.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"plazas-monitor/internal/dataset"
	"plazas-monitor/internal/logger"
)

// ErrNoColumns: the table does not exist or has no columns.
var ErrNoColumns = errors.New("store: table has no columns")

// Store: entry point for database access; holds the pool.
type Store struct {
	db *sql.DB
}

func AttachDB(db *sql.DB) *Store { return &Store{db: db} }

// Open: opens a pool for dsn.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) DB() *sql.DB { return s.db }

// Columns: column names of table in ordinal order.
func (s *Store) Columns(ctx context.Context, table string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT column_name FROM information_schema.columns
        WHERE table_schema = current_schema() AND table_name = $1
        ORDER BY ordinal_position`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cols []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoColumns, table)
	}
	return cols, nil
}

// LoadVacancies reads every row of table and normalizes it exactly like the file loader.
// Source is "postgres:<table>" and Hash covers every cell, so a changed table yields a new snapshot version.
func (s *Store) LoadVacancies(ctx context.Context, table string) (*dataset.Table, error) {
	cols, err := s.Columns(ctx, table)
	if err != nil {
		return nil, err
	}
	q := "SELECT " + selectList(cols) + " FROM " + pq.QuoteIdentifier(table)
	logger.L().Debug("db_load_begin", "table", table, "columns", len(cols))
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	h := sha256.New()
	var out [][]string
	cells := make([]sql.NullString, len(cols))
	ptrs := make([]any, len(cols))
	for i := range cells {
		ptrs[i] = &cells[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec := make([]string, len(cols))
		for i, c := range cells {
			if c.Valid {
				rec[i] = c.String
			}
			h.Write([]byte(rec[i]))
			h.Write([]byte{0x1f})
		}
		h.Write([]byte{0x1e})
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	t := dataset.Normalize(cols, out)
	t.Source = "postgres:" + table
	t.Hash = hex.EncodeToString(h.Sum(nil))
	logger.L().Info("dataset_load_ok", "dataset", "vacancies", "source", t.Source, "rows", t.Len(), "columns", len(cols))
	return t, nil
}

// ReplaceVacancies swaps the content of table for rows in one transaction using COPY.
// Empty cells are stored as NULL.
func (s *Store) ReplaceVacancies(ctx context.Context, table string, cols []string, rows [][]string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+pq.QuoteIdentifier(table)); err != nil {
		return 0, err
	}
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, cols...))
	if err != nil {
		return 0, err
	}
	args := make([]any, len(cols))
	for _, r := range rows {
		for i := range args {
			args[i] = nil
			if i < len(r) && r[i] != "" {
				args[i] = r[i]
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			_ = stmt.Close()
			return 0, err
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return 0, err
	}
	if err := stmt.Close(); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	logger.L().Info("db_replace_ok", "table", table, "rows", len(rows))
	return len(rows), nil
}

func selectList(cols []string) string {
	q := ""
	for i, c := range cols {
		if i > 0 {
			q += ", "
		}
		q += pq.QuoteIdentifier(c) + "::text"
	}
	return q
}
