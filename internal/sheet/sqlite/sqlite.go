// Package sqlite provides a local-file sheet.Backend on SQLite.
//
// Each table is stored as a header plus ordered rows of JSON-encoded cells,
// so the file mirrors a spreadsheet tab for tab. Unlike a spreadsheet, a
// replace runs in a transaction and never leaves a half-written table.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/showerplanner/internal/sheet"
)

// Ensure Backend implements sheet.Backend
var _ sheet.Backend = (*Backend)(nil)

// Backend implements sheet.Backend using SQLite.
type Backend struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath, runs migrations and makes
// sure the given tables exist.
func New(ctx context.Context, dbPath string, tables ...string) (*Backend, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", sheet.ErrConnection, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to enable foreign keys: %w", sheet.ErrConnection, err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	b := &Backend{db: db}
	for _, name := range tables {
		if err := b.CreateTable(ctx, name); err != nil {
			db.Close()
			return nil, err
		}
	}
	return b, nil
}

// Close closes the database connection.
func (b *Backend) Close() error {
	return b.db.Close()
}

// CreateTable registers an empty table if it does not exist yet.
func (b *Backend) CreateTable(ctx context.Context, name string) error {
	_, err := b.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO sheet_tables (name, header, updated_at) VALUES (?, '[]', ?)",
		name, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", name, err)
	}
	return nil
}

// ReadAll implements sheet.Backend.
func (b *Backend) ReadAll(ctx context.Context, table string) (*sheet.Table, error) {
	var headerJSON string
	err := b.db.QueryRowContext(ctx,
		"SELECT header FROM sheet_tables WHERE name = ?",
		table,
	).Scan(&headerJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", sheet.ErrTableNotFound, table)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get table: %w", sheet.ErrConnection, err)
	}

	var header []string
	if err := json.Unmarshal([]byte(headerJSON), &header); err != nil {
		return nil, fmt.Errorf("%w: corrupt header for %s: %w", sheet.ErrConnection, table, err)
	}
	if len(header) == 0 {
		return &sheet.Table{}, nil
	}

	rows, err := b.db.QueryContext(ctx,
		"SELECT cells FROM sheet_rows WHERE table_name = ? ORDER BY position",
		table,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get rows: %w", sheet.ErrConnection, err)
	}
	defer rows.Close()

	raw := [][]string{header}
	for rows.Next() {
		var cellsJSON string
		if err := rows.Scan(&cellsJSON); err != nil {
			return nil, fmt.Errorf("%w: failed to scan row: %w", sheet.ErrConnection, err)
		}
		var cells []string
		if err := json.Unmarshal([]byte(cellsJSON), &cells); err != nil {
			return nil, fmt.Errorf("%w: corrupt row in %s: %w", sheet.ErrConnection, table, err)
		}
		raw = append(raw, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate rows: %w", sheet.ErrConnection, err)
	}

	return sheet.FromRows(raw), nil
}

// ReplaceAll implements sheet.Backend.
func (b *Backend) ReplaceAll(ctx context.Context, table string, t *sheet.Table) error {
	rows := t.Rows()

	headerJSON, err := json.Marshal(rows[0])
	if err != nil {
		return fmt.Errorf("%w: failed to encode header: %w", sheet.ErrWrite, err)
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", sheet.ErrConnection, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE sheet_tables SET header = ?, updated_at = ? WHERE name = ?",
		string(headerJSON), time.Now().Unix(), table,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update header: %w", sheet.ErrWrite, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", sheet.ErrTableNotFound, table)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM sheet_rows WHERE table_name = ?", table); err != nil {
		return fmt.Errorf("%w: failed to clear rows: %w", sheet.ErrWrite, err)
	}

	for i, row := range rows[1:] {
		cellsJSON, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("%w: failed to encode row: %w", sheet.ErrWrite, err)
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO sheet_rows (table_name, position, cells) VALUES (?, ?, ?)",
			table, i, string(cellsJSON),
		)
		if err != nil {
			return fmt.Errorf("%w: failed to insert row: %w", sheet.ErrWrite, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %w", sheet.ErrWrite, err)
	}
	return nil
}
