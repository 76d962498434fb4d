// Package sheet defines the tabular backend the planner persists to.
//
// A backend exposes named tables (spreadsheet tabs). The first row of a table
// is its header; every other row is a record keyed by column name. Tables are
// only ever read whole and replaced whole: there is no row-level update, no
// locking and no version check. Two callers replacing the same table at
// nearly the same time race, and the last write wins.
package sheet

import (
	"context"
	"errors"
)

var (
	// ErrConnection means the backend could not be reached or rejected the credentials.
	ErrConnection = errors.New("backend unavailable")
	// ErrTableNotFound means the named table (tab) does not exist.
	ErrTableNotFound = errors.New("table not found")
	// ErrWrite means a replace failed part way. The table contents afterwards
	// are not guaranteed: a clear may have succeeded without the rewrite.
	ErrWrite = errors.New("table write failed")
)

// Backend is the opaque handle to a remote tabular store.
type Backend interface {
	// ReadAll returns the header and every data record of the table.
	// A table with no data rows yields a Table with zero Records.
	ReadAll(ctx context.Context, table string) (*Table, error)

	// ReplaceAll clears the table and writes t.Header followed by every
	// record's cells in header order.
	ReplaceAll(ctx context.Context, table string, t *Table) error
}

// Record maps a column name to its cell value.
type Record map[string]string

// Table is the in-memory image of one backend table.
type Table struct {
	Header  []string
	Records []Record
}

// FromRows builds a Table from raw rows, the first of which is the header.
// Short rows are padded with empty cells, cells beyond the header are dropped,
// and rows with no content at all are skipped.
func FromRows(rows [][]string) *Table {
	t := &Table{}
	if len(rows) == 0 {
		return t
	}

	seen := make(map[string]bool, len(rows[0]))
	for _, name := range rows[0] {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		t.Header = append(t.Header, name)
	}

	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rec := make(Record, len(t.Header))
		for i, name := range rows[0] {
			if name == "" {
				continue
			}
			if _, set := rec[name]; set {
				continue
			}
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		t.Records = append(t.Records, rec)
	}
	return t
}

// Rows flattens the table back into header + data rows in header order.
func (t *Table) Rows() [][]string {
	rows := make([][]string, 0, len(t.Records)+1)
	rows = append(rows, append([]string(nil), t.Header...))
	for _, rec := range t.Records {
		row := make([]string, len(t.Header))
		for i, name := range t.Header {
			row[i] = rec[name]
		}
		rows = append(rows, row)
	}
	return rows
}

// Index returns the position of the first record whose column equals value,
// or -1.
func (t *Table) Index(column, value string) int {
	for i, rec := range t.Records {
		if rec[column] == value {
			return i
		}
	}
	return -1
}

// EnsureColumns appends any missing columns to the header. Existing records
// read the new columns as empty cells.
func (t *Table) EnsureColumns(columns ...string) {
	for _, col := range columns {
		if !t.HasColumn(col) {
			t.Header = append(t.Header, col)
		}
	}
}

// HasColumn reports whether the header contains the column.
func (t *Table) HasColumn(column string) bool {
	for _, name := range t.Header {
		if name == column {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{
		Header:  append([]string(nil), t.Header...),
		Records: make([]Record, len(t.Records)),
	}
	for i, rec := range t.Records {
		cp := make(Record, len(rec))
		for k, v := range rec {
			cp[k] = v
		}
		c.Records[i] = cp
	}
	return c
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
