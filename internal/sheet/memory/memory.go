// Package memory provides an in-process sheet.Backend for tests and local runs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mmynk/showerplanner/internal/sheet"
)

// Ensure Backend implements sheet.Backend
var _ sheet.Backend = (*Backend)(nil)

// Backend keeps every table as raw rows, the same shape a spreadsheet returns.
// The mutex only guards the map; read-modify-write cycles of callers are not
// serialized, so concurrent replaces lose updates exactly like the real backend.
type Backend struct {
	mu     sync.Mutex
	tables map[string][][]string

	readErr      error
	writeErr     error
	clearOnFail  bool
	afterRead    func(table string)
	replaceCalls map[string]int
}

// New creates a backend with the given empty tables.
func New(tables ...string) *Backend {
	b := &Backend{
		tables:       make(map[string][][]string),
		replaceCalls: make(map[string]int),
	}
	for _, name := range tables {
		b.tables[name] = nil
	}
	return b
}

// CreateTable adds an empty table if it does not exist yet.
func (b *Backend) CreateTable(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.tables[name]; !ok {
		b.tables[name] = nil
	}
}

// Load replaces a table's raw rows, creating the table if needed.
func (b *Backend) Load(name string, rows [][]string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tables[name] = copyRows(rows)
}

// Rows returns a copy of a table's raw rows.
func (b *Backend) Rows(name string) [][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return copyRows(b.tables[name])
}

// ReplaceCalls reports how many successful replaces hit the table.
func (b *Backend) ReplaceCalls(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.replaceCalls[name]
}

// FailReads makes every ReadAll return err until reset with nil.
func (b *Backend) FailReads(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.readErr = err
}

// FailWrites makes every ReplaceAll return err until reset with nil. When
// clear is set the table is emptied first, the way a spreadsheet ends up when
// the clear call succeeds and the rewrite does not.
func (b *Backend) FailWrites(err error, clear bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writeErr = err
	b.clearOnFail = clear
}

// AfterRead installs a hook that runs after a read snapshot is taken and
// before it is returned.
func (b *Backend) AfterRead(fn func(table string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.afterRead = fn
}

// ReadAll implements sheet.Backend.
func (b *Backend) ReadAll(ctx context.Context, table string) (*sheet.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	if b.readErr != nil {
		err := b.readErr
		b.mu.Unlock()
		return nil, fmt.Errorf("%w: %w", sheet.ErrConnection, err)
	}
	rows, ok := b.tables[table]
	if !ok {
		b.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", sheet.ErrTableNotFound, table)
	}
	t := sheet.FromRows(copyRows(rows))
	hook := b.afterRead
	b.mu.Unlock()

	if hook != nil {
		hook(table)
	}
	return t, nil
}

// ReplaceAll implements sheet.Backend.
func (b *Backend) ReplaceAll(ctx context.Context, table string, t *sheet.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.tables[table]; !ok {
		return fmt.Errorf("%w: %s", sheet.ErrTableNotFound, table)
	}
	if b.writeErr != nil {
		if b.clearOnFail {
			b.tables[table] = nil
		}
		return fmt.Errorf("%w: %w", sheet.ErrWrite, b.writeErr)
	}

	b.tables[table] = t.Rows()
	b.replaceCalls[table]++
	return nil
}

func copyRows(rows [][]string) [][]string {
	if rows == nil {
		return nil
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
