// Package sheetstore implements storage.Store on a sheet.Backend.
//
// Every operation reads the whole table it needs. Writes upsert the caller's
// row in that in-memory copy and replace the whole table with it. Nothing is
// cached between calls and nothing is locked: two writes to the same table
// that overlap lose one of the updates, even when they touch different
// users' rows.
package sheetstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/showerplanner/internal/models"
	"github.com/mmynk/showerplanner/internal/sheet"
	"github.com/mmynk/showerplanner/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store is the record store over a tabular backend.
type Store struct {
	backend sheet.Backend
	layout  Layout
}

// New creates a store that keeps its collections in backend according to layout.
func New(backend sheet.Backend, layout Layout) *Store {
	return &Store{
		backend: backend,
		layout:  layout,
	}
}

// Layout returns the table layout the store was created with.
func (s *Store) Layout() Layout {
	return s.layout
}

// CreateUser implements storage.Store.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if err := checkUsername(user.Username); err != nil {
		return err
	}

	table := s.layout.Table(Users)
	tbl, err := s.read(ctx, table)
	if err != nil {
		return err
	}
	if tbl.Index(colUsername, user.Username) >= 0 {
		return fmt.Errorf("%w: %s", storage.ErrUserExists, user.Username)
	}

	upsert(tbl, Users, user.Username, sheet.Record{
		colEmail:    user.Email,
		colName:     user.DisplayName,
		colPassword: user.PasswordHash,
	})
	return s.write(ctx, table, tbl)
}

// GetUser implements storage.Store.
func (s *Store) GetUser(ctx context.Context, username string) (*models.User, error) {
	rec, err := s.find(ctx, Users, username)
	if err != nil || rec == nil {
		return nil, err
	}
	return userFromRecord(rec), nil
}

// ListUsers implements storage.Store.
func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	tbl, err := s.read(ctx, s.layout.Table(Users))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var users []*models.User
	for _, rec := range tbl.Records {
		name := rec[colUsername]
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		users = append(users, userFromRecord(rec))
	}
	return users, nil
}

// UpdatePasswordHash implements storage.Store.
func (s *Store) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	if err := checkUsername(username); err != nil {
		return err
	}

	table := s.layout.Table(Users)
	tbl, err := s.read(ctx, table)
	if err != nil {
		return err
	}
	i := tbl.Index(colUsername, username)
	if i < 0 {
		return fmt.Errorf("%w: %s", storage.ErrUserNotFound, username)
	}
	tbl.Records[i][colPassword] = passwordHash
	return s.write(ctx, table, tbl)
}

func userFromRecord(rec sheet.Record) *models.User {
	return &models.User{
		Username:     rec[colUsername],
		Email:        rec[colEmail],
		DisplayName:  rec[colName],
		PasswordHash: rec[colPassword],
	}
}

// read fetches a whole table.
func (s *Store) read(ctx context.Context, table string) (*sheet.Table, error) {
	tbl, err := s.backend.ReadAll(ctx, table)
	if err != nil {
		return nil, translate(err, "read", table)
	}
	return tbl, nil
}

// write replaces a whole table.
func (s *Store) write(ctx context.Context, table string, tbl *sheet.Table) error {
	if err := s.backend.ReplaceAll(ctx, table, tbl); err != nil {
		return translate(err, "write", table)
	}
	return nil
}

// find returns the user's row of collection c, or nil if there is none.
func (s *Store) find(ctx context.Context, c Collection, username string) (sheet.Record, error) {
	if err := checkUsername(username); err != nil {
		return nil, err
	}
	tbl, err := s.read(ctx, s.layout.Table(c))
	if err != nil {
		return nil, err
	}
	i := tbl.Index(colUsername, username)
	if i < 0 {
		return nil, nil
	}
	return tbl.Records[i], nil
}

// update upserts the user's cells of collection c and writes the table back.
func (s *Store) update(ctx context.Context, c Collection, username string, cells sheet.Record) error {
	if err := checkUsername(username); err != nil {
		return err
	}
	table := s.layout.Table(c)
	tbl, err := s.read(ctx, table)
	if err != nil {
		return err
	}
	upsert(tbl, c, username, cells)
	return s.write(ctx, table, tbl)
}

// upsert overwrites the first row of username with cells, or appends a new
// row when there is none. Missing columns are added to the header.
func upsert(tbl *sheet.Table, c Collection, username string, cells sheet.Record) {
	tbl.EnsureColumns(colUsername)
	tbl.EnsureColumns(columns[c]...)

	i := tbl.Index(colUsername, username)
	if i < 0 {
		tbl.Records = append(tbl.Records, sheet.Record{colUsername: username})
		i = len(tbl.Records) - 1
	}
	for col, v := range cells {
		tbl.Records[i][col] = v
	}
}

// getValue reads the user's row of c and decodes it. A missing row yields
// the zero value; an undecodable row is logged and also yields the zero value.
func getValue[T any](ctx context.Context, s *Store, c Collection, username string, decode func(sheet.Record) (T, error)) (T, error) {
	var zero T
	rec, err := s.find(ctx, c, username)
	if err != nil || rec == nil {
		return zero, err
	}
	v, err := decode(rec)
	if err != nil {
		slog.Warn("Discarding malformed cell",
			"collection", c,
			"table", s.layout.Table(c),
			"username", username,
			"error", err,
		)
		return zero, nil
	}
	return v, nil
}

func checkUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: empty username", storage.ErrInvalidValue)
	}
	return nil
}

// translate maps backend errors onto the storage error set.
func translate(err error, op, table string) error {
	switch {
	case errors.Is(err, sheet.ErrTableNotFound):
		return fmt.Errorf("%w: failed to %s %s: %w", storage.ErrTableMissing, op, table, err)
	case errors.Is(err, sheet.ErrWrite):
		return fmt.Errorf("%w: failed to %s %s: %w", storage.ErrWriteFailed, op, table, err)
	default:
		return fmt.Errorf("%w: failed to %s %s: %w", storage.ErrUnavailable, op, table, err)
	}
}
