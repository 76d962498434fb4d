// Package storage provides abstractions for persistent planner data.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/showerplanner/internal/models"
)

// Errors returned by Store implementations. Backend failures are always
// wrapped in one of the first three; callers never see raw backend errors.
var (
	// ErrUnavailable means the backend could not be reached.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrTableMissing means a table the store expects does not exist.
	ErrTableMissing = errors.New("storage table missing")
	// ErrWriteFailed means a write failed part way and the table may have
	// been left incomplete.
	ErrWriteFailed = errors.New("storage write failed")

	// ErrInvalidValue rejects a value that cannot be stored as given.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUserExists is returned when registering a taken username.
	ErrUserExists = errors.New("username already registered")
	// ErrUserNotFound is returned by user updates for an unknown username.
	ErrUserNotFound = errors.New("user not found")
)

// Store defines the per-user record operations of the planner.
//
// Every collection has a Get/Set pair keyed by username. Get returns the
// collection's empty default when the user has no row yet or the stored cell
// is malformed; it returns an error only when the backend fails, and then the
// value is still the empty default. Set replaces the whole value.
type Store interface {
	// CreateUser adds a users row. Fails with ErrUserExists if the username is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser returns the user, or nil and no error if there is none.
	GetUser(ctx context.Context, username string) (*models.User, error)

	// ListUsers returns every registered user in table order.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// UpdatePasswordHash replaces the stored password hash of an existing user.
	UpdatePasswordHash(ctx context.Context, username, passwordHash string) error

	GetEvent(ctx context.Context, username string) (models.Event, error)
	SetEvent(ctx context.Context, username string, event models.Event) error

	GetGuests(ctx context.Context, username string) ([]string, error)
	SetGuests(ctx context.Context, username string, guests []string) error

	GetChecklist(ctx context.Context, username string) ([]models.Task, error)
	SetChecklist(ctx context.Context, username string, tasks []models.Task) error

	GetBudget(ctx context.Context, username string) (float64, error)
	SetBudget(ctx context.Context, username string, budget float64) error

	GetExpenses(ctx context.Context, username string) ([]models.Expense, error)
	SetExpenses(ctx context.Context, username string, expenses []models.Expense) error

	GetGifts(ctx context.Context, username string) ([]models.Gift, error)
	SetGifts(ctx context.Context, username string, gifts []models.Gift) error

	GetSuggestions(ctx context.Context, username string) ([]models.Suggestion, error)
	SetSuggestions(ctx context.Context, username string, suggestions []models.Suggestion) error

	GetGames(ctx context.Context, username string) ([]models.Game, error)
	SetGames(ctx context.Context, username string, games []models.Game) error

	// ResetAllDataForUser clears every collection of the user back to its
	// empty default. The user's identity (username, email, display name,
	// password hash) is left untouched. Calling it again is a no-op.
	ResetAllDataForUser(ctx context.Context, username string) error
}
