package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/showerplanner/internal/auth"
	"github.com/mmynk/showerplanner/internal/models"
	"github.com/mmynk/showerplanner/internal/sheet/memory"
	"github.com/mmynk/showerplanner/internal/storage"
	"github.com/mmynk/showerplanner/internal/storage/sheetstore"
)

func newTestStore(t *testing.T) (*sheetstore.Store, *memory.Backend) {
	t.Helper()
	layout := sheetstore.SingleSheet("Sheet1")
	backend := memory.New(layout.Tables()...)
	return sheetstore.New(backend, layout), backend
}

// run executes plannerctl with args against store and returns its output.
func run(t *testing.T, store storage.Store, args ...string) (string, error) {
	t.Helper()
	open := func(ctx context.Context) (storage.Store, func() error, error) {
		return store, func() error { return nil }, nil
	}

	var out bytes.Buffer
	cmd := newRootCmd(open)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUsersList(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	require.NoError(t, store.CreateUser(ctx, models.NewUser("alice", "alice@example.com", "Alice", hash)))
	require.NoError(t, store.CreateUser(ctx, models.NewUser("bob", "bob@example.com", "Bob", "legacy-plain")))

	out, err := run(t, store, "users", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "alice")
	assert.Contains(t, lines[1], "hashed")
	assert.Contains(t, lines[2], "bob")
	assert.Contains(t, lines[2], "plaintext")
}

func TestHashPasswords(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, models.NewUser("alice", "a@example.com", "Alice", "plain-secret")))
	require.NoError(t, store.CreateUser(ctx, models.NewUser("carol", "c@example.com", "Carol", "")))

	out, err := run(t, store, "users", "hash-passwords", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Would hash 1 password(s)")

	user, err := store.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "plain-secret", user.PasswordHash, "dry run must not write")

	out, err = run(t, store, "users", "hash-passwords")
	require.NoError(t, err)
	assert.Contains(t, out, "Hashed 1 password(s)")

	// The old password now logs in against the hash.
	authenticator := auth.NewPasswordAuthenticator(store)
	_, err = authenticator.Authenticate(ctx, "alice", "plain-secret")
	require.NoError(t, err)

	// Running again finds nothing to do.
	out, err = run(t, store, "users", "hash-passwords")
	require.NoError(t, err)
	assert.Contains(t, out, "Hashed 0 password(s)")

	carol, err := store.GetUser(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, carol.PasswordHash)
}

func TestReset(t *testing.T) {
	store, backend := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, models.NewUser("alice", "a@example.com", "Alice", "hash")))
	require.NoError(t, store.SetGuests(ctx, "alice", []string{"Carla"}))

	_, err := run(t, store, "reset", "alice")
	require.Error(t, err, "reset without --yes must refuse")
	guests, err := store.GetGuests(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Carla"}, guests)

	out, err := run(t, store, "reset", "alice", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Reset planning data of alice")

	guests, err = store.GetGuests(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, guests)
	user, err := store.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)

	before := backend.ReplaceCalls("Sheet1")
	_, err = run(t, store, "reset", "nobody", "--yes")
	require.ErrorIs(t, err, storage.ErrUserNotFound)
	assert.Equal(t, before, backend.ReplaceCalls("Sheet1"))
}

func TestExport(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateUser(ctx, models.NewUser("alice", "a@example.com", "Alice", "hash")))
	require.NoError(t, store.SetEvent(ctx, "alice", models.Event{
		Babies: []models.Baby{{Name: "Ana", Sex: models.SexGirl}},
		Date:   time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, store.SetChecklist(ctx, "alice", []models.Task{{Name: "Cake", Done: true}}))
	require.NoError(t, store.SetBudget(ctx, "alice", 500))
	require.NoError(t, store.SetExpenses(ctx, "alice", []models.Expense{
		{Description: "Cake", Amount: 120.5, PaymentMethod: models.PaymentPix},
	}))

	out, err := run(t, store, "export", "alice")
	require.NoError(t, err)

	var doc export
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "alice", doc.Username)
	assert.Equal(t, "2026-03-15", doc.Event.Date)
	require.Len(t, doc.Event.Babies, 1)
	assert.Equal(t, "girl", doc.Event.Babies[0].Sex)
	assert.Equal(t, []exportTask{{Name: "Cake", Done: true}}, doc.Checklist)
	assert.Equal(t, 500.0, doc.Budget)
	require.Len(t, doc.Expenses, 1)
	assert.Equal(t, models.PaymentPix, doc.Expenses[0].PaymentMethod)
	assert.Empty(t, doc.Guests)

	_, err = run(t, store, "export", "nobody")
	require.ErrorIs(t, err, storage.ErrUserNotFound)
}
