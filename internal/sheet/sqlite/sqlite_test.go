package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/showerplanner/internal/sheet"
)

func newTestBackend(t *testing.T, tables ...string) *Backend {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "planner.db")
	b, err := New(context.Background(), dbPath, tables...)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestBackend(t *testing.T) {
	b := newTestBackend(t, "users", "guests")
	ctx := context.Background()

	t.Run("new table reads empty", func(t *testing.T) {
		tbl, err := b.ReadAll(ctx, "users")
		require.NoError(t, err)
		require.Empty(t, tbl.Header)
		require.Empty(t, tbl.Records)
	})

	t.Run("missing table", func(t *testing.T) {
		_, err := b.ReadAll(ctx, "gifts")
		require.ErrorIs(t, err, sheet.ErrTableNotFound)

		err = b.ReplaceAll(ctx, "gifts", &sheet.Table{Header: []string{"username"}})
		require.ErrorIs(t, err, sheet.ErrTableNotFound)
	})

	t.Run("replace then read keeps order and cells", func(t *testing.T) {
		tbl := &sheet.Table{
			Header: []string{"username", "guests"},
			Records: []sheet.Record{
				{"username": "ana", "guests": `"Silva, Bia",Caio`},
				{"username": "bob", "guests": ""},
				{"username": "caio", "guests": "Duda"},
			},
		}
		require.NoError(t, b.ReplaceAll(ctx, "guests", tbl))

		got, err := b.ReadAll(ctx, "guests")
		require.NoError(t, err)
		require.Equal(t, tbl.Header, got.Header)
		require.Equal(t, tbl.Records, got.Records)
	})

	t.Run("replace drops rows that are no longer present", func(t *testing.T) {
		tbl := &sheet.Table{
			Header:  []string{"username", "guests"},
			Records: []sheet.Record{{"username": "bob", "guests": "Eva"}},
		}
		require.NoError(t, b.ReplaceAll(ctx, "guests", tbl))

		got, err := b.ReadAll(ctx, "guests")
		require.NoError(t, err)
		require.Len(t, got.Records, 1)
		require.Equal(t, "Eva", got.Records[0]["guests"])
	})

	t.Run("tables are independent", func(t *testing.T) {
		got, err := b.ReadAll(ctx, "users")
		require.NoError(t, err)
		require.Empty(t, got.Records)
	})
}

func TestNew_ReopensExistingFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "planner.db")
	ctx := context.Background()

	b, err := New(ctx, dbPath, "users")
	require.NoError(t, err)
	require.NoError(t, b.ReplaceAll(ctx, "users", &sheet.Table{
		Header:  []string{"username", "email"},
		Records: []sheet.Record{{"username": "ana", "email": "ana@example.com"}},
	}))
	require.NoError(t, b.Close())

	reopened, err := New(ctx, dbPath, "users")
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.ReadAll(ctx, "users")
	require.NoError(t, err)
	require.Len(t, got.Records, 1)
	require.Equal(t, "ana@example.com", got.Records[0]["email"])
}
