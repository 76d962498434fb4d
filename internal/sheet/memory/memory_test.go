package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mmynk/showerplanner/internal/sheet"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestReadAll_MissingTable(t *testing.T) {
	b := New("users")
	_, err := b.ReadAll(context.Background(), "guests")
	require.ErrorIs(t, err, sheet.ErrTableNotFound)
}

func TestReadAll_EmptyTable(t *testing.T) {
	b := New("users")
	tbl, err := b.ReadAll(context.Background(), "users")
	require.NoError(t, err)
	require.Empty(t, tbl.Records)
	require.Empty(t, tbl.Header)
}

func TestReplaceAll_WritesHeaderAndRows(t *testing.T) {
	b := New("guests")
	ctx := context.Background()

	tbl := &sheet.Table{
		Header: []string{"username", "guests"},
		Records: []sheet.Record{
			{"username": "ana", "guests": "Bia,Caio"},
			{"username": "bob", "guests": ""},
		},
	}
	require.NoError(t, b.ReplaceAll(ctx, "guests", tbl))
	require.Equal(t, [][]string{
		{"username", "guests"},
		{"ana", "Bia,Caio"},
		{"bob", ""},
	}, b.Rows("guests"))
	require.Equal(t, 1, b.ReplaceCalls("guests"))

	got, err := b.ReadAll(ctx, "guests")
	require.NoError(t, err)
	require.Equal(t, tbl.Records, got.Records)
}

func TestReadAll_ReturnsSnapshot(t *testing.T) {
	b := New()
	b.Load("users", [][]string{{"username"}, {"ana"}})
	ctx := context.Background()

	tbl, err := b.ReadAll(ctx, "users")
	require.NoError(t, err)
	tbl.Records[0]["username"] = "mutated"

	require.Equal(t, "ana", b.Rows("users")[1][0])
}

func TestFaults(t *testing.T) {
	b := New()
	b.Load("users", [][]string{{"username"}, {"ana"}})
	ctx := context.Background()

	b.FailReads(errors.New("dial tcp: timeout"))
	_, err := b.ReadAll(ctx, "users")
	require.ErrorIs(t, err, sheet.ErrConnection)
	b.FailReads(nil)

	b.FailWrites(errors.New("quota exceeded"), false)
	err = b.ReplaceAll(ctx, "users", &sheet.Table{Header: []string{"username"}})
	require.ErrorIs(t, err, sheet.ErrWrite)
	require.Len(t, b.Rows("users"), 2, "table must be untouched without clear")

	b.FailWrites(errors.New("quota exceeded"), true)
	err = b.ReplaceAll(ctx, "users", &sheet.Table{Header: []string{"username"}})
	require.ErrorIs(t, err, sheet.ErrWrite)
	require.Empty(t, b.Rows("users"), "clear-then-fail leaves the table empty")
}

func TestConcurrentReplace_LastWriterWins(t *testing.T) {
	b := New("guests")
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, name := range []string{"ana", "bob", "caio", "duda"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			tbl := &sheet.Table{
				Header:  []string{"username"},
				Records: []sheet.Record{{"username": name}},
			}
			assert.NoError(t, b.ReplaceAll(ctx, "guests", tbl))
		}(name)
	}
	wg.Wait()

	rows := b.Rows("guests")
	require.Len(t, rows, 2, "each replace rewrites the whole table, only one survives")
}

func TestCanceledContext(t *testing.T) {
	b := New("users")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.ReadAll(ctx, "users")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, b.ReplaceAll(ctx, "users", &sheet.Table{}), context.Canceled)
}
