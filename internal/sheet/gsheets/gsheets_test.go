package gsheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/mmynk/showerplanner/internal/sheet"
)

const testSpreadsheet = "sheet-123"

// fakeSheets serves the subset of the values API the backend uses.
type fakeSheets struct {
	mu        sync.Mutex
	tabs      map[string][][]interface{}
	failWrite bool
	forbidden bool
	writes    int
}

func (f *fakeSheets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.forbidden {
		writeAPIError(w, http.StatusForbidden, "The caller does not have permission", "PERMISSION_DENIED")
		return
	}

	prefix := "/v4/spreadsheets/" + testSpreadsheet + "/values/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		http.NotFound(w, r)
		return
	}
	rng := strings.TrimPrefix(r.URL.Path, prefix)
	clear := strings.HasSuffix(rng, ":clear")
	rng = strings.TrimSuffix(rng, ":clear")
	tab := strings.ReplaceAll(strings.Trim(rng, "'"), "''", "'")

	rows, ok := f.tabs[tab]
	if !ok {
		writeAPIError(w, http.StatusBadRequest, "Unable to parse range: "+rng, "INVALID_ARGUMENT")
		return
	}

	switch {
	case r.Method == http.MethodGet:
		json.NewEncoder(w).Encode(map[string]interface{}{
			"range":          rng,
			"majorDimension": "ROWS",
			"values":         rows,
		})
	case r.Method == http.MethodPost && clear:
		f.writes++
		f.tabs[tab] = nil
		json.NewEncoder(w).Encode(map[string]interface{}{"clearedRange": rng})
	case r.Method == http.MethodPut:
		f.writes++
		if f.failWrite {
			writeAPIError(w, http.StatusBadRequest, "Invalid value at 'data.values'", "INVALID_ARGUMENT")
			return
		}
		if got := r.URL.Query().Get("valueInputOption"); got != "RAW" {
			writeAPIError(w, http.StatusBadRequest, "valueInputOption must be RAW, got "+got, "INVALID_ARGUMENT")
			return
		}
		var body struct {
			Values [][]interface{} `json:"values"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeAPIError(w, http.StatusBadRequest, err.Error(), "INVALID_ARGUMENT")
			return
		}
		f.tabs[tab] = body.Values
		json.NewEncoder(w).Encode(map[string]interface{}{"updatedRange": rng})
	default:
		http.Error(w, "unsupported", http.StatusMethodNotAllowed)
	}
}

func (f *fakeSheets) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func (f *fakeSheets) tab(name string) [][]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tabs[name]
}

func writeAPIError(w http.ResponseWriter, code int, msg, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{"code": code, "message": msg, "status": status},
	})
}

func setupFake(t *testing.T) (*fakeSheets, *Backend) {
	t.Helper()
	fake := &fakeSheets{tabs: map[string][][]interface{}{
		"users": {
			{"username", "email", "budget"},
			{"ana", "ana@example.com", 500},
		},
		"guests": nil,
	}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	b, err := NewWithOptions(context.Background(), testSpreadsheet,
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return fake, b
}

func TestReadAll(t *testing.T) {
	_, b := setupFake(t)

	tbl, err := b.ReadAll(context.Background(), "users")
	require.NoError(t, err)
	require.Equal(t, []string{"username", "email", "budget"}, tbl.Header)
	require.Equal(t, []sheet.Record{{"username": "ana", "email": "ana@example.com", "budget": "500"}}, tbl.Records)

	empty, err := b.ReadAll(context.Background(), "guests")
	require.NoError(t, err)
	require.Empty(t, empty.Records)
}

func TestReadAll_MissingTab(t *testing.T) {
	_, b := setupFake(t)

	_, err := b.ReadAll(context.Background(), "gifts")
	require.ErrorIs(t, err, sheet.ErrTableNotFound)
}

func TestReadAll_PermissionDenied(t *testing.T) {
	fake, b := setupFake(t)
	fake.forbidden = true

	_, err := b.ReadAll(context.Background(), "users")
	require.ErrorIs(t, err, sheet.ErrConnection)
}

func TestReplaceAll(t *testing.T) {
	fake, b := setupFake(t)
	ctx := context.Background()

	tbl := &sheet.Table{
		Header: []string{"username", "guests"},
		Records: []sheet.Record{
			{"username": "ana", "guests": `"Silva, Bia",Caio`},
		},
	}
	require.NoError(t, b.ReplaceAll(ctx, "guests", tbl))
	require.Equal(t, [][]interface{}{
		{"username", "guests"},
		{"ana", `"Silva, Bia",Caio`},
	}, fake.tab("guests"))

	got, err := b.ReadAll(ctx, "guests")
	require.NoError(t, err)
	require.Equal(t, tbl.Records, got.Records)
}

func TestReplaceAll_UpdateFailsAfterClear(t *testing.T) {
	fake, b := setupFake(t)
	fake.failWrite = true

	err := b.ReplaceAll(context.Background(), "users", &sheet.Table{Header: []string{"username"}})
	require.ErrorIs(t, err, sheet.ErrWrite)
	require.Empty(t, fake.tab("users"), "the clear already happened")
}

func TestReplaceAll_OversizedCellLeavesTabAlone(t *testing.T) {
	fake, b := setupFake(t)
	before := fake.tab("users")

	tbl := &sheet.Table{
		Header: []string{"username", "games"},
		Records: []sheet.Record{
			{"username": "ana", "games": "[]"},
			{"username": "bia", "games": strings.Repeat("é", maxCellChars+1)},
		},
	}
	err := b.ReplaceAll(context.Background(), "users", tbl)
	require.ErrorIs(t, err, sheet.ErrWrite)
	require.Zero(t, fake.writeCount())
	require.Equal(t, before, fake.tab("users"))

	// Exactly at the limit is still written.
	tbl.Records[1]["games"] = strings.Repeat("é", maxCellChars)
	require.NoError(t, b.ReplaceAll(context.Background(), "users", tbl))
	require.Equal(t, 2, fake.writeCount())
}

func TestTabRange(t *testing.T) {
	require.Equal(t, "'Guests'", tabRange("Guests"))
	require.Equal(t, "'Ana''s plan'", tabRange("Ana's plan"))
}
