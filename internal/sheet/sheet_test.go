package sheet

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFromRows(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want *Table
	}{
		{
			name: "no rows",
			rows: nil,
			want: &Table{},
		},
		{
			name: "header only",
			rows: [][]string{{"username", "guests"}},
			want: &Table{Header: []string{"username", "guests"}},
		},
		{
			name: "short rows are padded",
			rows: [][]string{{"username", "guests", "budget"}, {"ana", "Bia"}},
			want: &Table{
				Header:  []string{"username", "guests", "budget"},
				Records: []Record{{"username": "ana", "guests": "Bia", "budget": ""}},
			},
		},
		{
			name: "blank rows and blank header cells are skipped",
			rows: [][]string{{"username", "", "budget"}, {"", "", ""}, {"ana", "junk", "10"}},
			want: &Table{
				Header:  []string{"username", "budget"},
				Records: []Record{{"username": "ana", "budget": "10"}},
			},
		},
		{
			name: "duplicate header keeps first column",
			rows: [][]string{{"username", "budget", "budget"}, {"ana", "10", "20"}},
			want: &Table{
				Header:  []string{"username", "budget"},
				Records: []Record{{"username": "ana", "budget": "10"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromRows(tt.rows)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromRows() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTableRowsRoundTrip(t *testing.T) {
	rows := [][]string{
		{"username", "email", "guests"},
		{"ana", "ana@example.com", `"Silva, Bia",Caio`},
		{"bob", "", ""},
	}
	got := FromRows(rows).Rows()
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestTableHelpers(t *testing.T) {
	tbl := FromRows([][]string{{"username"}, {"ana"}, {"bob"}, {"ana"}})

	if i := tbl.Index("username", "ana"); i != 0 {
		t.Errorf("Index(ana) = %d, want first match 0", i)
	}
	if i := tbl.Index("username", "zoe"); i != -1 {
		t.Errorf("Index(zoe) = %d, want -1", i)
	}

	tbl.EnsureColumns("username", "guests")
	if diff := cmp.Diff([]string{"username", "guests"}, tbl.Header); diff != "" {
		t.Errorf("EnsureColumns header mismatch (-want +got):\n%s", diff)
	}
	if got := tbl.Rows()[1]; got[1] != "" {
		t.Errorf("new column should read empty, got %q", got[1])
	}

	clone := tbl.Clone()
	clone.Records[0]["username"] = "changed"
	if tbl.Records[0]["username"] != "ana" {
		t.Error("Clone shares record maps with the original")
	}
}

type stubBackend struct {
	readErr  error
	writeErr error
}

func (s stubBackend) ReadAll(context.Context, string) (*Table, error) {
	return &Table{}, s.readErr
}

func (s stubBackend) ReplaceAll(context.Context, string, *Table) error {
	return s.writeErr
}

func TestInstrumentCountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	b := Instrument(stubBackend{
		readErr:  ErrTableNotFound,
		writeErr: errors.Join(ErrWrite, errors.New("quota")),
	}, reg)
	ctx := context.Background()

	_, _ = b.ReadAll(ctx, "guests")
	_ = b.ReplaceAll(ctx, "guests", &Table{})
	_ = b.ReplaceAll(ctx, "guests", &Table{})

	calls := b.(*instrumented).calls
	if got := testutil.ToFloat64(calls.WithLabelValues("guests", "read", "not_found")); got != 1 {
		t.Errorf("read not_found = %v, want 1", got)
	}
	if got := testutil.ToFloat64(calls.WithLabelValues("guests", "replace", "write_error")); got != 2 {
		t.Errorf("replace write_error = %v, want 2", got)
	}
}
