// Package gsheets implements sheet.Backend on a Google Sheets spreadsheet,
// one tab per table.
//
// A replace is two API calls (clear, then update). If the update fails after
// the clear succeeded the tab is left empty; that is reported as
// sheet.ErrWrite and is not retried.
package gsheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/mmynk/showerplanner/internal/sheet"
)

// Ensure Backend implements sheet.Backend
var _ sheet.Backend = (*Backend)(nil)

// Backend talks to one spreadsheet through the Sheets v4 values API.
type Backend struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
}

// New connects with a service-account credentials file.
func New(ctx context.Context, spreadsheetID, credentialsFile string) (*Backend, error) {
	return NewWithOptions(ctx, spreadsheetID,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
}

// NewWithOptions builds a backend from arbitrary client options (endpoint,
// HTTP client, credentials).
func NewWithOptions(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*Backend, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("%w: spreadsheet id required", sheet.ErrConnection)
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create sheets client: %w", sheet.ErrConnection, err)
	}
	return &Backend{
		values:        svc.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
	}, nil
}

// ReadAll implements sheet.Backend.
func (b *Backend) ReadAll(ctx context.Context, table string) (*sheet.Table, error) {
	resp, err := b.values.Get(b.spreadsheetID, tabRange(table)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify(err, table)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = cellString(cell)
		}
	}
	return sheet.FromRows(rows), nil
}

// maxCellChars is the most characters the Sheets API keeps in one cell.
const maxCellChars = 50000

// ReplaceAll implements sheet.Backend. Rows with an oversized cell are
// refused before the tab is cleared.
func (b *Backend) ReplaceAll(ctx context.Context, table string, t *sheet.Table) error {
	rng := tabRange(table)

	rows := t.Rows()
	for i, row := range rows {
		for j, cell := range row {
			if n := utf8.RuneCountInString(cell); n > maxCellChars {
				return fmt.Errorf("%w: tab %s row %d column %d holds %d characters, limit is %d",
					sheet.ErrWrite, table, i+1, j+1, n, maxCellChars)
			}
		}
	}

	if _, err := b.values.Clear(b.spreadsheetID, rng, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return classify(err, table)
	}

	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = make([]interface{}, len(row))
		for j, cell := range row {
			values[i][j] = cell
		}
	}

	_, err := b.values.Update(b.spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: tab %s was cleared but not rewritten: %w", sheet.ErrWrite, table, err)
	}
	return nil
}

// tabRange addresses a whole tab in A1 notation.
func tabRange(table string) string {
	return "'" + strings.ReplaceAll(table, "'", "''") + "'"
}

func cellString(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}

// classify maps API failures onto the sheet error taxonomy.
func classify(err error, table string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "Unable to parse range") {
			return fmt.Errorf("%w: %s", sheet.ErrTableNotFound, table)
		}
	}
	return fmt.Errorf("%w: %w", sheet.ErrConnection, err)
}
