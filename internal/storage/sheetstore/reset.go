package sheetstore

import (
	"context"
	"log/slog"
	"slices"

	"github.com/mmynk/showerplanner/internal/sheet"
)

// ResetAllDataForUser implements storage.Store.
//
// In the table holding users, every non-identity cell of the user's rows is
// blanked. Every other table loses the user's rows. Tables that already hold
// nothing for the user are not rewritten. A failure part way leaves earlier
// tables reset; running the reset again completes it.
func (s *Store) ResetAllDataForUser(ctx context.Context, username string) error {
	if err := checkUsername(username); err != nil {
		return err
	}

	usersTable := s.layout.Table(Users)
	for _, table := range s.layout.Tables() {
		tbl, err := s.read(ctx, table)
		if err != nil {
			return err
		}

		var changed bool
		if table == usersTable {
			changed = blankRows(tbl, username)
		} else {
			changed = removeRows(tbl, username)
		}
		if !changed {
			continue
		}

		if err := s.write(ctx, table, tbl); err != nil {
			return err
		}
		slog.Info("Reset user data", "table", table, "username", username)
	}
	return nil
}

// blankRows empties the non-identity cells of the user's rows.
func blankRows(tbl *sheet.Table, username string) bool {
	var changed bool
	for _, rec := range tbl.Records {
		if rec[colUsername] != username {
			continue
		}
		for _, col := range tbl.Header {
			if slices.Contains(identityColumns, col) || rec[col] == "" {
				continue
			}
			rec[col] = ""
			changed = true
		}
	}
	return changed
}

// removeRows drops the user's rows.
func removeRows(tbl *sheet.Table, username string) bool {
	n := len(tbl.Records)
	tbl.Records = slices.DeleteFunc(tbl.Records, func(rec sheet.Record) bool {
		return rec[colUsername] == username
	})
	return len(tbl.Records) != n
}
