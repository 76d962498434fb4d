// Package codec converts planner values to and from the flat string cells
// kept in a sheet.
//
// Every encoder has an exact inverse, and the empty string always decodes to
// the empty value of its type. Decoders are lenient about formats older rows
// may carry (unquoted lists, comma decimals, "Sim"/"Não" flags) but reject
// anything they cannot interpret with an error wrapping ErrDecode.
package codec

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrDecode reports a cell whose content does not match its expected format.
var ErrDecode = errors.New("malformed cell")

// ErrUnencodable reports a value the cell format cannot carry unchanged.
var ErrUnencodable = errors.New("value cannot be stored in a cell")

// List separators used by the planner columns.
const (
	GuestSep = ','
	TaskSep  = ';'
)

// DateLayout is the on-sheet form of an event date.
const DateLayout = time.DateOnly

// EncodeList joins items with sep, quoting any item that contains sep, a
// double quote, a line break or leading space.
func EncodeList(sep rune, items []string) string {
	switch {
	case len(items) == 0:
		return ""
	case len(items) == 1 && items[0] == "":
		// csv writes a lone empty field as a blank line
		return `""`
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Comma = sep
	if err := w.Write(items); err != nil {
		panic(fmt.Sprintf("codec: invalid list separator %q: %v", sep, err))
	}
	w.Flush()
	return strings.TrimSuffix(b.String(), "\n")
}

// CheckList reports items EncodeList cannot round-trip. A quoted CRLF reads
// back as a bare LF, so carriage returns are refused.
func CheckList(items []string) error {
	for i, item := range items {
		if strings.ContainsRune(item, '\r') {
			return fmt.Errorf("%w: list item %d contains a carriage return", ErrUnencodable, i)
		}
	}
	return nil
}

// DecodeList splits a cell produced by EncodeList. Plain sep-joined text
// without quoting decodes the same way.
func DecodeList(sep rune, cell string) ([]string, error) {
	if cell == "" {
		return nil, nil
	}

	r := csv.NewReader(strings.NewReader(cell))
	r.Comma = sep
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: list: %w", ErrDecode, err)
	}
	if len(records) != 1 {
		return nil, fmt.Errorf("%w: list spans %d lines", ErrDecode, len(records))
	}
	return records[0], nil
}

// EncodeFlags writes completion flags as 0/1 joined by TaskSep.
func EncodeFlags(flags []bool) string {
	parts := make([]string, len(flags))
	for i, f := range flags {
		if f {
			parts[i] = "1"
		} else {
			parts[i] = "0"
		}
	}
	return strings.Join(parts, string(TaskSep))
}

// DecodeFlags is the inverse of EncodeFlags.
func DecodeFlags(cell string) ([]bool, error) {
	if cell == "" {
		return nil, nil
	}
	parts := strings.Split(cell, string(TaskSep))
	flags := make([]bool, len(parts))
	for i, p := range parts {
		f, err := DecodeFlag(p)
		if err != nil {
			return nil, fmt.Errorf("flag %d: %w", i, err)
		}
		flags[i] = f
	}
	return flags, nil
}

// EncodeFlag writes a single yes/no cell.
func EncodeFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// DecodeFlag reads a single yes/no cell. Empty is false.
func DecodeFlag(cell string) (bool, error) {
	switch v := strings.TrimSpace(cell); strings.ToLower(v) {
	case "", "0", "false", "não", "nao", "no":
		return false, nil
	case "1", "true", "sim", "yes":
		return true, nil
	default:
		return false, fmt.Errorf("%w: flag %q", ErrDecode, v)
	}
}

// EncodeAmount writes a non-negative money amount as the shortest decimal
// that parses back to the same value.
func EncodeAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DecodeAmount reads an amount cell. Both "500.00" and "500,00" are accepted;
// when a cell carries both separators the last one is the decimal point.
func DecodeAmount(cell string) (float64, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, nil
	}

	comma, dot := strings.LastIndexByte(s, ','), strings.LastIndexByte(s, '.')
	switch {
	case comma > dot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case comma >= 0:
		s = strings.ReplaceAll(s, ",", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q", ErrDecode, cell)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: amount %q out of range", ErrDecode, cell)
	}
	return v, nil
}

// EncodeDate writes an event date, or "" when the date is undecided.
func EncodeDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// DecodeDate reads an event date cell. Full timestamps are truncated to
// their date.
func DecodeDate(cell string) (time.Time, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{DateLayout, time.RFC3339, "2006-01-02T15:04:05", time.DateTime} {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q", ErrDecode, cell)
}

// EncodeRecords writes a table as a JSON array of objects. An empty table is
// the empty cell.
func EncodeRecords[T any](records []T) (string, error) {
	if len(records) == 0 {
		return "", nil
	}
	b, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to encode records: %w", err)
	}
	return string(b), nil
}

// DecodeRecords is the inverse of EncodeRecords. "[]" and "null" also decode
// to an empty table. Objects with keys T does not declare, null elements and
// trailing data are malformed.
func DecodeRecords[T any](cell string) ([]T, error) {
	if strings.TrimSpace(cell) == "" {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := decodeStrict(cell, &raw); err != nil {
		return nil, fmt.Errorf("%w: records: %w", ErrDecode, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	records := make([]T, len(raw))
	for i, r := range raw {
		if strings.TrimSpace(string(r)) == "null" {
			return nil, fmt.Errorf("%w: record %d is null", ErrDecode, i)
		}
		if err := decodeStrict(string(r), &records[i]); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrDecode, i, err)
		}
	}
	return records, nil
}

func decodeStrict(s string, v any) error {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after value")
	}
	return nil
}
