package sheetstore

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/mmynk/showerplanner/internal/codec"
	"github.com/mmynk/showerplanner/internal/models"
	"github.com/mmynk/showerplanner/internal/sheet"
	"github.com/mmynk/showerplanner/internal/storage"
)

// GetEvent implements storage.Store.
func (s *Store) GetEvent(ctx context.Context, username string) (models.Event, error) {
	return getValue(ctx, s, Event, username, decodeEvent)
}

// SetEvent implements storage.Store.
func (s *Store) SetEvent(ctx context.Context, username string, event models.Event) error {
	cells, err := encodeEvent(event)
	if err != nil {
		return err
	}
	return s.update(ctx, Event, username, cells)
}

// GetGuests implements storage.Store.
func (s *Store) GetGuests(ctx context.Context, username string) ([]string, error) {
	return getValue(ctx, s, Guests, username, func(rec sheet.Record) ([]string, error) {
		return codec.DecodeList(codec.GuestSep, rec[colGuests])
	})
}

// SetGuests implements storage.Store.
func (s *Store) SetGuests(ctx context.Context, username string, guests []string) error {
	if err := codec.CheckList(guests); err != nil {
		return fmt.Errorf("%w: guests: %w", storage.ErrInvalidValue, err)
	}
	return s.update(ctx, Guests, username, sheet.Record{
		colGuests: codec.EncodeList(codec.GuestSep, guests),
	})
}

// GetChecklist implements storage.Store.
func (s *Store) GetChecklist(ctx context.Context, username string) ([]models.Task, error) {
	return getValue(ctx, s, Checklist, username, decodeChecklist)
}

// SetChecklist implements storage.Store.
func (s *Store) SetChecklist(ctx context.Context, username string, tasks []models.Task) error {
	names := make([]string, len(tasks))
	done := make([]bool, len(tasks))
	for i, t := range tasks {
		names[i] = t.Name
		done[i] = t.Done
	}
	if err := codec.CheckList(names); err != nil {
		return fmt.Errorf("%w: checklist: %w", storage.ErrInvalidValue, err)
	}
	return s.update(ctx, Checklist, username, sheet.Record{
		colChecklistTasks: codec.EncodeList(codec.TaskSep, names),
		colChecklistDone:  codec.EncodeFlags(done),
	})
}

// GetBudget implements storage.Store.
func (s *Store) GetBudget(ctx context.Context, username string) (float64, error) {
	return getValue(ctx, s, Budget, username, func(rec sheet.Record) (float64, error) {
		return codec.DecodeAmount(rec[colBudget])
	})
}

// SetBudget implements storage.Store.
func (s *Store) SetBudget(ctx context.Context, username string, budget float64) error {
	if err := checkAmount(budget); err != nil {
		return fmt.Errorf("budget: %w", err)
	}
	return s.update(ctx, Budget, username, sheet.Record{
		colBudget: codec.EncodeAmount(budget),
	})
}

// GetExpenses implements storage.Store.
func (s *Store) GetExpenses(ctx context.Context, username string) ([]models.Expense, error) {
	return getValue(ctx, s, Expenses, username, decodeExpenses)
}

// SetExpenses implements storage.Store.
func (s *Store) SetExpenses(ctx context.Context, username string, expenses []models.Expense) error {
	for i, e := range expenses {
		if err := checkAmount(e.Amount); err != nil {
			return fmt.Errorf("expense %d: %w", i, err)
		}
		if e.PaymentMethod != "" && !e.PaymentMethod.Valid() {
			return fmt.Errorf("%w: expense %d: unknown payment method %q", storage.ErrInvalidValue, i, e.PaymentMethod)
		}
	}
	return setRecords(ctx, s, Expenses, colExpenses, username, expenses)
}

// GetGifts implements storage.Store.
func (s *Store) GetGifts(ctx context.Context, username string) ([]models.Gift, error) {
	return getRecords[models.Gift](ctx, s, Gifts, colGifts, username)
}

// SetGifts implements storage.Store.
func (s *Store) SetGifts(ctx context.Context, username string, gifts []models.Gift) error {
	return setRecords(ctx, s, Gifts, colGifts, username, gifts)
}

// GetSuggestions implements storage.Store.
func (s *Store) GetSuggestions(ctx context.Context, username string) ([]models.Suggestion, error) {
	return getRecords[models.Suggestion](ctx, s, Suggestions, colSuggestions, username)
}

// SetSuggestions implements storage.Store.
func (s *Store) SetSuggestions(ctx context.Context, username string, suggestions []models.Suggestion) error {
	return setRecords(ctx, s, Suggestions, colSuggestions, username, suggestions)
}

// GetGames implements storage.Store.
func (s *Store) GetGames(ctx context.Context, username string) ([]models.Game, error) {
	return getRecords[models.Game](ctx, s, Games, colGames, username)
}

// SetGames implements storage.Store.
func (s *Store) SetGames(ctx context.Context, username string, games []models.Game) error {
	return setRecords(ctx, s, Games, colGames, username, games)
}

func getRecords[T any](ctx context.Context, s *Store, c Collection, col, username string) ([]T, error) {
	return getValue(ctx, s, c, username, func(rec sheet.Record) ([]T, error) {
		return codec.DecodeRecords[T](rec[col])
	})
}

func setRecords[T any](ctx context.Context, s *Store, c Collection, col, username string, records []T) error {
	cell, err := codec.EncodeRecords(records)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrInvalidValue, err)
	}
	return s.update(ctx, c, username, sheet.Record{col: cell})
}

func checkAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: amount %v must be a non-negative number", storage.ErrInvalidValue, v)
	}
	return nil
}

// decodeExpenses refuses rows SetExpenses would not have written, so a
// hand-edited cell reads as empty instead of blocking later writes.
func decodeExpenses(rec sheet.Record) ([]models.Expense, error) {
	expenses, err := codec.DecodeRecords[models.Expense](rec[colExpenses])
	if err != nil {
		return nil, err
	}
	for i, e := range expenses {
		if checkAmount(e.Amount) != nil {
			return nil, fmt.Errorf("%w: expense %d amount %v", codec.ErrDecode, i, e.Amount)
		}
		if e.PaymentMethod == "" {
			expenses[i].PaymentMethod = models.PaymentOther
		} else if !e.PaymentMethod.Valid() {
			return nil, fmt.Errorf("%w: expense %d payment method %q", codec.ErrDecode, i, e.PaymentMethod)
		}
	}
	return expenses, nil
}

func decodeChecklist(rec sheet.Record) ([]models.Task, error) {
	names, err := codec.DecodeList(codec.TaskSep, rec[colChecklistTasks])
	if err != nil {
		return nil, err
	}
	done, err := codec.DecodeFlags(rec[colChecklistDone])
	if err != nil {
		return nil, err
	}
	if len(names) != len(done) {
		return nil, fmt.Errorf("%w: %d tasks but %d flags", codec.ErrDecode, len(names), len(done))
	}

	var tasks []models.Task
	for i, name := range names {
		tasks = append(tasks, models.Task{Name: name, Done: done[i]})
	}
	return tasks, nil
}

func encodeEvent(e models.Event) (sheet.Record, error) {
	if len(e.Babies) > models.MaxBabies {
		return nil, fmt.Errorf("%w: at most %d babies, got %d", storage.ErrInvalidValue, models.MaxBabies, len(e.Babies))
	}

	names := make([]string, len(e.Babies))
	sexes := make([]string, len(e.Babies))
	for i, b := range e.Babies {
		if err := codec.CheckList([]string{b.Name}); err != nil {
			return nil, fmt.Errorf("%w: baby name: %w", storage.ErrInvalidValue, err)
		}
		sex := b.Sex
		if sex == "" {
			sex = models.SexUndisclosed
		}
		if !sex.Valid() {
			return nil, fmt.Errorf("%w: unknown sex %q", storage.ErrInvalidValue, b.Sex)
		}
		names[i] = b.Name
		sexes[i] = string(sex)
	}

	return sheet.Record{
		colBabyNames:  codec.EncodeList(codec.GuestSep, names),
		colBabySexes:  codec.EncodeList(codec.GuestSep, sexes),
		colEventDate:  codec.EncodeDate(e.Date),
		colEventTitle: e.Title,
		colTwins:      codec.EncodeFlag(e.Twins),
	}, nil
}

func decodeEvent(rec sheet.Record) (models.Event, error) {
	names, err := codec.DecodeList(codec.GuestSep, rec[colBabyNames])
	if err != nil {
		return models.Event{}, err
	}
	sexes, err := codec.DecodeList(codec.GuestSep, rec[colBabySexes])
	if err != nil {
		return models.Event{}, err
	}
	if len(names) > models.MaxBabies || len(sexes) > len(names) {
		return models.Event{}, fmt.Errorf("%w: %d baby names with %d sexes", codec.ErrDecode, len(names), len(sexes))
	}

	var babies []models.Baby
	for i, name := range names {
		sex := models.SexUndisclosed
		if i < len(sexes) {
			if sex, err = parseSex(sexes[i]); err != nil {
				return models.Event{}, err
			}
		}
		babies = append(babies, models.Baby{Name: name, Sex: sex})
	}

	date, err := codec.DecodeDate(rec[colEventDate])
	if err != nil {
		return models.Event{}, err
	}
	twins, err := codec.DecodeFlag(rec[colTwins])
	if err != nil {
		return models.Event{}, err
	}

	return models.Event{
		Babies: babies,
		Date:   date,
		Title:  rec[colEventTitle],
		Twins:  twins,
	}, nil
}

// legacySexes maps the labels older sheets were filled with.
var legacySexes = map[string]models.Sex{
	"menina":               models.SexGirl,
	"menino":               models.SexBoy,
	"surpresa!":            models.SexSurprise,
	"surpresa":             models.SexSurprise,
	"não quero informar":   models.SexUndisclosed,
	"prefiro não informar": models.SexUndisclosed,
}

func parseSex(cell string) (models.Sex, error) {
	v := strings.ToLower(strings.TrimSpace(cell))
	if v == "" {
		return models.SexUndisclosed, nil
	}
	if sex := models.Sex(v); sex.Valid() {
		return sex, nil
	}
	if sex, ok := legacySexes[v]; ok {
		return sex, nil
	}
	return "", fmt.Errorf("%w: sex %q", codec.ErrDecode, cell)
}
