package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/showerplanner/internal/models"
	"github.com/mmynk/showerplanner/internal/summary"
	"github.com/mmynk/showerplanner/pkg/api"
)

// Guests

func (s *PlannerService) ListGuests(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.GuestsResponse], error) {
	username, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	guests, err := s.store.GetGuests(ctx, username)
	if err != nil {
		return nil, storeError("load guests", err)
	}
	return guestsResponse(guests), nil
}

// AddGuest appends a guest. Names are unique within the list.
func (s *PlannerService) AddGuest(ctx context.Context, req *connect.Request[api.AddGuestRequest]) (*connect.Response[api.GuestsResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("guest name is required")
	}

	username, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}
	guests, err := s.store.GetGuests(ctx, username)
	if err != nil {
		return nil, storeError("load guests", err)
	}
	if slices.Contains(guests, name) {
		return nil, connect.NewError(connect.CodeAlreadyExists, fmt.Errorf("guest %q is already on the list", name))
	}

	guests = append(guests, name)
	if err := s.store.SetGuests(ctx, username, guests); err != nil {
		slog.Error("AddGuest failed", "username", username, "error", err)
		return nil, storeError("save guests", err)
	}
	slog.Info("Guest added", "username", username, "guests", len(guests))
	return guestsResponse(guests), nil
}

// RemoveGuest removes the guest with the given name.
func (s *PlannerService) RemoveGuest(ctx context.Context, req *connect.Request[api.RemoveGuestRequest]) (*connect.Response[api.GuestsResponse], error) {
	username, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}
	guests, err := s.store.GetGuests(ctx, username)
	if err != nil {
		return nil, storeError("load guests", err)
	}

	i := slices.Index(guests, strings.TrimSpace(req.Msg.Name))
	if i < 0 {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("guest %q not found", req.Msg.Name))
	}
	guests = slices.Delete(guests, i, i+1)
	if err := s.store.SetGuests(ctx, username, guests); err != nil {
		return nil, storeError("save guests", err)
	}
	return guestsResponse(guests), nil
}

func guestsResponse(guests []string) *connect.Response[api.GuestsResponse] {
	if guests == nil {
		guests = []string{}
	}
	return connect.NewResponse(&api.GuestsResponse{Guests: guests})
}

// Checklist

func (s *PlannerService) GetChecklist(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ChecklistResponse], error) {
	username, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.store.GetChecklist(ctx, username)
	if err != nil {
		return nil, storeError("load checklist", err)
	}
	return checklistResponse(tasks), nil
}

// AddTask appends a pending task.
func (s *PlannerService) AddTask(ctx context.Context, req *connect.Request[api.AddTaskRequest]) (*connect.Response[api.ChecklistResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("task name is required")
	}
	return s.updateChecklist(ctx, func(tasks []models.Task) ([]models.Task, error) {
		return append(tasks, models.Task{Name: name}), nil
	})
}

func (s *PlannerService) SetTaskDone(ctx context.Context, req *connect.Request[api.SetTaskDoneRequest]) (*connect.Response[api.ChecklistResponse], error) {
	return s.updateChecklist(ctx, func(tasks []models.Task) ([]models.Task, error) {
		if err := checkIndex(len(tasks), req.Msg.Index); err != nil {
			return nil, err
		}
		tasks[req.Msg.Index].Done = req.Msg.Done
		return tasks, nil
	})
}

func (s *PlannerService) RemoveTask(ctx context.Context, req *connect.Request[api.IndexRequest]) (*connect.Response[api.ChecklistResponse], error) {
	return s.updateChecklist(ctx, func(tasks []models.Task) ([]models.Task, error) {
		return removeAt(tasks, req.Msg.Index)
	})
}

func (s *PlannerService) updateChecklist(ctx context.Context, change func([]models.Task) ([]models.Task, error)) (*connect.Response[api.ChecklistResponse], error) {
	username, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.store.GetChecklist(ctx, username)
	if err != nil {
		return nil, storeError("load checklist", err)
	}
	tasks, err = change(tasks)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetChecklist(ctx, username, tasks); err != nil {
		slog.Error("Checklist update failed", "username", username, "error", err)
		return nil, storeError("save checklist", err)
	}
	return checklistResponse(tasks), nil
}

func checklistResponse(tasks []models.Task) *connect.Response[api.ChecklistResponse] {
	return connect.NewResponse(&api.ChecklistResponse{
		Tasks:   toAPITasks(tasks),
		Pending: summary.PendingTasks(tasks),
	})
}

// Budget and expenses

func (s *PlannerService) GetBudget(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.BudgetResponse], error) {
	username, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	return s.budgetResponse(ctx, username)
}

// SetBudget replaces the total budget. Must be a finite non-negative amount.
func (s *PlannerService) SetBudget(ctx context.Context, req *connect.Request[api.SetBudgetRequest]) (*connect.Response[api.BudgetResponse], error) {
	if err := checkAmount("budget", req.Msg.Budget); err != nil {
		return nil, err
	}
	username, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetBudget(ctx, username, req.Msg.Budget); err != nil {
		slog.Error("SetBudget failed", "username", username, "error", err)
		return nil, storeError("save budget", err)
	}
	slog.Info("Budget set", "username", username, "budget", req.Msg.Budget)
	return s.budgetResponse(ctx, username)
}

func (s *PlannerService) budgetResponse(ctx context.Context, username string) (*connect.Response[api.BudgetResponse], error) {
	budget, err := s.store.GetBudget(ctx, username)
	if err != nil {
		return nil, storeError("load budget", err)
	}
	expenses, err := s.store.GetExpenses(ctx, username)
	if err != nil {
		return nil, storeError("load expenses", err)
	}
	return connect.NewResponse(toAPIBudget(summary.BudgetSummary(budget, expenses))), nil
}

func (s *PlannerService) ListExpenses(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.ExpensesResponse], error) {
	username, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.GetExpenses(ctx, username)
	if err != nil {
		return nil, storeError("load expenses", err)
	}
	return expensesResponse(expenses), nil
}

// AddExpense records a purchase. An empty payment method means "other".
func (s *PlannerService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.ExpensesResponse], error) {
	e := req.Msg.Expense
	if e == nil {
		return nil, invalidArgument("expense is required")
	}
	expense := models.Expense{
		Description:   strings.TrimSpace(e.Description),
		Amount:        e.Amount,
		PaymentMethod: models.PaymentMethod(e.PaymentMethod),
	}
	if expense.Description == "" {
		return nil, invalidArgument("expense description is required")
	}
	if err := checkAmount("amount", expense.Amount); err != nil {
		return nil, err
	}
	if expense.Amount == 0 {
		return nil, invalidArgument("amount must be greater than zero")
	}
	if expense.PaymentMethod == "" {
		expense.PaymentMethod = models.PaymentOther
	}
	if !expense.PaymentMethod.Valid() {
		return nil, invalidArgument("unknown payment method %q", e.PaymentMethod)
	}

	return s.updateExpenses(ctx, func(expenses []models.Expense) ([]models.Expense, error) {
		return append(expenses, expense), nil
	})
}

func (s *PlannerService) RemoveExpense(ctx context.Context, req *connect.Request[api.IndexRequest]) (*connect.Response[api.ExpensesResponse], error) {
	return s.updateExpenses(ctx, func(expenses []models.Expense) ([]models.Expense, error) {
		return removeAt(expenses, req.Msg.Index)
	})
}

func (s *PlannerService) updateExpenses(ctx context.Context, change func([]models.Expense) ([]models.Expense, error)) (*connect.Response[api.ExpensesResponse], error) {
	username, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.GetExpenses(ctx, username)
	if err != nil {
		return nil, storeError("load expenses", err)
	}
	expenses, err = change(expenses)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetExpenses(ctx, username, expenses); err != nil {
		slog.Error("Expenses update failed", "username", username, "error", err)
		return nil, storeError("save expenses", err)
	}
	return expensesResponse(expenses), nil
}

func expensesResponse(expenses []models.Expense) *connect.Response[api.ExpensesResponse] {
	return connect.NewResponse(&api.ExpensesResponse{
		Expenses: toAPIExpenses(expenses),
		Total:    summary.TotalSpent(expenses),
	})
}

func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return invalidArgument("%s must be a non-negative amount", field)
	}
	return nil
}

// Gifts

func (s *PlannerService) ListGifts(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.GiftsResponse], error) {
	username, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	gifts, err := s.store.GetGifts(ctx, username)
	if err != nil {
		return nil, storeError("load gifts", err)
	}
	return giftsResponse(gifts), nil
}

func (s *PlannerService) AddGift(ctx context.Context, req *connect.Request[api.AddGiftRequest]) (*connect.Response[api.GiftsResponse], error) {
	gift := models.Gift{
		Guest:       strings.TrimSpace(req.Msg.Guest),
		Description: strings.TrimSpace(req.Msg.Description),
	}
	if gift.Guest == "" || gift.Description == "" {
		return nil, invalidArgument("gift needs a guest and a description")
	}
	return s.updateGifts(ctx, func(gifts []models.Gift) ([]models.Gift, error) {
		return append(gifts, gift), nil
	})
}

func (s *PlannerService) SetGiftThanked(ctx context.Context, req *connect.Request[api.SetGiftThankedRequest]) (*connect.Response[api.GiftsResponse], error) {
	return s.updateGifts(ctx, func(gifts []models.Gift) ([]models.Gift, error) {
		if err := checkIndex(len(gifts), req.Msg.Index); err != nil {
			return nil, err
		}
		gifts[req.Msg.Index].ThankYouSent = req.Msg.Sent
		return gifts, nil
	})
}

func (s *PlannerService) RemoveGift(ctx context.Context, req *connect.Request[api.IndexRequest]) (*connect.Response[api.GiftsResponse], error) {
	return s.updateGifts(ctx, func(gifts []models.Gift) ([]models.Gift, error) {
		return removeAt(gifts, req.Msg.Index)
	})
}

func (s *PlannerService) updateGifts(ctx context.Context, change func([]models.Gift) ([]models.Gift, error)) (*connect.Response[api.GiftsResponse], error) {
	username, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}
	gifts, err := s.store.GetGifts(ctx, username)
	if err != nil {
		return nil, storeError("load gifts", err)
	}
	gifts, err = change(gifts)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetGifts(ctx, username, gifts); err != nil {
		slog.Error("Gifts update failed", "username", username, "error", err)
		return nil, storeError("save gifts", err)
	}
	return giftsResponse(gifts), nil
}

func giftsResponse(gifts []models.Gift) *connect.Response[api.GiftsResponse] {
	return connect.NewResponse(&api.GiftsResponse{Gifts: toAPIGifts(gifts)})
}

// Suggestions

func (s *PlannerService) ListSuggestions(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.SuggestionsResponse], error) {
	username, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	suggestions, err := s.store.GetSuggestions(ctx, username)
	if err != nil {
		return nil, storeError("load suggestions", err)
	}
	return suggestionsResponse(suggestions), nil
}

func (s *PlannerService) AddSuggestion(ctx context.Context, req *connect.Request[api.AddSuggestionRequest]) (*connect.Response[api.SuggestionsResponse], error) {
	if req.Msg.Suggestion == nil || strings.TrimSpace(req.Msg.Suggestion.Item) == "" {
		return nil, invalidArgument("suggestion item is required")
	}
	suggestion := models.Suggestion{
		Item:    strings.TrimSpace(req.Msg.Suggestion.Item),
		Details: strings.TrimSpace(req.Msg.Suggestion.Details),
	}
	return s.updateSuggestions(ctx, func(suggestions []models.Suggestion) ([]models.Suggestion, error) {
		return append(suggestions, suggestion), nil
	})
}

func (s *PlannerService) RemoveSuggestion(ctx context.Context, req *connect.Request[api.IndexRequest]) (*connect.Response[api.SuggestionsResponse], error) {
	return s.updateSuggestions(ctx, func(suggestions []models.Suggestion) ([]models.Suggestion, error) {
		return removeAt(suggestions, req.Msg.Index)
	})
}

func (s *PlannerService) updateSuggestions(ctx context.Context, change func([]models.Suggestion) ([]models.Suggestion, error)) (*connect.Response[api.SuggestionsResponse], error) {
	username, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}
	suggestions, err := s.store.GetSuggestions(ctx, username)
	if err != nil {
		return nil, storeError("load suggestions", err)
	}
	suggestions, err = change(suggestions)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetSuggestions(ctx, username, suggestions); err != nil {
		return nil, storeError("save suggestions", err)
	}
	return suggestionsResponse(suggestions), nil
}

func suggestionsResponse(suggestions []models.Suggestion) *connect.Response[api.SuggestionsResponse] {
	return connect.NewResponse(&api.SuggestionsResponse{Suggestions: toAPISuggestions(suggestions)})
}

// Games

func (s *PlannerService) ListGames(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[api.GamesResponse], error) {
	username, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	games, err := s.store.GetGames(ctx, username)
	if err != nil {
		return nil, storeError("load games", err)
	}
	return gamesResponse(games), nil
}

func (s *PlannerService) AddGame(ctx context.Context, req *connect.Request[api.AddGameRequest]) (*connect.Response[api.GamesResponse], error) {
	if req.Msg.Game == nil || strings.TrimSpace(req.Msg.Game.Name) == "" {
		return nil, invalidArgument("game name is required")
	}
	game := models.Game{
		Name:  strings.TrimSpace(req.Msg.Game.Name),
		Rules: strings.TrimSpace(req.Msg.Game.Rules),
	}
	return s.updateGames(ctx, func(games []models.Game) ([]models.Game, error) {
		return append(games, game), nil
	})
}

func (s *PlannerService) RemoveGame(ctx context.Context, req *connect.Request[api.IndexRequest]) (*connect.Response[api.GamesResponse], error) {
	return s.updateGames(ctx, func(games []models.Game) ([]models.Game, error) {
		return removeAt(games, req.Msg.Index)
	})
}

func (s *PlannerService) updateGames(ctx context.Context, change func([]models.Game) ([]models.Game, error)) (*connect.Response[api.GamesResponse], error) {
	username, err := s.writer(ctx)
	if err != nil {
		return nil, err
	}
	games, err := s.store.GetGames(ctx, username)
	if err != nil {
		return nil, storeError("load games", err)
	}
	games, err = change(games)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetGames(ctx, username, games); err != nil {
		return nil, storeError("save games", err)
	}
	return gamesResponse(games), nil
}

func gamesResponse(games []models.Game) *connect.Response[api.GamesResponse] {
	return connect.NewResponse(&api.GamesResponse{Games: toAPIGames(games)})
}
