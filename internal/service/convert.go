package service

import (
	"github.com/mmynk/showerplanner/internal/codec"
	"github.com/mmynk/showerplanner/internal/models"
	"github.com/mmynk/showerplanner/internal/summary"
	"github.com/mmynk/showerplanner/pkg/api"
)

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
	}
}

func toAPIEvent(e models.Event) *api.Event {
	babies := make([]api.Baby, len(e.Babies))
	for i, b := range e.Babies {
		babies[i] = api.Baby{Name: b.Name, Sex: string(b.Sex)}
	}
	return &api.Event{
		Babies:     babies,
		Date:       codec.EncodeDate(e.Date),
		Title:      e.Title,
		Twins:      e.Twins,
		Configured: e.Configured(),
	}
}

func toAPIDashboard(d summary.Dashboard) *api.Dashboard {
	return &api.Dashboard{
		Title:        d.Title,
		GuestCount:   d.GuestCount,
		TotalTasks:   d.TotalTasks,
		PendingTasks: d.PendingTasks,
		Budget:       d.Budget.Total,
		Spent:        d.Budget.Spent,
		Remaining:    d.Budget.Remaining,
		Progress:     d.Budget.Progress,
		HasDate:      d.HasDate,
		DaysUntil:    d.DaysUntil,
	}
}

func toAPITasks(tasks []models.Task) []api.Task {
	out := make([]api.Task, len(tasks))
	for i, t := range tasks {
		out[i] = api.Task{Name: t.Name, Done: t.Done}
	}
	return out
}

func toAPIBudget(b summary.Budget) *api.BudgetResponse {
	return &api.BudgetResponse{
		Budget:    b.Total,
		Spent:     b.Spent,
		Remaining: b.Remaining,
		Progress:  b.Progress,
	}
}

func toAPIExpenses(expenses []models.Expense) []api.Expense {
	out := make([]api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = api.Expense{
			Description:   e.Description,
			Amount:        e.Amount,
			PaymentMethod: string(e.PaymentMethod),
		}
	}
	return out
}

func toAPIGifts(gifts []models.Gift) []api.Gift {
	out := make([]api.Gift, len(gifts))
	for i, g := range gifts {
		out[i] = api.Gift{Guest: g.Guest, Description: g.Description, ThankYouSent: g.ThankYouSent}
	}
	return out
}

func toAPISuggestions(suggestions []models.Suggestion) []api.Suggestion {
	out := make([]api.Suggestion, len(suggestions))
	for i, s := range suggestions {
		out[i] = api.Suggestion{Item: s.Item, Details: s.Details}
	}
	return out
}

func toAPIGames(games []models.Game) []api.Game {
	out := make([]api.Game, len(games))
	for i, g := range games {
		out[i] = api.Game{Name: g.Name, Rules: g.Rules}
	}
	return out
}
