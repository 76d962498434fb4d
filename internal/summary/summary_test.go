package summary

import (
	"math"
	"testing"
	"time"

	"github.com/mmynk/showerplanner/internal/models"
)

func TestBudgetSummary(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		expenses []models.Expense
		want     Budget
	}{
		{
			name:     "budget minus one expense",
			total:    500.00,
			expenses: []models.Expense{{Description: "Cake", Amount: 120.50}},
			want:     Budget{Total: 500, Spent: 120.50, Remaining: 379.50, Progress: 0.241},
		},
		{
			name:     "no expenses",
			total:    200,
			expenses: nil,
			want:     Budget{Total: 200, Spent: 0, Remaining: 200, Progress: 0},
		},
		{
			name:  "over budget clamps progress",
			total: 100,
			expenses: []models.Expense{
				{Description: "Venue", Amount: 90},
				{Description: "Cake", Amount: 30},
			},
			want: Budget{Total: 100, Spent: 120, Remaining: -20, Progress: 1},
		},
		{
			name:     "zero budget",
			total:    0,
			expenses: []models.Expense{{Description: "Balloons", Amount: 15}},
			want:     Budget{Total: 0, Spent: 15, Remaining: -15, Progress: 0},
		},
		{
			name:  "float noise is rounded to cents",
			total: 1,
			expenses: []models.Expense{
				{Description: "a", Amount: 0.1},
				{Description: "b", Amount: 0.2},
			},
			want: Budget{Total: 1, Spent: 0.3, Remaining: 0.7, Progress: 0.3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BudgetSummary(tt.total, tt.expenses)
			if got.Total != tt.want.Total {
				t.Errorf("Total = %v, want %v", got.Total, tt.want.Total)
			}
			if got.Spent != tt.want.Spent {
				t.Errorf("Spent = %v, want %v", got.Spent, tt.want.Spent)
			}
			if got.Remaining != tt.want.Remaining {
				t.Errorf("Remaining = %v, want %v", got.Remaining, tt.want.Remaining)
			}
			if math.Abs(got.Progress-tt.want.Progress) > 0.001 {
				t.Errorf("Progress = %v, want %v", got.Progress, tt.want.Progress)
			}
		})
	}
}

func TestPendingTasks(t *testing.T) {
	tasks := []models.Task{
		{Name: "Invites", Done: true},
		{Name: "Cake"},
		{Name: "Music"},
	}
	if got := PendingTasks(tasks); got != 2 {
		t.Errorf("PendingTasks = %d, want 2", got)
	}
	if got := PendingTasks(nil); got != 0 {
		t.Errorf("PendingTasks(nil) = %d, want 0", got)
	}
}

func TestDaysUntil(t *testing.T) {
	today := time.Date(2025, time.April, 20, 18, 45, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		wantDays int
		wantOK   bool
	}{
		{name: "undecided", date: time.Time{}, wantDays: 0, wantOK: false},
		{name: "same day", date: time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC), wantDays: 0, wantOK: true},
		{name: "in eleven days", date: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), wantDays: 11, wantOK: true},
		{name: "already passed", date: time.Date(2025, time.April, 18, 0, 0, 0, 0, time.UTC), wantDays: -2, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := DaysUntil(models.Event{Date: tt.date}, today)
			if ok != tt.wantOK || days != tt.wantDays {
				t.Errorf("DaysUntil = (%d, %v), want (%d, %v)", days, ok, tt.wantDays, tt.wantOK)
			}
		})
	}
}

func TestDisplayTitle(t *testing.T) {
	alice := models.Baby{Name: "Alice", Sex: models.SexGirl}
	bento := models.Baby{Name: "Bento", Sex: models.SexBoy}

	tests := []struct {
		name   string
		event  models.Event
		joiner string
		want   string
	}{
		{name: "unconfigured", event: models.Event{}, want: ""},
		{name: "single baby", event: models.Event{Babies: []models.Baby{alice}}, want: "Alice"},
		{name: "twins", event: models.Event{Babies: []models.Baby{alice, bento}, Twins: true}, want: "Alice e Bento"},
		{name: "twins custom joiner", event: models.Event{Babies: []models.Baby{alice, bento}, Twins: true}, joiner: " & ", want: "Alice & Bento"},
		{name: "second name ignored without twins", event: models.Event{Babies: []models.Baby{alice, bento}}, want: "Alice"},
		{name: "twin without second name", event: models.Event{Babies: []models.Baby{alice, {}}, Twins: true}, want: "Alice"},
		{name: "own title wins", event: models.Event{Babies: []models.Baby{alice}, Title: "Chá da Alice"}, want: "Chá da Alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayTitle(tt.event, tt.joiner); got != tt.want {
				t.Errorf("DisplayTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	event := models.Event{
		Babies: []models.Baby{{Name: "Alice"}},
		Date:   time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
	today := time.Date(2025, time.April, 21, 9, 0, 0, 0, time.UTC)

	d := Build(event,
		[]string{"Bia", "Caio", "Duda"},
		[]models.Task{{Name: "Invites", Done: true}, {Name: "Cake"}},
		500,
		[]models.Expense{{Description: "Cake", Amount: 120.50}},
		today,
		"",
	)

	if d.Title != "Alice" {
		t.Errorf("Title = %q, want Alice", d.Title)
	}
	if d.GuestCount != 3 {
		t.Errorf("GuestCount = %d, want 3", d.GuestCount)
	}
	if d.TotalTasks != 2 || d.PendingTasks != 1 {
		t.Errorf("tasks = %d/%d, want 1 pending of 2", d.PendingTasks, d.TotalTasks)
	}
	if d.Budget.Remaining != 379.50 {
		t.Errorf("Remaining = %v, want 379.50", d.Budget.Remaining)
	}
	if !d.HasDate || d.DaysUntil != 10 {
		t.Errorf("DaysUntil = (%d, %v), want (10, true)", d.DaysUntil, d.HasDate)
	}
}
