// Package summary computes the planner dashboard figures.
package summary

import (
	"math"
	"strings"
	"time"

	"github.com/mmynk/showerplanner/internal/models"
)

// DefaultJoiner joins twin names in titles ("Alice e Bento").
const DefaultJoiner = " e "

// Budget represents the money figures shown on the dashboard
type Budget struct {
	Total     float64
	Spent     float64
	Remaining float64 // Negative when over budget
	Progress  float64 // Share of the budget spent, clamped to [0, 1]
}

// Dashboard is everything the overview screen shows.
type Dashboard struct {
	Title        string
	GuestCount   int
	TotalTasks   int
	PendingTasks int
	Budget       Budget
	HasDate      bool
	DaysUntil    int // Negative once the date has passed; 0 without a date
}

// TotalSpent sums expense amounts, rounded to cents.
func TotalSpent(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return roundCents(total)
}

// BudgetSummary compares the budget with what has been spent.
// A zero budget reports no progress rather than dividing by zero.
func BudgetSummary(total float64, expenses []models.Expense) Budget {
	spent := TotalSpent(expenses)
	b := Budget{
		Total:     roundCents(total),
		Spent:     spent,
		Remaining: roundCents(total - spent),
	}
	if total > 0 {
		b.Progress = math.Min(1, math.Max(0, spent/total))
	}
	return b
}

// PendingTasks counts the tasks not done yet.
func PendingTasks(tasks []models.Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Done {
			n++
		}
	}
	return n
}

// DaysUntil returns the number of calendar days from today to the event
// date. The second result is false when no date has been chosen.
func DaysUntil(event models.Event, today time.Time) (int, bool) {
	if !event.HasDate() {
		return 0, false
	}
	from := calendarDay(today)
	to := calendarDay(event.Date)
	return int(to.Sub(from).Hours() / 24), true
}

// DisplayTitle returns the event's own title, or the baby names when it has
// none. Twin names are joined with joiner; an empty joiner uses DefaultJoiner.
func DisplayTitle(event models.Event, joiner string) string {
	if t := strings.TrimSpace(event.Title); t != "" {
		return t
	}
	if joiner == "" {
		joiner = DefaultJoiner
	}

	var names []string
	for _, name := range event.BabyNames() {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if !event.Twins && len(names) > 1 {
		names = names[:1]
	}
	return strings.Join(names, joiner)
}

// Build assembles the dashboard for one user.
func Build(event models.Event, guests []string, tasks []models.Task, budget float64, expenses []models.Expense, today time.Time, joiner string) Dashboard {
	days, hasDate := DaysUntil(event, today)
	return Dashboard{
		Title:        DisplayTitle(event, joiner),
		GuestCount:   len(guests),
		TotalTasks:   len(tasks),
		PendingTasks: PendingTasks(tasks),
		Budget:       BudgetSummary(budget, expenses),
		HasDate:      hasDate,
		DaysUntil:    days,
	}
}

// calendarDay drops the clock, keeping the date as seen in t's location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
