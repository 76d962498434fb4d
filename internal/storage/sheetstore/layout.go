package sheetstore

import "fmt"

// Collection names a logical per-user table.
type Collection string

const (
	Users       Collection = "users"
	Event       Collection = "event"
	Guests      Collection = "guests"
	Checklist   Collection = "checklist"
	Budget      Collection = "budget"
	Expenses    Collection = "expenses"
	Gifts       Collection = "gifts"
	Suggestions Collection = "suggestions"
	Games       Collection = "games"
)

// Collections lists every collection, users first.
var Collections = []Collection{Users, Event, Guests, Checklist, Budget, Expenses, Gifts, Suggestions, Games}

// Column names. They are the sheet header, so renaming one orphans existing data.
const (
	colUsername = "username"
	colEmail    = "email"
	colName     = "name"
	colPassword = "password"

	colBabyNames  = "baby_names"
	colBabySexes  = "baby_sexes"
	colEventDate  = "event_date"
	colEventTitle = "event_title"
	colTwins      = "twins"

	colGuests         = "guests"
	colChecklistTasks = "checklist_tasks"
	colChecklistDone  = "checklist_done"
	colBudget         = "budget"
	colExpenses       = "expenses"
	colGifts          = "gifts"
	colSuggestions    = "suggestions"
	colGames          = "games"
)

// identityColumns survive a reset.
var identityColumns = []string{colUsername, colEmail, colName, colPassword}

// columns lists the value columns of each collection, in header order.
var columns = map[Collection][]string{
	Users:       {colEmail, colName, colPassword},
	Event:       {colBabyNames, colBabySexes, colEventDate, colEventTitle, colTwins},
	Guests:      {colGuests},
	Checklist:   {colChecklistTasks, colChecklistDone},
	Budget:      {colBudget},
	Expenses:    {colExpenses},
	Gifts:       {colGifts},
	Suggestions: {colSuggestions},
	Games:       {colGames},
}

// Layout maps collections onto backend tables.
type Layout struct {
	tables map[Collection]string
}

// SingleSheet stores every collection as columns of one shared table, one
// row per user.
func SingleSheet(table string) Layout {
	l := Layout{tables: make(map[Collection]string, len(Collections))}
	for _, c := range Collections {
		l.tables[c] = table
	}
	return l
}

// TablePerCollection stores each collection in its own table named after it.
func TablePerCollection() Layout {
	l := Layout{tables: make(map[Collection]string, len(Collections))}
	for _, c := range Collections {
		l.tables[c] = string(c)
	}
	return l
}

// ParseLayout builds a layout from its config name.
func ParseLayout(name, sheetName string) (Layout, error) {
	switch name {
	case "single", "":
		if sheetName == "" {
			return Layout{}, fmt.Errorf("single sheet layout needs a sheet name")
		}
		return SingleSheet(sheetName), nil
	case "per-collection":
		return TablePerCollection(), nil
	default:
		return Layout{}, fmt.Errorf("unknown sheet layout %q", name)
	}
}

// Table returns the backend table holding c.
func (l Layout) Table(c Collection) string {
	return l.tables[c]
}

// Tables returns the distinct backend tables, users table first.
func (l Layout) Tables() []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range Collections {
		t := l.tables[c]
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
