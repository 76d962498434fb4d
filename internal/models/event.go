package models

import "time"

// Sex is the tag shown next to a baby's name.
type Sex string

const (
	SexUndisclosed Sex = "undisclosed"
	SexGirl        Sex = "girl"
	SexBoy         Sex = "boy"
	SexSurprise    Sex = "surprise"
)

// Valid reports whether s is one of the known tags.
func (s Sex) Valid() bool {
	switch s {
	case SexUndisclosed, SexGirl, SexBoy, SexSurprise:
		return true
	}
	return false
}

// MaxBabies is the largest number of babies an event can name (twins).
const MaxBabies = 2

// Baby is one entry of an event's ordered baby list.
type Baby struct {
	Name string
	Sex  Sex
}

// Event is the shower a user is planning.
//
// An event with no babies is Unconfigured; naming at least one baby
// configures it. Only a full reset returns it to Unconfigured.
type Event struct {
	// Babies is ordered: the first entry is the one shown first in titles.
	// Holds at most MaxBabies entries.
	Babies []Baby

	// Date is the shower date at midnight UTC, or the zero time when undecided.
	Date time.Time

	// Title is an optional free-text name for the shower.
	Title string

	// Twins is set when the event was configured for two babies.
	Twins bool
}

// Configured reports whether the event setup has been completed.
func (e Event) Configured() bool {
	return len(e.Babies) > 0 && e.Babies[0].Name != ""
}

// HasDate reports whether a shower date has been chosen.
func (e Event) HasDate() bool {
	return !e.Date.IsZero()
}

// BabyNames returns the names in order.
func (e Event) BabyNames() []string {
	names := make([]string, len(e.Babies))
	for i, b := range e.Babies {
		names[i] = b.Name
	}
	return names
}
