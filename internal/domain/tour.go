// Package domain contains the core data types for the Travelog itinerary
// builder. This package has almost zero external dependencies and is imported
// by every other internal package (store, itinerary, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tour represents a single trip plan. A tour is the top-level aggregate;
// days belong to a tour and activities belong to a day. No day or activity
// is ever shared between two tours.
//
// Invariant: Days is non-empty and Days[i].DayNumber == i+1 for all i.
// Every mutator in the itinerary package preserves this.
type Tour struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Destination  string    `json:"destination"`
	CustomerName string    `json:"customer_name,omitempty"`
	StartDate    time.Time `json:"start_date"`
	Currency     Currency  `json:"currency"`
	CoverImage   string    `json:"cover_image,omitempty"` // data URI or external URL
	Days         []TourDay `json:"days"`
	AISummary    string    `json:"ai_summary,omitempty"`
	Inclusions   string    `json:"inclusions,omitempty"`
	Exclusions   string    `json:"exclusions,omitempty"`
}

// TourDay is one calendar day of a trip. By convention the first day's date
// equals the tour's start date and each appended day is dated one day after
// the previous one, but users may edit any day's date freely afterwards —
// contiguity is a creation-time default, not an enforced rule.
type TourDay struct {
	ID         uuid.UUID  `json:"id"`
	DayNumber  int        `json:"day_number"`
	Date       time.Time  `json:"date"`
	Summary    string     `json:"summary"`
	Activities []Activity `json:"activities"`
}

// Activity is a single bookable event within a day. Cost is nil when the
// activity has no price attached; aggregation treats nil as zero.
// Activities keep their insertion order — display never re-sorts by time.
type Activity struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	StartTime string           `json:"start_time"` // "HH:MM" time of day
	Category  ActivityCategory `json:"category"`
	Notes     string           `json:"notes"`
	Cost      *float64         `json:"cost,omitempty"`
}

// Clone returns a deep copy of the tour. Mutators operate on clones so the
// caller's value is never modified in place.
func (t Tour) Clone() Tour {
	out := t
	out.Days = make([]TourDay, len(t.Days))
	for i, d := range t.Days {
		out.Days[i] = d.Clone()
	}
	return out
}

// Clone returns a deep copy of the day, including its activities.
func (d TourDay) Clone() TourDay {
	out := d
	out.Activities = make([]Activity, len(d.Activities))
	for i, a := range d.Activities {
		out.Activities[i] = a.Clone()
	}
	return out
}

// Clone returns a copy of the activity with its own Cost pointer.
func (a Activity) Clone() Activity {
	out := a
	if a.Cost != nil {
		c := *a.Cost
		out.Cost = &c
	}
	return out
}

// Day returns the day with the given ID and its index, or ok=false if the
// tour has no such day.
func (t Tour) Day(dayID uuid.UUID) (day TourDay, idx int, ok bool) {
	for i, d := range t.Days {
		if d.ID == dayID {
			return d, i, true
		}
	}
	return TourDay{}, 0, false
}
