// Package itinerary contains the pure mutation and aggregation logic for
// Tour values. Every mutator takes a Tour, returns a new Tour, and never
// modifies its input — callers (the service layer) decide what to do with
// the result. No I/O lives here.
//
// Day and activity lookups that miss are deliberate no-ops: the input tour
// is returned unchanged. These are user-navigation races (a day deleted in
// one view while edited in another), not error states.
package itinerary

import (
	"time"

	"github.com/google/uuid"

	"github.com/nvats/travelog/internal/domain"
)

// Activity defaults applied by AddActivity.
const (
	DefaultStartTime = "09:00"
	DefaultCategory  = domain.CategorySightseeing
)

// New builds a fresh tour with a single empty day numbered 1 and dated at
// the tour's start date.
func New(title string, startDate time.Time, currency domain.Currency) domain.Tour {
	return domain.Tour{
		ID:        uuid.New(),
		Title:     title,
		StartDate: startDate,
		Currency:  currency,
		Days: []domain.TourDay{{
			ID:         uuid.New(),
			DayNumber:  1,
			Date:       startDate,
			Activities: []domain.Activity{},
		}},
	}
}

// AddDay appends a new empty day numbered len(days)+1 and dated one day
// after the current last day. Never fails.
func AddDay(tour domain.Tour) domain.Tour {
	out := tour.Clone()
	last := out.Days[len(out.Days)-1]
	out.Days = append(out.Days, domain.TourDay{
		ID:         uuid.New(),
		DayNumber:  len(out.Days) + 1,
		Date:       last.Date.AddDate(0, 0, 1),
		Activities: []domain.Activity{},
	})
	return out
}

// RemoveDay removes the day with the given ID and renumbers the remaining
// days 1..n in order. A tour always keeps at least one day: removing the
// last remaining day, or an unknown dayID, returns the tour unchanged.
func RemoveDay(tour domain.Tour, dayID uuid.UUID) domain.Tour {
	if len(tour.Days) == 1 {
		return tour
	}
	if _, _, ok := tour.Day(dayID); !ok {
		return tour
	}
	out := tour.Clone()
	days := out.Days[:0]
	for _, d := range out.Days {
		if d.ID != dayID {
			days = append(days, d)
		}
	}
	for i := range days {
		days[i].DayNumber = i + 1
	}
	out.Days = days
	return out
}

// UpdateDay merges patch into the matching day. Unknown dayID is a no-op.
func UpdateDay(tour domain.Tour, dayID uuid.UUID, patch DayPatch) domain.Tour {
	_, idx, ok := tour.Day(dayID)
	if !ok {
		return tour
	}
	out := tour.Clone()
	patch.apply(&out.Days[idx])
	return out
}

// AddActivity appends a new activity with defaults (start time 09:00,
// category Sightseeing, empty name and notes, no cost) to the given day.
// Unknown dayID is a no-op.
func AddActivity(tour domain.Tour, dayID uuid.UUID) domain.Tour {
	_, idx, ok := tour.Day(dayID)
	if !ok {
		return tour
	}
	out := tour.Clone()
	out.Days[idx].Activities = append(out.Days[idx].Activities, domain.Activity{
		ID:        uuid.New(),
		StartTime: DefaultStartTime,
		Category:  DefaultCategory,
	})
	return out
}

// UpdateActivity merges patch into the matching activity, scoped to the
// given day. A no-op if either ID is unmatched.
func UpdateActivity(tour domain.Tour, dayID, activityID uuid.UUID, patch ActivityPatch) domain.Tour {
	_, di, ok := tour.Day(dayID)
	if !ok {
		return tour
	}
	ai := indexOfActivity(tour.Days[di], activityID)
	if ai < 0 {
		return tour
	}
	out := tour.Clone()
	patch.apply(&out.Days[di].Activities[ai])
	return out
}

// RemoveActivity deletes the matching activity from the given day,
// preserving the order of the rest. A no-op if either ID is unmatched.
// Days have no minimum activity count.
func RemoveActivity(tour domain.Tour, dayID, activityID uuid.UUID) domain.Tour {
	_, di, ok := tour.Day(dayID)
	if !ok {
		return tour
	}
	if indexOfActivity(tour.Days[di], activityID) < 0 {
		return tour
	}
	out := tour.Clone()
	acts := out.Days[di].Activities[:0]
	for _, a := range out.Days[di].Activities {
		if a.ID != activityID {
			acts = append(acts, a)
		}
	}
	out.Days[di].Activities = acts
	return out
}

// ImportTemplate appends every activity of the template to the given day —
// each with a freshly generated ID — and overwrites the day's summary with
// the template name. Existing activities on the day are kept and imported
// ones are appended after them. Unknown dayID is a no-op.
func ImportTemplate(tour domain.Tour, dayID uuid.UUID, tpl domain.DayTemplate) domain.Tour {
	_, idx, ok := tour.Day(dayID)
	if !ok {
		return tour
	}
	out := tour.Clone()
	day := &out.Days[idx]
	day.Summary = tpl.Name
	for _, ta := range tpl.Activities {
		day.Activities = append(day.Activities, domain.Activity{
			ID:        uuid.New(),
			Name:      ta.Name,
			StartTime: ta.StartTime,
			Category:  ta.Category,
			Notes:     ta.Notes,
		})
	}
	return out
}

func indexOfActivity(day domain.TourDay, activityID uuid.UUID) int {
	for i, a := range day.Activities {
		if a.ID == activityID {
			return i
		}
	}
	return -1
}
