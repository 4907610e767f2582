package itinerary

import (
	"time"

	"github.com/nvats/travelog/internal/domain"
)

// TourPatch is a partial update of a tour's own fields (not its days).
// Nil pointers mean "leave unchanged" — the merge contract mirrors the
// per-field form edits of the editor UI, where each keystroke updates
// exactly one field.
type TourPatch struct {
	Title        *string
	Destination  *string
	CustomerName *string
	StartDate    *time.Time
	Currency     *domain.Currency
	CoverImage   *string
	AISummary    *string
	Inclusions   *string
	Exclusions   *string
}

// Apply merges the patch into tour and returns the result. The input tour
// is not modified.
func (p TourPatch) Apply(tour domain.Tour) domain.Tour {
	out := tour.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Destination != nil {
		out.Destination = *p.Destination
	}
	if p.CustomerName != nil {
		out.CustomerName = *p.CustomerName
	}
	if p.StartDate != nil {
		out.StartDate = *p.StartDate
	}
	if p.Currency != nil {
		out.Currency = *p.Currency
	}
	if p.CoverImage != nil {
		out.CoverImage = *p.CoverImage
	}
	if p.AISummary != nil {
		out.AISummary = *p.AISummary
	}
	if p.Inclusions != nil {
		out.Inclusions = *p.Inclusions
	}
	if p.Exclusions != nil {
		out.Exclusions = *p.Exclusions
	}
	return out
}

// DayPatch is a partial update of a day. DayNumber is deliberately absent:
// numbering is owned by the mutators and recomputed on insert/delete,
// never set directly.
type DayPatch struct {
	Date    *time.Time
	Summary *string
}

func (p DayPatch) apply(d *domain.TourDay) {
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.Summary != nil {
		d.Summary = *p.Summary
	}
}

// ActivityPatch is a partial update of an activity. ClearCost removes the
// cost entirely (distinct from setting it to zero).
type ActivityPatch struct {
	Name      *string
	StartTime *string
	Category  *domain.ActivityCategory
	Notes     *string
	Cost      *float64
	ClearCost bool
}

func (p ActivityPatch) apply(a *domain.Activity) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.StartTime != nil {
		a.StartTime = *p.StartTime
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	if p.ClearCost {
		a.Cost = nil
	} else if p.Cost != nil {
		c := *p.Cost
		a.Cost = &c
	}
}
