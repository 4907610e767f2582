// Package view projects a Tour into a display-ready document structure:
// days in dayNumber order, activities within each day in their entry order.
// Activities are deliberately NOT re-sorted by start time — manual entry
// order is the user's ordering device. Both the editor and the exported
// document derive from the same projection; neither owns state.
package view

import (
	"fmt"
	"sort"

	"github.com/nvats/travelog/internal/domain"
	"github.com/nvats/travelog/internal/itinerary"
)

// Document is the read-only, render-ready form of a tour.
type Document struct {
	Title         string           `json:"title"`
	Destination   string           `json:"destination"`
	CustomerName  string           `json:"customer_name"`
	Currency      domain.Currency  `json:"currency"`
	CoverImage    string           `json:"cover_image,omitempty"`
	DayCount      int              `json:"day_count"`
	ActivityCount int              `json:"activity_count"`
	TotalCost     float64          `json:"total_cost"`
	Overview      string           `json:"overview"`
	Inclusions    string           `json:"inclusions,omitempty"`
	Exclusions    string           `json:"exclusions,omitempty"`
	Days          []DocumentDay    `json:"days"`
}

// DocumentDay is one rendered day block.
type DocumentDay struct {
	DayNumber  int                `json:"day_number"`
	Date       string             `json:"date"`     // "Monday, Jan 2"
	Headline   string             `json:"headline"` // day summary, or "Day N"
	Cost       float64            `json:"cost"`
	Activities []DocumentActivity `json:"activities"`
}

// DocumentActivity is one rendered activity row.
type DocumentActivity struct {
	StartTime string                  `json:"start_time"`
	Name      string                  `json:"name"`
	Category  domain.ActivityCategory `json:"category"`
	Notes     string                  `json:"notes,omitempty"`
	Cost      *float64                `json:"cost,omitempty"`
}

// Project builds the document for a tour.
func Project(tour domain.Tour) Document {
	doc := Document{
		Title:         tour.Title,
		Destination:   tour.Destination,
		CustomerName:  customerOrGuest(tour),
		Currency:      tour.Currency,
		CoverImage:    tour.CoverImage,
		DayCount:      len(tour.Days),
		ActivityCount: itinerary.ActivityCount(tour),
		TotalCost:     itinerary.TotalCost(tour),
		Overview:      Overview(tour),
		Inclusions:    tour.Inclusions,
		Exclusions:    tour.Exclusions,
	}

	days := make([]DocumentDay, len(tour.Days))
	for i, d := range tour.Days {
		day := DocumentDay{
			DayNumber: d.DayNumber,
			Date:      d.Date.Format("Monday, Jan 2"),
			Headline:  d.Summary,
			Cost:      itinerary.DayCost(d),
		}
		if day.Headline == "" {
			day.Headline = fmt.Sprintf("Day %d", d.DayNumber)
		}
		day.Activities = make([]DocumentActivity, len(d.Activities))
		for j, a := range d.Activities {
			act := DocumentActivity{
				StartTime: a.StartTime,
				Name:      a.Name,
				Category:  a.Category,
				Notes:     a.Notes,
			}
			if a.Cost != nil {
				c := *a.Cost
				act.Cost = &c
			}
			day.Activities[j] = act
		}
		days[i] = day
	}
	// Days are kept in dayNumber order. The numbering invariant makes this
	// a no-op in practice; sorting shields the projection from a blob
	// edited out-of-band.
	sort.SliceStable(days, func(i, j int) bool { return days[i].DayNumber < days[j].DayNumber })
	doc.Days = days
	return doc
}

// Overview returns the tour's AI summary, or the destination-based fallback
// sentence when none has been generated.
func Overview(tour domain.Tour) string {
	if tour.AISummary != "" {
		return tour.AISummary
	}
	dest := tour.Destination
	if dest == "" {
		dest = "Vietnam"
	}
	return fmt.Sprintf("Explore the stunning landscapes of %s with this curated %d-day travel plan.", dest, len(tour.Days))
}

func customerOrGuest(tour domain.Tour) string {
	if tour.CustomerName == "" {
		return "Guest"
	}
	return tour.CustomerName
}
