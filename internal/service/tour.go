// Package service contains the business logic for the Travelog API.
// Services orchestrate the stores, the pure itinerary mutators, and the
// external collaborators (AI generation, PDF export). No HTTP and no
// serialization live here.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nvats/travelog/internal/catalog"
	"github.com/nvats/travelog/internal/domain"
	"github.com/nvats/travelog/internal/itinerary"
)

// Tours is the slice of store.TourStore the tour service depends on.
// Declaring it here lets tests inject a lightweight double.
type Tours interface {
	List() []domain.Tour
	Get(id uuid.UUID) (domain.Tour, error)
	Upsert(ctx context.Context, tour domain.Tour)
	Remove(ctx context.Context, id uuid.UUID)
	Open(id uuid.UUID) error
	Close()
	OpenTour() (domain.Tour, bool)
}

// Settings is the slice of store.SettingsStore the tour service depends on.
type Settings interface {
	Get() domain.AppSettings
}

// TourService implements tour CRUD and all itinerary mutations. Every
// mutation runs the pure mutator, upserts the result into the store (which
// persists synchronously), and returns the new tour value.
type TourService struct {
	tours    Tours
	settings Settings
	now      func() time.Time
}

// NewTourService constructs a TourService over the given stores.
func NewTourService(tours Tours, settings Settings) *TourService {
	return &TourService{tours: tours, settings: settings, now: time.Now}
}

// Create builds a new tour with defaults — title "New Trip", the settings'
// default currency, start date today, and a single empty day — stores it,
// and opens it.
func (s *TourService) Create(ctx context.Context) domain.Tour {
	today := s.now().UTC().Truncate(24 * time.Hour)
	tour := itinerary.New("New Trip", today, s.settings.Get().DefaultCurrency)
	s.tours.Upsert(ctx, tour)
	// A freshly created tour was just stored; Open cannot miss.
	_ = s.tours.Open(tour.ID)
	return tour
}

// List returns all tours in insertion order.
func (s *TourService) List(ctx context.Context) []domain.Tour {
	return s.tours.List()
}

// Get returns a single tour. Returns domain.ErrNotFound if absent.
func (s *TourService) Get(ctx context.Context, id uuid.UUID) (domain.Tour, error) {
	tour, err := s.tours.Get(id)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Get: %w", err)
	}
	return tour, nil
}

// Update merges a field patch into the tour and persists the result.
func (s *TourService) Update(ctx context.Context, id uuid.UUID, patch itinerary.TourPatch) (domain.Tour, error) {
	tour, err := s.tours.Get(id)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Update: %w", err)
	}
	updated := patch.Apply(tour)
	s.tours.Upsert(ctx, updated)
	return updated, nil
}

// Delete removes a tour. Deleting an unknown ID is a no-op; deleting the
// open tour also clears the open reference. Confirmation is the caller's
// responsibility.
func (s *TourService) Delete(ctx context.Context, id uuid.UUID) {
	s.tours.Remove(ctx, id)
}

// Open marks a tour as currently open. Returns domain.ErrNotFound if absent.
func (s *TourService) Open(ctx context.Context, id uuid.UUID) error {
	if err := s.tours.Open(id); err != nil {
		return fmt.Errorf("service.TourService.Open: %w", err)
	}
	return nil
}

// CloseOpen clears the open-tour reference.
func (s *TourService) CloseOpen(ctx context.Context) {
	s.tours.Close()
}

// OpenTour returns the currently open tour, ok=false when none.
func (s *TourService) OpenTour(ctx context.Context) (domain.Tour, bool) {
	return s.tours.OpenTour()
}

// AddDay appends a day to the tour.
func (s *TourService) AddDay(ctx context.Context, tourID uuid.UUID) (domain.Tour, error) {
	return s.mutate(ctx, tourID, "AddDay", func(t domain.Tour) domain.Tour {
		return itinerary.AddDay(t)
	})
}

// RemoveDay removes a day; a no-op on an unknown dayID or a single-day tour.
func (s *TourService) RemoveDay(ctx context.Context, tourID, dayID uuid.UUID) (domain.Tour, error) {
	return s.mutate(ctx, tourID, "RemoveDay", func(t domain.Tour) domain.Tour {
		return itinerary.RemoveDay(t, dayID)
	})
}

// UpdateDay merges a patch into a day; a no-op on an unknown dayID.
func (s *TourService) UpdateDay(ctx context.Context, tourID, dayID uuid.UUID, patch itinerary.DayPatch) (domain.Tour, error) {
	return s.mutate(ctx, tourID, "UpdateDay", func(t domain.Tour) domain.Tour {
		return itinerary.UpdateDay(t, dayID, patch)
	})
}

// AddActivity appends a defaulted activity to a day.
func (s *TourService) AddActivity(ctx context.Context, tourID, dayID uuid.UUID) (domain.Tour, error) {
	return s.mutate(ctx, tourID, "AddActivity", func(t domain.Tour) domain.Tour {
		return itinerary.AddActivity(t, dayID)
	})
}

// UpdateActivity merges a patch into an activity.
func (s *TourService) UpdateActivity(ctx context.Context, tourID, dayID, activityID uuid.UUID, patch itinerary.ActivityPatch) (domain.Tour, error) {
	return s.mutate(ctx, tourID, "UpdateActivity", func(t domain.Tour) domain.Tour {
		return itinerary.UpdateActivity(t, dayID, activityID, patch)
	})
}

// RemoveActivity deletes an activity from a day.
func (s *TourService) RemoveActivity(ctx context.Context, tourID, dayID, activityID uuid.UUID) (domain.Tour, error) {
	return s.mutate(ctx, tourID, "RemoveActivity", func(t domain.Tour) domain.Tour {
		return itinerary.RemoveActivity(t, dayID, activityID)
	})
}

// ImportTemplate copies a catalog day template into a day. Returns
// domain.ErrValidation on an unknown template ID; an unknown dayID is the
// usual silent no-op.
func (s *TourService) ImportTemplate(ctx context.Context, tourID, dayID uuid.UUID, templateID string) (domain.Tour, error) {
	tpl, ok := catalog.TemplateByID(templateID)
	if !ok {
		return domain.Tour{}, fmt.Errorf("service.TourService.ImportTemplate: %w: unknown template %q", domain.ErrValidation, templateID)
	}
	return s.mutate(ctx, tourID, "ImportTemplate", func(t domain.Tour) domain.Tour {
		return itinerary.ImportTemplate(t, dayID, tpl)
	})
}

// mutate loads the tour, applies fn, and stores the result. The only error
// case is a missing tour — in-tour misses are absorbed by the mutators.
func (s *TourService) mutate(ctx context.Context, tourID uuid.UUID, op string, fn func(domain.Tour) domain.Tour) (domain.Tour, error) {
	tour, err := s.tours.Get(tourID)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.%s: %w", op, err)
	}
	updated := fn(tour)
	s.tours.Upsert(ctx, updated)
	return updated, nil
}
