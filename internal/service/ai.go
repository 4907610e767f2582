package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nvats/travelog/internal/ai"
	"github.com/nvats/travelog/internal/domain"
)

// Operation names for the in-flight guards. One flag per operation, shared
// across tours — mirroring the one-screen-at-a-time UI this serves.
const (
	opSummary = "summary"
	opCover   = "cover"
	opBudget  = "budget"
)

// AIService wires the AI generator to the tour store: generated text and
// imagery are written back onto the tour. Each generation kind carries its
// own re-entrancy guard; a second call while one is in flight gets
// domain.ErrBusy.
type AIService struct {
	tours Tours
	gen   ai.Generator
	ops   *inflight
}

// NewAIService constructs an AIService.
func NewAIService(tours Tours, gen ai.Generator) *AIService {
	return &AIService{tours: tours, gen: gen, ops: newInflight()}
}

// GenerateSummary produces an itinerary summary and stores it on the tour.
// Generation failure is not an error here: the returned tour carries the
// generator's fallback text so the caller has something to show, but the
// stored summary is left untouched and the operation remains retryable.
func (s *AIService) GenerateSummary(ctx context.Context, tourID uuid.UUID) (domain.Tour, error) {
	release, err := s.ops.start(opSummary)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.AIService.GenerateSummary: %w", err)
	}
	defer release()

	tour, err := s.tours.Get(tourID)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.AIService.GenerateSummary: %w", err)
	}

	text, ok := s.gen.Summary(ctx, tour)
	tour.AISummary = text
	if !ok {
		return tour, nil
	}
	s.tours.Upsert(ctx, tour)
	return tour, nil
}

// GenerateCover produces a cover image and stores it on the tour. When
// generation fails the existing cover image is left untouched and the
// unchanged tour is returned.
func (s *AIService) GenerateCover(ctx context.Context, tourID uuid.UUID) (domain.Tour, error) {
	release, err := s.ops.start(opCover)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.AIService.GenerateCover: %w", err)
	}
	defer release()

	tour, err := s.tours.Get(tourID)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.AIService.GenerateCover: %w", err)
	}

	uri, ok := s.gen.CoverImage(ctx, tour)
	if !ok {
		return tour, nil
	}
	tour.CoverImage = uri
	s.tours.Upsert(ctx, tour)
	return tour, nil
}

// BudgetTips returns AI commentary on the tour's per-day budget. The text
// is advisory and never stored.
func (s *AIService) BudgetTips(ctx context.Context, tourID uuid.UUID) (string, error) {
	release, err := s.ops.start(opBudget)
	if err != nil {
		return "", fmt.Errorf("service.AIService.BudgetTips: %w", err)
	}
	defer release()

	tour, err := s.tours.Get(tourID)
	if err != nil {
		return "", fmt.Errorf("service.AIService.BudgetTips: %w", err)
	}
	return s.gen.BudgetTips(ctx, tour), nil
}
