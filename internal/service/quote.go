package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/nvats/travelog/internal/catalog"
	"github.com/nvats/travelog/internal/domain"
)

// QuoteService holds the cost estimator's working quote: an ordered list of
// catalog product instances plus the flat margin arithmetic. The quote is
// session state, not persisted — a restart starts from an empty quote, the
// same way the estimator screen starts empty.
type QuoteService struct {
	mu         sync.RWMutex
	lines      []domain.QuoteLine
	marginRate float64
}

// NewQuoteService constructs an empty quote with the given margin rate
// (catalog.DefaultMarginRate unless configured otherwise).
func NewQuoteService(marginRate float64) *QuoteService {
	return &QuoteService{marginRate: marginRate}
}

// AddLine places a catalog product on the quote with a fresh instance ID,
// prepended so the newest line shows first. Returns domain.ErrValidation on
// an unknown product ID.
func (s *QuoteService) AddLine(productID string) (domain.QuoteLine, error) {
	product, ok := catalog.ProductByID(productID)
	if !ok {
		return domain.QuoteLine{}, fmt.Errorf("service.QuoteService.AddLine: %w: unknown product %q", domain.ErrValidation, productID)
	}
	line := domain.QuoteLine{InstanceID: uuid.New(), Product: product}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append([]domain.QuoteLine{line}, s.lines...)
	return line, nil
}

// RemoveLine deletes one line by instance ID. Removing an unknown instance
// is a no-op.
func (s *QuoteService) RemoveLine(instanceID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.InstanceID != instanceID {
			kept = append(kept, l)
		}
	}
	s.lines = kept
}

// Reset clears the quote.
func (s *QuoteService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the current quote lines, newest first.
func (s *QuoteService) Lines() []domain.QuoteLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.QuoteLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Totals returns the base/margin/selling figures for the current quote.
func (s *QuoteService) Totals() domain.QuoteTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.Totals(s.lines, s.marginRate)
}

// MarginRate exposes the configured rate (for display next to the totals).
func (s *QuoteService) MarginRate() float64 {
	return s.marginRate
}
