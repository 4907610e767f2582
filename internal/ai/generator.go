// Package ai is the text/image generation collaborator. The core never
// sees provider errors: every generator method degrades to a fixed
// fallback (or "no image") so a failed call leaves the tour untouched and
// the operation retryable.
package ai

import (
	"context"

	"github.com/nvats/travelog/internal/domain"
)

// Fallback strings returned when generation fails or is disabled.
const (
	FallbackSummary    = "Unable to generate summary at this time."
	FallbackBudgetTips = "Budget analysis currently unavailable."
)

// Generator produces marketing copy and imagery for a tour.
//
// Summary and CoverImage report failure via ok=false; Summary still returns
// the fallback text so the caller has something to show, but must not store
// it in place of content the tour already has. BudgetTips is advisory-only
// and returns the fallback constant on any failure.
type Generator interface {
	Summary(ctx context.Context, tour domain.Tour) (text string, ok bool)
	CoverImage(ctx context.Context, tour domain.Tour) (dataURI string, ok bool)
	BudgetTips(ctx context.Context, tour domain.Tour) string
}
