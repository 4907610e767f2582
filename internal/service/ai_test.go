package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvats/travelog/internal/ai"
	"github.com/nvats/travelog/internal/domain"
	"github.com/nvats/travelog/internal/service"
)

// mockGenerator is a function-field double for ai.Generator.
type mockGenerator struct {
	summaryFn    func(ctx context.Context, tour domain.Tour) (string, bool)
	coverImageFn func(ctx context.Context, tour domain.Tour) (string, bool)
	budgetTipsFn func(ctx context.Context, tour domain.Tour) string
}

var _ ai.Generator = (*mockGenerator)(nil)

func (m *mockGenerator) Summary(ctx context.Context, tour domain.Tour) (string, bool) {
	return m.summaryFn(ctx, tour)
}

func (m *mockGenerator) CoverImage(ctx context.Context, tour domain.Tour) (string, bool) {
	return m.coverImageFn(ctx, tour)
}

func (m *mockGenerator) BudgetTips(ctx context.Context, tour domain.Tour) string {
	return m.budgetTipsFn(ctx, tour)
}

func seededTours(t *testing.T) (*memTours, domain.Tour) {
	t.Helper()
	tours := &memTours{}
	svc := service.NewTourService(tours, defaultSettings())
	tour := svc.Create(context.Background())
	return tours, tour
}

// TestAIService_GenerateSummary_StoresText verifies the generated summary is
// written back onto the tour.
func TestAIService_GenerateSummary_StoresText(t *testing.T) {
	tours, tour := seededTours(t)
	gen := &mockGenerator{summaryFn: func(context.Context, domain.Tour) (string, bool) {
		return "A sweeping three-day journey.", true
	}}
	svc := service.NewAIService(tours, gen)

	got, err := svc.GenerateSummary(context.Background(), tour.ID)

	require.NoError(t, err)
	assert.Equal(t, "A sweeping three-day journey.", got.AISummary)

	stored, err := tours.Get(tour.ID)
	require.NoError(t, err)
	assert.Equal(t, "A sweeping three-day journey.", stored.AISummary)
}

// TestAIService_GenerateSummary_FailureKeepsStored verifies that a failed
// generation returns the fallback text without overwriting the summary the
// tour already has.
func TestAIService_GenerateSummary_FailureKeepsStored(t *testing.T) {
	tours, tour := seededTours(t)
	tour.AISummary = "A hand-polished summary."
	tours.Upsert(context.Background(), tour)

	gen := &mockGenerator{summaryFn: func(context.Context, domain.Tour) (string, bool) {
		return ai.FallbackSummary, false
	}}
	svc := service.NewAIService(tours, gen)

	got, err := svc.GenerateSummary(context.Background(), tour.ID)

	require.NoError(t, err)
	assert.Equal(t, ai.FallbackSummary, got.AISummary)

	stored, err := tours.Get(tour.ID)
	require.NoError(t, err)
	assert.Equal(t, "A hand-polished summary.", stored.AISummary)
}

// TestAIService_GenerateSummary_FailureLeavesSummaryEmpty verifies a tour that
// never had a summary stays empty after a failed generation, so downstream
// views keep using their destination fallback.
func TestAIService_GenerateSummary_FailureLeavesSummaryEmpty(t *testing.T) {
	tours, tour := seededTours(t)
	gen := &mockGenerator{summaryFn: func(context.Context, domain.Tour) (string, bool) {
		return ai.FallbackSummary, false
	}}
	svc := service.NewAIService(tours, gen)

	_, err := svc.GenerateSummary(context.Background(), tour.ID)

	require.NoError(t, err)
	stored, err := tours.Get(tour.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.AISummary)
}

// TestAIService_GenerateCover_Success verifies the cover data URI is stored.
func TestAIService_GenerateCover_Success(t *testing.T) {
	tours, tour := seededTours(t)
	gen := &mockGenerator{coverImageFn: func(context.Context, domain.Tour) (string, bool) {
		return "data:image/jpeg;base64,QUJD", true
	}}
	svc := service.NewAIService(tours, gen)

	got, err := svc.GenerateCover(context.Background(), tour.ID)

	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,QUJD", got.CoverImage)
}

// TestAIService_GenerateCover_FailureKeepsExisting verifies that a failed
// generation leaves the existing cover untouched.
func TestAIService_GenerateCover_FailureKeepsExisting(t *testing.T) {
	tours, tour := seededTours(t)
	tour.CoverImage = "data:image/png;base64,T0xE"
	tours.Upsert(context.Background(), tour)

	gen := &mockGenerator{coverImageFn: func(context.Context, domain.Tour) (string, bool) {
		return "", false
	}}
	svc := service.NewAIService(tours, gen)

	got, err := svc.GenerateCover(context.Background(), tour.ID)

	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,T0xE", got.CoverImage)
}

// TestAIService_BudgetTips_NotStored verifies tips are returned but never
// written onto the tour.
func TestAIService_BudgetTips_NotStored(t *testing.T) {
	tours, tour := seededTours(t)
	gen := &mockGenerator{budgetTipsFn: func(context.Context, domain.Tour) string {
		return "Shift one paid tour to a free walking day."
	}}
	svc := service.NewAIService(tours, gen)

	tips, err := svc.BudgetTips(context.Background(), tour.ID)

	require.NoError(t, err)
	assert.Equal(t, "Shift one paid tour to a free walking day.", tips)

	stored, err := tours.Get(tour.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.AISummary)
}

// TestAIService_Busy verifies the re-entrancy guard: a second summary while
// one is in flight gets ErrBusy, and the flag releases afterwards. Different
// operation kinds do not block each other.
func TestAIService_Busy(t *testing.T) {
	tours, tour := seededTours(t)

	inFlight := make(chan struct{})
	proceed := make(chan struct{})
	gen := &mockGenerator{
		summaryFn: func(context.Context, domain.Tour) (string, bool) {
			close(inFlight)
			<-proceed
			return "done", true
		},
		budgetTipsFn: func(context.Context, domain.Tour) string { return "tips" },
	}
	svc := service.NewAIService(tours, gen)

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.GenerateSummary(context.Background(), tour.ID)
		errCh <- err
	}()
	<-inFlight

	_, err := svc.GenerateSummary(context.Background(), tour.ID)
	assert.ErrorIs(t, err, domain.ErrBusy)

	// An unrelated operation kind is not blocked.
	_, err = svc.BudgetTips(context.Background(), tour.ID)
	assert.NoError(t, err)

	close(proceed)
	require.NoError(t, <-errCh)

	// Flag released: the next summary goes through.
	gen.summaryFn = func(context.Context, domain.Tour) (string, bool) { return "again", true }
	_, err = svc.GenerateSummary(context.Background(), tour.ID)
	assert.NoError(t, err)
}

// TestAIService_UnknownTour verifies ErrNotFound passes through (and does not
// leave the busy flag set).
func TestAIService_UnknownTour(t *testing.T) {
	tours := &memTours{}
	gen := &mockGenerator{summaryFn: func(context.Context, domain.Tour) (string, bool) { return "x", true }}
	svc := service.NewAIService(tours, gen)

	_, err := svc.GenerateSummary(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Guard was released by the failed call.
	_, err = svc.GenerateSummary(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
