package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvats/travelog/internal/catalog"
	"github.com/nvats/travelog/internal/domain"
	"github.com/nvats/travelog/internal/service"
)

// TestQuoteService_AddLine_PrependsNewestFirst verifies line ordering and the
// fresh instance ID per add.
func TestQuoteService_AddLine_PrependsNewestFirst(t *testing.T) {
	svc := service.NewQuoteService(catalog.DefaultMarginRate)

	first, err := svc.AddLine("HN1")
	require.NoError(t, err)
	second, err := svc.AddLine("HN18")
	require.NoError(t, err)

	lines := svc.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, second.InstanceID, lines[0].InstanceID)
	assert.Equal(t, first.InstanceID, lines[1].InstanceID)
	assert.NotEqual(t, first.InstanceID, second.InstanceID)
}

// TestQuoteService_AddLine_SameProductTwice verifies duplicate products get
// independent instances.
func TestQuoteService_AddLine_SameProductTwice(t *testing.T) {
	svc := service.NewQuoteService(catalog.DefaultMarginRate)

	a, err := svc.AddLine("PQ3")
	require.NoError(t, err)
	b, err := svc.AddLine("PQ3")
	require.NoError(t, err)

	assert.NotEqual(t, a.InstanceID, b.InstanceID)
	assert.Len(t, svc.Lines(), 2)
}

// TestQuoteService_AddLine_UnknownProduct verifies the validation sentinel.
func TestQuoteService_AddLine_UnknownProduct(t *testing.T) {
	svc := service.NewQuoteService(catalog.DefaultMarginRate)

	_, err := svc.AddLine("XX99")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, svc.Lines())
}

// TestQuoteService_RemoveLine verifies removal by instance ID and the
// unknown-instance no-op.
func TestQuoteService_RemoveLine(t *testing.T) {
	svc := service.NewQuoteService(catalog.DefaultMarginRate)
	a, _ := svc.AddLine("HN1")
	b, _ := svc.AddLine("HN2")

	svc.RemoveLine(uuid.New())
	assert.Len(t, svc.Lines(), 2)

	svc.RemoveLine(a.InstanceID)
	lines := svc.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, b.InstanceID, lines[0].InstanceID)
}

// TestQuoteService_TotalsAndReset verifies the margin arithmetic against the
// real product table and that Reset clears everything.
func TestQuoteService_TotalsAndReset(t *testing.T) {
	svc := service.NewQuoteService(0.20)
	_, err := svc.AddLine("HN1") // 2400
	require.NoError(t, err)
	_, err = svc.AddLine("HN18") // 800
	require.NoError(t, err)

	totals := svc.Totals()
	assert.Equal(t, 3200.0, totals.Base)
	assert.Equal(t, 640.0, totals.Margin)
	assert.Equal(t, 3840.0, totals.Selling)
	assert.Equal(t, 0.20, svc.MarginRate())

	svc.Reset()
	assert.Empty(t, svc.Lines())
	assert.Zero(t, svc.Totals().Selling)
}

// TestQuoteService_LinesReturnsCopy verifies callers cannot mutate internal
// state through the returned slice.
func TestQuoteService_LinesReturnsCopy(t *testing.T) {
	svc := service.NewQuoteService(catalog.DefaultMarginRate)
	_, err := svc.AddLine("HN1")
	require.NoError(t, err)

	lines := svc.Lines()
	lines[0].Product.BaseCost = 0

	assert.Equal(t, 2400.0, svc.Lines()[0].Product.BaseCost)
}
