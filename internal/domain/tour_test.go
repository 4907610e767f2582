package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvats/travelog/internal/domain"
)

// TestTour_JSONRoundTrip verifies that a fully populated tour survives
// marshal/unmarshal and that optional fields are omitted when empty.
func TestTour_JSONRoundTrip(t *testing.T) {
	cost := 45.0
	tour := domain.Tour{
		ID:           uuid.New(),
		Title:        "Vietnam Highlights",
		Destination:  "Hanoi",
		CustomerName: "Asha Patel",
		StartDate:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Currency:     domain.CurrencyUSD,
		Days: []domain.TourDay{{
			ID:        uuid.New(),
			DayNumber: 1,
			Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			Summary:   "Arrival",
			Activities: []domain.Activity{{
				ID:        uuid.New(),
				Name:      "Old Quarter Walk",
				StartTime: "09:00",
				Category:  domain.CategorySightseeing,
				Notes:     "Start at Hoan Kiem Lake",
				Cost:      &cost,
			}},
		}},
		Inclusions: "Hotel, breakfast",
	}

	raw, err := json.Marshal(tour)
	require.NoError(t, err)

	var got domain.Tour
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, tour, got)

	// Empty optional fields stay off the wire.
	var keys map[string]any
	require.NoError(t, json.Unmarshal(raw, &keys))
	assert.NotContains(t, keys, "cover_image")
	assert.NotContains(t, keys, "ai_summary")
	assert.NotContains(t, keys, "exclusions")
	assert.Contains(t, keys, "customer_name")
}

// TestActivity_UnmarshalRejectsUnknownCategory verifies that the closed
// category set is enforced at decode time.
func TestActivity_UnmarshalRejectsUnknownCategory(t *testing.T) {
	raw := []byte(`{"id":"` + uuid.NewString() + `","name":"X","start_time":"09:00","category":"Nightlife","notes":""}`)

	var a domain.Activity
	err := json.Unmarshal(raw, &a)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// TestEnums_Validation covers the valid/invalid split for each closed enum.
func TestEnums_Validation(t *testing.T) {
	assert.True(t, domain.CurrencyINR.Valid())
	assert.False(t, domain.Currency("AUD").Valid())

	assert.True(t, domain.RegionPhuQuoc.Valid())
	assert.False(t, domain.Region("HALONG").Valid())

	assert.True(t, domain.ProductShared.Valid())
	assert.False(t, domain.ProductCategory("GROUP").Valid())

	assert.True(t, domain.CategoryOther.Valid())
	assert.False(t, domain.ActivityCategory("").Valid())
}

// TestCurrency_UnmarshalRejectsUnknown verifies decode-time currency validation.
func TestCurrency_UnmarshalRejectsUnknown(t *testing.T) {
	var c domain.Currency
	err := json.Unmarshal([]byte(`"BTC"`), &c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// TestTour_Clone_Independent verifies that mutating a clone never reaches the
// original, including through the activity cost pointer.
func TestTour_Clone_Independent(t *testing.T) {
	cost := 10.0
	tour := domain.Tour{
		ID: uuid.New(),
		Days: []domain.TourDay{{
			ID:         uuid.New(),
			DayNumber:  1,
			Activities: []domain.Activity{{ID: uuid.New(), Cost: &cost}},
		}},
	}

	clone := tour.Clone()
	clone.Days[0].Summary = "changed"
	*clone.Days[0].Activities[0].Cost = 999

	assert.Empty(t, tour.Days[0].Summary)
	assert.Equal(t, 10.0, *tour.Days[0].Activities[0].Cost)
}

// TestTour_Day_Lookup verifies the day lookup and its miss case.
func TestTour_Day_Lookup(t *testing.T) {
	d1 := domain.TourDay{ID: uuid.New(), DayNumber: 1}
	d2 := domain.TourDay{ID: uuid.New(), DayNumber: 2}
	tour := domain.Tour{Days: []domain.TourDay{d1, d2}}

	day, idx, ok := tour.Day(d2.ID)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, d2.ID, day.ID)

	_, _, ok = tour.Day(uuid.New())
	assert.False(t, ok)
}
