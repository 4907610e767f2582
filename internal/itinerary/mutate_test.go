package itinerary_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvats/travelog/internal/domain"
	"github.com/nvats/travelog/internal/itinerary"
)

var testStart = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func newTour(t *testing.T) domain.Tour {
	t.Helper()
	return itinerary.New("Test Trip", testStart, domain.CurrencyINR)
}

// TestNew_SingleEmptyDay verifies that a fresh tour starts with one empty day
// numbered 1 and dated at the start date.
func TestNew_SingleEmptyDay(t *testing.T) {
	tour := newTour(t)

	require.NotEqual(t, uuid.Nil, tour.ID)
	require.Equal(t, "Test Trip", tour.Title)
	require.Equal(t, domain.CurrencyINR, tour.Currency)
	require.Len(t, tour.Days, 1)
	assert.Equal(t, 1, tour.Days[0].DayNumber)
	assert.Equal(t, testStart, tour.Days[0].Date)
	assert.Empty(t, tour.Days[0].Activities)
}

// TestAddDay_NumbersAndDates verifies that appended days are numbered
// sequentially and dated one day after the previous last day.
func TestAddDay_NumbersAndDates(t *testing.T) {
	tour := newTour(t)

	tour = itinerary.AddDay(tour)
	tour = itinerary.AddDay(tour)

	require.Len(t, tour.Days, 3)
	for i, d := range tour.Days {
		assert.Equal(t, i+1, d.DayNumber)
		assert.Equal(t, testStart.AddDate(0, 0, i), d.Date)
	}
}

// TestAddDay_DoesNotModifyInput verifies mutator purity: the input tour is
// untouched by AddDay.
func TestAddDay_DoesNotModifyInput(t *testing.T) {
	tour := newTour(t)
	before := tour.Clone()

	_ = itinerary.AddDay(tour)

	assert.Equal(t, before, tour)
}

// TestRemoveDay_Renumbers verifies that removing a middle day closes the gap
// in day numbers.
func TestRemoveDay_Renumbers(t *testing.T) {
	tour := newTour(t)
	tour = itinerary.AddDay(tour)
	tour = itinerary.AddDay(tour)
	middle := tour.Days[1]

	tour = itinerary.RemoveDay(tour, middle.ID)

	require.Len(t, tour.Days, 2)
	assert.Equal(t, 1, tour.Days[0].DayNumber)
	assert.Equal(t, 2, tour.Days[1].DayNumber)
	for _, d := range tour.Days {
		assert.NotEqual(t, middle.ID, d.ID)
	}
}

// TestRemoveDay_LastRemainingDay_NoOp verifies that a tour never drops to
// zero days.
func TestRemoveDay_LastRemainingDay_NoOp(t *testing.T) {
	tour := newTour(t)

	got := itinerary.RemoveDay(tour, tour.Days[0].ID)

	assert.Equal(t, tour, got)
}

// TestRemoveDay_UnknownID_NoOp verifies that removing a day that does not
// exist returns the tour unchanged.
func TestRemoveDay_UnknownID_NoOp(t *testing.T) {
	tour := newTour(t)
	tour = itinerary.AddDay(tour)

	got := itinerary.RemoveDay(tour, uuid.New())

	assert.Equal(t, tour, got)
}

// TestUpdateDay_MergesPatch verifies that only the patched fields change and
// the day keeps its number and identity.
func TestUpdateDay_MergesPatch(t *testing.T) {
	tour := newTour(t)
	day := tour.Days[0]
	newDate := testStart.AddDate(0, 1, 0)
	summary := "Arrival and old quarter walk"

	got := itinerary.UpdateDay(tour, day.ID, itinerary.DayPatch{
		Date:    &newDate,
		Summary: &summary,
	})

	require.Len(t, got.Days, 1)
	assert.Equal(t, day.ID, got.Days[0].ID)
	assert.Equal(t, 1, got.Days[0].DayNumber)
	assert.Equal(t, newDate, got.Days[0].Date)
	assert.Equal(t, summary, got.Days[0].Summary)
}

// TestAddActivity_Defaults verifies the new activity's defaults: start time
// 09:00, category Sightseeing, no cost.
func TestAddActivity_Defaults(t *testing.T) {
	tour := newTour(t)

	got := itinerary.AddActivity(tour, tour.Days[0].ID)

	require.Len(t, got.Days[0].Activities, 1)
	a := got.Days[0].Activities[0]
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, "09:00", a.StartTime)
	assert.Equal(t, domain.CategorySightseeing, a.Category)
	assert.Empty(t, a.Name)
	assert.Nil(t, a.Cost)
}

// TestAddActivity_UnknownDay_NoOp verifies that a stale day ID leaves the
// tour unchanged.
func TestAddActivity_UnknownDay_NoOp(t *testing.T) {
	tour := newTour(t)

	got := itinerary.AddActivity(tour, uuid.New())

	assert.Equal(t, tour, got)
}

// TestUpdateActivity_CostAndClear verifies both halves of the cost contract:
// a set cost overwrites, and ClearCost removes it entirely.
func TestUpdateActivity_CostAndClear(t *testing.T) {
	tour := newTour(t)
	dayID := tour.Days[0].ID
	tour = itinerary.AddActivity(tour, dayID)
	actID := tour.Days[0].Activities[0].ID

	cost := 125.5
	tour = itinerary.UpdateActivity(tour, dayID, actID, itinerary.ActivityPatch{Cost: &cost})
	require.NotNil(t, tour.Days[0].Activities[0].Cost)
	require.Equal(t, 125.5, *tour.Days[0].Activities[0].Cost)

	tour = itinerary.UpdateActivity(tour, dayID, actID, itinerary.ActivityPatch{ClearCost: true})
	assert.Nil(t, tour.Days[0].Activities[0].Cost)
}

// TestUpdateActivity_WrongDay_NoOp verifies that an activity is only reachable
// through its own day.
func TestUpdateActivity_WrongDay_NoOp(t *testing.T) {
	tour := newTour(t)
	tour = itinerary.AddDay(tour)
	tour = itinerary.AddActivity(tour, tour.Days[0].ID)
	actID := tour.Days[0].Activities[0].ID
	name := "should not apply"

	got := itinerary.UpdateActivity(tour, tour.Days[1].ID, actID, itinerary.ActivityPatch{Name: &name})

	assert.Equal(t, tour, got)
}

// TestRemoveActivity_PreservesOrder verifies that removing a middle activity
// keeps the rest in entry order.
func TestRemoveActivity_PreservesOrder(t *testing.T) {
	tour := newTour(t)
	dayID := tour.Days[0].ID
	for i := 0; i < 3; i++ {
		tour = itinerary.AddActivity(tour, dayID)
	}
	first := tour.Days[0].Activities[0].ID
	middle := tour.Days[0].Activities[1].ID
	last := tour.Days[0].Activities[2].ID

	got := itinerary.RemoveActivity(tour, dayID, middle)

	require.Len(t, got.Days[0].Activities, 2)
	assert.Equal(t, first, got.Days[0].Activities[0].ID)
	assert.Equal(t, last, got.Days[0].Activities[1].ID)
}

// TestImportTemplate_AppendsWithFreshIDs verifies that imported activities get
// new IDs, land after existing activities, and the day summary becomes the
// template name.
func TestImportTemplate_AppendsWithFreshIDs(t *testing.T) {
	tour := newTour(t)
	dayID := tour.Days[0].ID
	tour = itinerary.AddActivity(tour, dayID)
	existing := tour.Days[0].Activities[0].ID

	tpl := domain.DayTemplate{
		ID:     "T-X1",
		Region: domain.RegionHanoi,
		Name:   "Hanoi Essentials",
		Activities: []domain.TemplateActivity{
			{Name: "Hoan Kiem Lake", StartTime: "08:00", Category: domain.CategorySightseeing},
			{Name: "Pho Breakfast", StartTime: "09:30", Category: domain.CategoryFood, Notes: "Pho Thin"},
		},
	}

	got := itinerary.ImportTemplate(tour, dayID, tpl)

	day := got.Days[0]
	require.Len(t, day.Activities, 3)
	assert.Equal(t, "Hanoi Essentials", day.Summary)
	assert.Equal(t, existing, day.Activities[0].ID)
	assert.Equal(t, "Hoan Kiem Lake", day.Activities[1].Name)
	assert.Equal(t, "Pho Breakfast", day.Activities[2].Name)
	assert.Equal(t, domain.CategoryFood, day.Activities[2].Category)
	assert.NotEqual(t, uuid.Nil, day.Activities[1].ID)
	assert.NotEqual(t, day.Activities[1].ID, day.Activities[2].ID)
}

// TestImportTemplate_Twice_DistinctIDs verifies that importing the same
// template twice yields independent activity instances.
func TestImportTemplate_Twice_DistinctIDs(t *testing.T) {
	tour := newTour(t)
	dayID := tour.Days[0].ID
	tpl := domain.DayTemplate{
		ID: "T-X2", Region: domain.RegionHanoi, Name: "Repeat",
		Activities: []domain.TemplateActivity{{Name: "Walk", StartTime: "10:00", Category: domain.CategorySightseeing}},
	}

	tour = itinerary.ImportTemplate(tour, dayID, tpl)
	tour = itinerary.ImportTemplate(tour, dayID, tpl)

	acts := tour.Days[0].Activities
	require.Len(t, acts, 2)
	assert.NotEqual(t, acts[0].ID, acts[1].ID)
}

// TestTourPatch_Apply verifies the nil-means-unchanged merge contract on the
// tour's own fields.
func TestTourPatch_Apply(t *testing.T) {
	tour := newTour(t)
	tour.Destination = "Hanoi"

	title := "Vietnam Highlights"
	currency := domain.CurrencyUSD
	got := itinerary.TourPatch{Title: &title, Currency: &currency}.Apply(tour)

	assert.Equal(t, "Vietnam Highlights", got.Title)
	assert.Equal(t, domain.CurrencyUSD, got.Currency)
	assert.Equal(t, "Hanoi", got.Destination)
	assert.Equal(t, tour.Days, got.Days)

	// Input untouched.
	assert.Equal(t, "Test Trip", tour.Title)
}
