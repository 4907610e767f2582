package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The test server runs the AI stack without an API key, so the generator
// degrades to its fixed fallbacks — which is exactly the behavior these
// endpoints must expose to a client in that state.

// TestGenerateSummary_FailureNotStored verifies the fallback text is returned
// to the caller but does not replace whatever summary the tour has.
func TestGenerateSummary_FailureNotStored(t *testing.T) {
	ts := newTestServer(t)
	tour := ts.createTour(t)

	rec := ts.do(t, http.MethodPost, "/tours/"+tour.ID+"/summary", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got tourJSON
	decode(t, rec, &got)
	require.NotNil(t, got.AISummary)
	assert.Equal(t, "Unable to generate summary at this time.", *got.AISummary)

	// Nothing was written onto the tour.
	rec = ts.do(t, http.MethodGet, "/tours/"+tour.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &got)
	assert.Nil(t, got.AISummary)
}

// TestGenerateSummary_FailureKeepsDocumentOverview verifies the document
// projection still shows the destination-based overview after a failed
// generation, rather than the fallback error text.
func TestGenerateSummary_FailureKeepsDocumentOverview(t *testing.T) {
	ts := newTestServer(t)
	tour := ts.createTour(t)

	rec := ts.do(t, http.MethodPost, "/tours/"+tour.ID+"/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/tours/"+tour.ID+"/document", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var doc struct {
		Overview string `json:"overview"`
	}
	decode(t, rec, &doc)
	assert.Equal(t, "Explore the stunning landscapes of Vietnam with this curated 1-day travel plan.", doc.Overview)
}

// TestGenerateCover_FailureKeepsTourUnchanged verifies a failed cover
// generation returns the tour with its cover untouched.
func TestGenerateCover_FailureKeepsTourUnchanged(t *testing.T) {
	ts := newTestServer(t)
	tour := ts.createTour(t)

	rec := ts.do(t, http.MethodPost, "/tours/"+tour.ID+"/cover", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got tourJSON
	decode(t, rec, &got)
	assert.Nil(t, got.CoverImage)
}

// TestBudgetTips_Fallback verifies the advisory text endpoint.
func TestBudgetTips_Fallback(t *testing.T) {
	ts := newTestServer(t)
	tour := ts.createTour(t)

	rec := ts.do(t, http.MethodPost, "/tours/"+tour.ID+"/budget-tips", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Budget analysis currently unavailable.", body["tips"])

	// Tips are never stored on the tour.
	rec = ts.do(t, http.MethodGet, "/tours/"+tour.ID, nil)
	var got tourJSON
	decode(t, rec, &got)
	assert.Nil(t, got.AISummary)
}

// TestAIEndpoints_UnknownTour verifies the 404 mapping.
func TestAIEndpoints_UnknownTour(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.NewString()

	for _, path := range []string{"/summary", "/cover", "/budget-tips"} {
		rec := ts.do(t, http.MethodPost, "/tours/"+id+path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, "POST /tours/{id}%s", path)
	}
}
