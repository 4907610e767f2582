package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settingsJSON struct {
	DefaultCurrency string `json:"default_currency"`
	UserName        string `json:"user_name"`
}

// TestSettings_Defaults verifies first-run settings.
func TestSettings_Defaults(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/settings", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got settingsJSON
	decode(t, rec, &got)
	assert.Equal(t, "INR", got.DefaultCurrency)
	assert.Empty(t, got.UserName)
}

// TestSettings_UpdateAffectsNewTours verifies the default currency applies
// to tours created afterwards.
func TestSettings_UpdateAffectsNewTours(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPut, "/settings", map[string]any{
		"default_currency": "EUR",
		"user_name":        "Mina",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var got settingsJSON
	decode(t, rec, &got)
	assert.Equal(t, "EUR", got.DefaultCurrency)
	assert.Equal(t, "Mina", got.UserName)

	tour := ts.createTour(t)
	assert.Equal(t, "EUR", tour.Currency)
}

// TestSettings_InvalidCurrency verifies the enum guard on PUT.
func TestSettings_InvalidCurrency(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPut, "/settings", map[string]any{"default_currency": "XYZ"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// TestSettings_MissingCurrencyRejected verifies a body without a currency is
// rejected and leaves the stored default intact, so tours never pick up an
// empty currency.
func TestSettings_MissingCurrencyRejected(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPut, "/settings", map[string]any{"user_name": "Asha"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = ts.do(t, http.MethodGet, "/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got settingsJSON
	decode(t, rec, &got)
	assert.Equal(t, "INR", got.DefaultCurrency)

	tour := ts.createTour(t)
	assert.Equal(t, "INR", tour.Currency)
}
