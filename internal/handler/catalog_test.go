package handler_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productJSON struct {
	ID       string  `json:"id"`
	Region   string  `json:"region"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	BaseCost float64 `json:"base_cost"`
}

type templateJSON struct {
	ID         string `json:"id"`
	Region     string `json:"region"`
	Name       string `json:"name"`
	Activities []struct {
		Name      string `json:"name"`
		StartTime string `json:"start_time"`
		Category  string `json:"category"`
	} `json:"activities"`
}

// TestListCatalog verifies region filtering and definition order.
func TestListCatalog(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/catalog?region=HANOI", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var products []productJSON
	decode(t, rec, &products)
	require.NotEmpty(t, products)
	assert.Equal(t, "HN1", products[0].ID)
	for _, p := range products {
		assert.Equal(t, "HANOI", p.Region)
	}
}

// TestListCatalog_RegionWithSpace verifies the "PHU QUOC" region key works
// URL-encoded.
func TestListCatalog_RegionWithSpace(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/catalog?region="+url.QueryEscape("PHU QUOC"), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var products []productJSON
	decode(t, rec, &products)
	require.NotEmpty(t, products)
	assert.Equal(t, "PQ1", products[0].ID)
}

// TestListCatalog_TypeFilter verifies SHARED/PRIVATE narrowing and the
// rejection of unknown types.
func TestListCatalog_TypeFilter(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/catalog?region=DANANG&type=PRIVATE", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []productJSON
	decode(t, rec, &products)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "PRIVATE", p.Category)
	}

	rec = ts.do(t, http.MethodGet, "/catalog?region=DANANG&type=GROUP", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// TestListCatalog_Search verifies the case-insensitive name filter.
func TestListCatalog_Search(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/catalog?region=HCMC&q=mekong", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var products []productJSON
	decode(t, rec, &products)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Contains(t, strings.ToLower(p.Name), "mekong")
	}
}

// TestListCatalog_MissingRegion verifies region is required.
func TestListCatalog_MissingRegion(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/catalog", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// TestListCatalog_NoMatches_EmptyArray verifies an empty result serializes
// as [] rather than null.
func TestListCatalog_NoMatches_EmptyArray(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/catalog?region=HCMC&q=zzzz", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

// TestListTemplates verifies the template listing and its region guard.
func TestListTemplates(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/templates?region=HANOI", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var templates []templateJSON
	decode(t, rec, &templates)
	require.NotEmpty(t, templates)
	assert.Equal(t, "T-HN1", templates[0].ID)
	for _, tpl := range templates {
		assert.Equal(t, "HANOI", tpl.Region)
		assert.NotEmpty(t, tpl.Activities)
	}

	rec = ts.do(t, http.MethodGet, "/templates?region=MARS", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
