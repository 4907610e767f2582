package handler

import (
	"net/http"

	"github.com/nvats/travelog/internal/catalog"
	"github.com/nvats/travelog/internal/domain"
)

// ListTemplates handles GET /templates?region=&q=. Region is required;
// q is an optional case-insensitive substring filter on the template name.
func (s *Server) ListTemplates(w http.ResponseWriter, r *http.Request) {
	region, ok := queryRegion(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, catalog.Templates(region, r.URL.Query().Get("q")))
}

// ListCatalog handles GET /catalog?region=&type=&q=. Region is required;
// type narrows to SHARED or PRIVATE products; q filters by name substring.
func (s *Server) ListCatalog(w http.ResponseWriter, r *http.Request) {
	region, ok := queryRegion(w, r)
	if !ok {
		return
	}
	q := r.URL.Query().Get("q")

	if t := r.URL.Query().Get("type"); t != "" {
		category := domain.ProductCategory(t)
		if !category.Valid() {
			respondRequestError(w, "invalid type: "+t)
			return
		}
		respondJSON(w, http.StatusOK, catalog.ProductsByCategory(region, category, q))
		return
	}
	respondJSON(w, http.StatusOK, catalog.Products(region, q))
}

func queryRegion(w http.ResponseWriter, r *http.Request) (domain.Region, bool) {
	region := domain.Region(r.URL.Query().Get("region"))
	if !region.Valid() {
		respondRequestError(w, "invalid or missing region")
		return "", false
	}
	return region, true
}
