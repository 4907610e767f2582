package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nvats/travelog/internal/domain"
)

// GetSettings handles GET /settings.
func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.settings.Get())
}

// UpdateSettings handles PUT /settings. The body is the complete settings
// object; the currency enum rejects unknown codes at decode time, and a body
// that omits the currency altogether is rejected so the stored default is
// always a real code.
func (s *Server) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.AppSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondRequestError(w, "invalid request body: "+err.Error())
		return
	}
	if settings.DefaultCurrency == "" {
		respondRequestError(w, "default_currency is required")
		return
	}
	s.settings.Set(r.Context(), settings)
	respondJSON(w, http.StatusOK, settings)
}
