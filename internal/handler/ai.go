package handler

import "net/http"

// GenerateSummary handles POST /tours/{tourID}/summary. The response is the
// updated tour — on provider failure the stored summary is the fallback
// text, and the client may simply retry.
func (s *Server) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	tourID, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	tour, err := s.ai.GenerateSummary(r.Context(), tourID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tourToResponse(tour))
}

// GenerateCover handles POST /tours/{tourID}/cover. On provider failure the
// tour keeps its existing cover image and is returned unchanged.
func (s *Server) GenerateCover(w http.ResponseWriter, r *http.Request) {
	tourID, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	tour, err := s.ai.GenerateCover(r.Context(), tourID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tourToResponse(tour))
}

// BudgetTips handles POST /tours/{tourID}/budget-tips.
func (s *Server) BudgetTips(w http.ResponseWriter, r *http.Request) {
	tourID, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	tips, err := s.ai.BudgetTips(r.Context(), tourID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"tips": tips})
}
