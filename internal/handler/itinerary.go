package handler

import (
	"encoding/json"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/nvats/travelog/internal/domain"
	"github.com/nvats/travelog/internal/itinerary"
)

// AddDay handles POST /tours/{tourID}/days.
func (s *Server) AddDay(w http.ResponseWriter, r *http.Request) {
	tourID, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	tour, err := s.tours.AddDay(r.Context(), tourID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tourToResponse(tour))
}

// RemoveDay handles DELETE /tours/{tourID}/days/{dayID}. An unknown dayID,
// or a tour down to its last day, returns the tour unchanged with 200 —
// navigational races are absorbed, not reported.
func (s *Server) RemoveDay(w http.ResponseWriter, r *http.Request) {
	tourID, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	dayID, ok := pathUUID(w, r, "dayID")
	if !ok {
		return
	}
	tour, err := s.tours.RemoveDay(r.Context(), tourID, dayID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tourToResponse(tour))
}

// UpdateDay handles PATCH /tours/{tourID}/days/{dayID}.
func (s *Server) UpdateDay(w http.ResponseWriter, r *http.Request) {
	tourID, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	dayID, ok := pathUUID(w, r, "dayID")
	if !ok {
		return
	}
	var body updateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondRequestError(w, "invalid request body: "+err.Error())
		return
	}
	tour, err := s.tours.UpdateDay(r.Context(), tourID, dayID, body.toPatch())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tourToResponse(tour))
}

// AddActivity handles POST /tours/{tourID}/days/{dayID}/activities. The new
// activity gets the editor defaults; fields are filled in by later patches.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	tourID, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	dayID, ok := pathUUID(w, r, "dayID")
	if !ok {
		return
	}
	tour, err := s.tours.AddActivity(r.Context(), tourID, dayID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tourToResponse(tour))
}

// UpdateActivity handles PATCH /tours/{tourID}/days/{dayID}/activities/{activityID}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	tourID, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	dayID, ok := pathUUID(w, r, "dayID")
	if !ok {
		return
	}
	activityID, ok := pathUUID(w, r, "activityID")
	if !ok {
		return
	}
	var body updateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondRequestError(w, "invalid request body: "+err.Error())
		return
	}
	tour, err := s.tours.UpdateActivity(r.Context(), tourID, dayID, activityID, body.toPatch())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tourToResponse(tour))
}

// RemoveActivity handles DELETE /tours/{tourID}/days/{dayID}/activities/{activityID}.
func (s *Server) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	tourID, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	dayID, ok := pathUUID(w, r, "dayID")
	if !ok {
		return
	}
	activityID, ok := pathUUID(w, r, "activityID")
	if !ok {
		return
	}
	tour, err := s.tours.RemoveActivity(r.Context(), tourID, dayID, activityID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tourToResponse(tour))
}

// ImportTemplate handles POST /tours/{tourID}/days/{dayID}/template.
func (s *Server) ImportTemplate(w http.ResponseWriter, r *http.Request) {
	tourID, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	dayID, ok := pathUUID(w, r, "dayID")
	if !ok {
		return
	}
	var body importTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondRequestError(w, "invalid request body: "+err.Error())
		return
	}
	tour, err := s.tours.ImportTemplate(r.Context(), tourID, dayID, body.TemplateID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tourToResponse(tour))
}

// --- request types ----------------------------------------------------------

type updateDayRequest struct {
	Date    *openapi_types.Date `json:"date"`
	Summary *string             `json:"summary"`
}

func (b updateDayRequest) toPatch() itinerary.DayPatch {
	p := itinerary.DayPatch{Summary: b.Summary}
	if b.Date != nil {
		d := b.Date.Time
		p.Date = &d
	}
	return p
}

type updateActivityRequest struct {
	Name      *string                  `json:"name"`
	StartTime *string                  `json:"start_time"`
	Category  *domain.ActivityCategory `json:"category"`
	Notes     *string                  `json:"notes"`
	Cost      *float64                 `json:"cost"`
	ClearCost bool                     `json:"clear_cost"`
}

func (b updateActivityRequest) toPatch() itinerary.ActivityPatch {
	return itinerary.ActivityPatch{
		Name:      b.Name,
		StartTime: b.StartTime,
		Category:  b.Category,
		Notes:     b.Notes,
		Cost:      b.Cost,
		ClearCost: b.ClearCost,
	}
}

type importTemplateRequest struct {
	TemplateID string `json:"template_id"`
}
