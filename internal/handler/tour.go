package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/nvats/travelog/internal/domain"
	"github.com/nvats/travelog/internal/itinerary"
	"github.com/nvats/travelog/internal/view"
)

// CreateTour handles POST /tours. The new tour is created with defaults and
// becomes the open tour.
func (s *Server) CreateTour(w http.ResponseWriter, r *http.Request) {
	tour := s.tours.Create(r.Context())
	respondJSON(w, http.StatusCreated, tourToResponse(tour))
}

// ListTours handles GET /tours.
func (s *Server) ListTours(w http.ResponseWriter, r *http.Request) {
	tours := s.tours.List(r.Context())
	out := make([]tourResponse, len(tours))
	for i, t := range tours {
		out[i] = tourToResponse(t)
	}
	respondJSON(w, http.StatusOK, out)
}

// GetTour handles GET /tours/{tourID}.
func (s *Server) GetTour(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	tour, err := s.tours.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tourToResponse(tour))
}

// UpdateTour handles PUT /tours/{tourID}. The body is a field patch:
// absent fields are left unchanged.
func (s *Server) UpdateTour(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	var body updateTourRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondRequestError(w, "invalid request body: "+err.Error())
		return
	}
	tour, err := s.tours.Update(r.Context(), id, body.toPatch())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tourToResponse(tour))
}

// DeleteTour handles DELETE /tours/{tourID}. Deletion is destructive, so
// the client must send ?confirm=true — the API-level equivalent of the
// confirmation dialog. Deleting an already-deleted tour is a no-op.
func (s *Server) DeleteTour(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	if r.URL.Query().Get("confirm") != "true" {
		respondRequestError(w, "deletion requires confirm=true")
		return
	}
	s.tours.Delete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// OpenTour handles POST /tours/{tourID}/open.
func (s *Server) OpenTour(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	if err := s.tours.Open(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CloseTour handles POST /tours/close.
func (s *Server) CloseTour(w http.ResponseWriter, r *http.Request) {
	s.tours.CloseOpen(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// GetOpenTour handles GET /tours/open. Responds 204 when no tour is open —
// "nothing open" is a normal state, not an error.
func (s *Server) GetOpenTour(w http.ResponseWriter, r *http.Request) {
	tour, ok := s.tours.OpenTour(r.Context())
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, tourToResponse(tour))
}

// GetDocument handles GET /tours/{tourID}/document: the read-only view
// projection used by the preview screen.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tourID")
	if !ok {
		return
	}
	tour, err := s.tours.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view.Project(tour))
}

// --- request/response types -------------------------------------------------

type tourResponse struct {
	Id            uuid.UUID          `json:"id"`
	Title         string             `json:"title"`
	Destination   string             `json:"destination"`
	CustomerName  *string            `json:"customer_name,omitempty"`
	StartDate     openapi_types.Date `json:"start_date"`
	Currency      domain.Currency    `json:"currency"`
	CoverImage    *string            `json:"cover_image,omitempty"`
	Days          []dayResponse      `json:"days"`
	AiSummary     *string            `json:"ai_summary,omitempty"`
	Inclusions    *string            `json:"inclusions,omitempty"`
	Exclusions    *string            `json:"exclusions,omitempty"`
	TotalCost     float64            `json:"total_cost"`
	ActivityCount int                `json:"activity_count"`
}

type dayResponse struct {
	Id         uuid.UUID          `json:"id"`
	DayNumber  int                `json:"day_number"`
	Date       openapi_types.Date `json:"date"`
	Summary    string             `json:"summary"`
	Activities []activityResponse `json:"activities"`
}

type activityResponse struct {
	Id        uuid.UUID               `json:"id"`
	Name      string                  `json:"name"`
	StartTime string                  `json:"start_time"`
	Category  domain.ActivityCategory `json:"category"`
	Notes     string                  `json:"notes"`
	Cost      *float64                `json:"cost,omitempty"`
}

type updateTourRequest struct {
	Title        *string             `json:"title"`
	Destination  *string             `json:"destination"`
	CustomerName *string             `json:"customer_name"`
	StartDate    *openapi_types.Date `json:"start_date"`
	Currency     *domain.Currency    `json:"currency"`
	CoverImage   *string             `json:"cover_image"`
	AiSummary    *string             `json:"ai_summary"`
	Inclusions   *string             `json:"inclusions"`
	Exclusions   *string             `json:"exclusions"`
}

func (b updateTourRequest) toPatch() itinerary.TourPatch {
	p := itinerary.TourPatch{
		Title:        b.Title,
		Destination:  b.Destination,
		CustomerName: b.CustomerName,
		Currency:     b.Currency,
		CoverImage:   b.CoverImage,
		AISummary:    b.AiSummary,
		Inclusions:   b.Inclusions,
		Exclusions:   b.Exclusions,
	}
	if b.StartDate != nil {
		d := b.StartDate.Time
		p.StartDate = &d
	}
	return p
}

// tourToResponse converts a domain.Tour to its JSON shape, including the
// derived totals the dashboard cards show.
func tourToResponse(t domain.Tour) tourResponse {
	resp := tourResponse{
		Id:            t.ID,
		Title:         t.Title,
		Destination:   t.Destination,
		StartDate:     openapi_types.Date{Time: t.StartDate},
		Currency:      t.Currency,
		TotalCost:     itinerary.TotalCost(t),
		ActivityCount: itinerary.ActivityCount(t),
	}
	if t.CustomerName != "" {
		resp.CustomerName = &t.CustomerName
	}
	if t.CoverImage != "" {
		resp.CoverImage = &t.CoverImage
	}
	if t.AISummary != "" {
		resp.AiSummary = &t.AISummary
	}
	if t.Inclusions != "" {
		resp.Inclusions = &t.Inclusions
	}
	if t.Exclusions != "" {
		resp.Exclusions = &t.Exclusions
	}
	resp.Days = make([]dayResponse, len(t.Days))
	for i, d := range t.Days {
		day := dayResponse{
			Id:        d.ID,
			DayNumber: d.DayNumber,
			Date:      openapi_types.Date{Time: d.Date},
			Summary:   d.Summary,
		}
		day.Activities = make([]activityResponse, len(d.Activities))
		for j, a := range d.Activities {
			act := activityResponse{
				Id:        a.ID,
				Name:      a.Name,
				StartTime: a.StartTime,
				Category:  a.Category,
				Notes:     a.Notes,
			}
			if a.Cost != nil {
				c := *a.Cost
				act.Cost = &c
			}
			day.Activities[j] = act
		}
		resp.Days[i] = day
	}
	return resp
}

// pathUUID parses a UUID path parameter, rejecting the request on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondRequestError(w, "invalid "+name)
		return uuid.UUID{}, false
	}
	return id, true
}
