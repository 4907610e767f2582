// Package handler implements the HTTP handlers for the Travelog API.
// All handlers are methods on Server; they are split into resource-specific
// files (tour.go, itinerary.go, quote.go, ...) but share the same struct so
// they can reach its dependencies. Handlers decode and validate requests,
// call a service, and map errors to statuses — nothing else.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nvats/travelog/internal/domain"
	"github.com/nvats/travelog/internal/itinerary"
	"github.com/nvats/travelog/internal/service"
)

// TourServicer defines the tour operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the stores.
type TourServicer interface {
	Create(ctx context.Context) domain.Tour
	List(ctx context.Context) []domain.Tour
	Get(ctx context.Context, id uuid.UUID) (domain.Tour, error)
	Update(ctx context.Context, id uuid.UUID, patch itinerary.TourPatch) (domain.Tour, error)
	Delete(ctx context.Context, id uuid.UUID)
	Open(ctx context.Context, id uuid.UUID) error
	CloseOpen(ctx context.Context)
	OpenTour(ctx context.Context) (domain.Tour, bool)

	AddDay(ctx context.Context, tourID uuid.UUID) (domain.Tour, error)
	RemoveDay(ctx context.Context, tourID, dayID uuid.UUID) (domain.Tour, error)
	UpdateDay(ctx context.Context, tourID, dayID uuid.UUID, patch itinerary.DayPatch) (domain.Tour, error)
	AddActivity(ctx context.Context, tourID, dayID uuid.UUID) (domain.Tour, error)
	UpdateActivity(ctx context.Context, tourID, dayID, activityID uuid.UUID, patch itinerary.ActivityPatch) (domain.Tour, error)
	RemoveActivity(ctx context.Context, tourID, dayID, activityID uuid.UUID) (domain.Tour, error)
	ImportTemplate(ctx context.Context, tourID, dayID uuid.UUID, templateID string) (domain.Tour, error)
}

// QuoteServicer defines the cost estimator operations the handlers use.
type QuoteServicer interface {
	AddLine(productID string) (domain.QuoteLine, error)
	RemoveLine(instanceID uuid.UUID)
	Reset()
	Lines() []domain.QuoteLine
	Totals() domain.QuoteTotals
	MarginRate() float64
}

// AIServicer defines the generation operations the handlers use.
type AIServicer interface {
	GenerateSummary(ctx context.Context, tourID uuid.UUID) (domain.Tour, error)
	GenerateCover(ctx context.Context, tourID uuid.UUID) (domain.Tour, error)
	BudgetTips(ctx context.Context, tourID uuid.UUID) (string, error)
}

// ExportServicer defines the document export operations the handlers use.
type ExportServicer interface {
	Itinerary(ctx context.Context, tourID uuid.UUID) (service.Export, error)
	Quote(ctx context.Context) (service.Export, error)
}

// SettingsServicer defines the settings operations the handlers use.
type SettingsServicer interface {
	Get() domain.AppSettings
	Set(ctx context.Context, settings domain.AppSettings)
}

// Server holds all handler dependencies.
type Server struct {
	tours    TourServicer
	quote    QuoteServicer
	ai       AIServicer
	export   ExportServicer
	settings SettingsServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(tours TourServicer, quote QuoteServicer, ai AIServicer, export ExportServicer, settings SettingsServicer) *Server {
	return &Server{tours: tours, quote: quote, ai: ai, export: export, settings: settings}
}

// Routes returns the full API router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)

	r.Route("/tours", func(r chi.Router) {
		r.Get("/", s.ListTours)
		r.Post("/", s.CreateTour)
		r.Get("/open", s.GetOpenTour)
		r.Post("/close", s.CloseTour)

		r.Route("/{tourID}", func(r chi.Router) {
			r.Get("/", s.GetTour)
			r.Put("/", s.UpdateTour)
			r.Delete("/", s.DeleteTour)
			r.Post("/open", s.OpenTour)

			r.Get("/document", s.GetDocument)
			r.Get("/export", s.ExportItinerary)
			r.Post("/summary", s.GenerateSummary)
			r.Post("/cover", s.GenerateCover)
			r.Post("/budget-tips", s.BudgetTips)

			r.Route("/days", func(r chi.Router) {
				r.Post("/", s.AddDay)
				r.Route("/{dayID}", func(r chi.Router) {
					r.Patch("/", s.UpdateDay)
					r.Delete("/", s.RemoveDay)
					r.Post("/template", s.ImportTemplate)
					r.Route("/activities", func(r chi.Router) {
						r.Post("/", s.AddActivity)
						r.Patch("/{activityID}", s.UpdateActivity)
						r.Delete("/{activityID}", s.RemoveActivity)
					})
				})
			})
		})
	})

	r.Get("/templates", s.ListTemplates)
	r.Get("/catalog", s.ListCatalog)

	r.Route("/quote", func(r chi.Router) {
		r.Get("/", s.GetQuote)
		r.Delete("/", s.ResetQuote)
		r.Post("/lines", s.AddQuoteLine)
		r.Delete("/lines/{instanceID}", s.RemoveQuoteLine)
		r.Get("/print", s.PrintQuote)
	})

	r.Get("/settings", s.GetSettings)
	r.Put("/settings", s.UpdateSettings)

	return r
}

// GetHealth reports liveness. It has no dependencies so it can never fail.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
