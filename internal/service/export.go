package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nvats/travelog/internal/pdf"
	"github.com/nvats/travelog/internal/view"
)

const (
	opExport     = "export"
	opQuotePrint = "quote-print"
)

// Export is the result of rendering a document: the PDF bytes plus the
// suggested download filename.
type Export struct {
	Filename string
	Data     []byte
}

// ExportService renders tours and quotes to downloadable PDFs. Export
// failures are real errors — the handler surfaces them to the user — but
// they never leave partial state: rendering reads a projection and writes
// nothing.
type ExportService struct {
	tours    Tours
	settings Settings
	quote    *QuoteService
	ops      *inflight
}

// NewExportService constructs an ExportService.
func NewExportService(tours Tours, settings Settings, quote *QuoteService) *ExportService {
	return &ExportService{tours: tours, settings: settings, quote: quote, ops: newInflight()}
}

// Itinerary renders the tour's full itinerary document. Guarded: a second
// export while one is in flight gets domain.ErrBusy.
func (s *ExportService) Itinerary(ctx context.Context, tourID uuid.UUID) (Export, error) {
	release, err := s.ops.start(opExport)
	if err != nil {
		return Export{}, fmt.Errorf("service.ExportService.Itinerary: %w", err)
	}
	defer release()

	tour, err := s.tours.Get(tourID)
	if err != nil {
		return Export{}, fmt.Errorf("service.ExportService.Itinerary: %w", err)
	}

	doc := view.Project(tour)
	data, err := pdf.RenderItinerary(doc)
	if err != nil {
		return Export{}, fmt.Errorf("service.ExportService.Itinerary: %w", err)
	}
	return Export{Filename: pdf.Filename(doc.CustomerName, doc.Title), Data: data}, nil
}

// Quote renders the estimator's current quote as a price sheet, priced in
// the settings' default currency and signed with the agent's name.
func (s *ExportService) Quote(ctx context.Context) (Export, error) {
	release, err := s.ops.start(opQuotePrint)
	if err != nil {
		return Export{}, fmt.Errorf("service.ExportService.Quote: %w", err)
	}
	defer release()

	settings := s.settings.Get()
	data, err := pdf.RenderQuote(s.quote.Lines(), s.quote.Totals(), settings.DefaultCurrency, settings.UserName)
	if err != nil {
		return Export{}, fmt.Errorf("service.ExportService.Quote: %w", err)
	}
	return Export{Filename: "Tour_Package_Quote.pdf", Data: data}, nil
}
