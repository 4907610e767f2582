package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nvats/travelog/internal/domain"
)

// quoteResponse is the full estimator state: lines newest-first plus the
// derived totals. Totals are recomputed on every read, never cached.
type quoteResponse struct {
	Lines      []domain.QuoteLine `json:"lines"`
	Totals     domain.QuoteTotals `json:"totals"`
	MarginRate float64            `json:"margin_rate"`
}

// GetQuote handles GET /quote.
func (s *Server) GetQuote(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.quoteState())
}

// AddQuoteLine handles POST /quote/lines.
func (s *Server) AddQuoteLine(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondRequestError(w, "invalid request body: "+err.Error())
		return
	}
	if _, err := s.quote.AddLine(body.ProductID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, s.quoteState())
}

// RemoveQuoteLine handles DELETE /quote/lines/{instanceID}. Unknown
// instance IDs are absorbed like any other navigational no-op.
func (s *Server) RemoveQuoteLine(w http.ResponseWriter, r *http.Request) {
	instanceID, ok := pathUUID(w, r, "instanceID")
	if !ok {
		return
	}
	s.quote.RemoveLine(instanceID)
	respondJSON(w, http.StatusOK, s.quoteState())
}

// ResetQuote handles DELETE /quote.
func (s *Server) ResetQuote(w http.ResponseWriter, r *http.Request) {
	s.quote.Reset()
	respondJSON(w, http.StatusOK, s.quoteState())
}

// PrintQuote handles GET /quote/print, returning the quote PDF.
func (s *Server) PrintQuote(w http.ResponseWriter, r *http.Request) {
	export, err := s.export.Quote(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	servePDF(w, export.Filename, export.Data)
}

func (s *Server) quoteState() quoteResponse {
	return quoteResponse{
		Lines:      s.quote.Lines(),
		Totals:     s.quote.Totals(),
		MarginRate: s.quote.MarginRate(),
	}
}
