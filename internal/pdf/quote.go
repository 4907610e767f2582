package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/nvats/travelog/internal/domain"
)

// RenderQuote draws the cost estimator's current quote as a one-page A4
// price sheet: one row per line, then base / margin / selling totals.
func RenderQuote(lines []domain.QuoteLine, totals domain.QuoteTotals, currency domain.Currency, agentName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 11, "Tour Package Quote", "", 1, "L", false, 0, "")
	if agentName != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 6, fmt.Sprintf("Prepared by %s", agentName), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(4)

	// Table header
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(110, 8, "Tour", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 8, "Inclusions", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("Cost (%s)", currency), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, l := range lines {
		name := l.Product.Name
		if len(name) > 62 {
			name = name[:59] + "..."
		}
		pdf.CellFormat(110, 7, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, l.Product.Inclusions, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, formatMoney(l.Product.BaseCost), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	totalRow := func(label string, v float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(145, 8, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, formatMoney(v), "T", 1, "R", false, 0, "")
	}
	totalRow("Base Cost", totals.Base, false)
	totalRow("Margin", totals.Margin, false)
	totalRow("Selling Price", totals.Selling, true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render quote: %w", err)
	}
	return buf.Bytes(), nil
}
