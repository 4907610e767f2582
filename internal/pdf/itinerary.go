// Package pdf renders the exported documents — the full tour itinerary and
// the printed quote — as fixed-size A4 portrait PDFs. Rendering works from
// the view projection only; it never touches stores or mutates a tour.
package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/nvats/travelog/internal/view"
)

const (
	pageMargin = 15.0 // mm
	a4Width    = 210.0
)

var whitespace = regexp.MustCompile(`\s+`)

// Filename derives the suggested download name for a tour document:
// "customerName_title_Itinerary.pdf" with runs of whitespace collapsed to
// underscores. The view projection already substitutes "Guest" for a
// missing customer name.
func Filename(customerName, title string) string {
	name := whitespace.ReplaceAllString(customerName, "_")
	t := whitespace.ReplaceAllString(title, "_")
	return fmt.Sprintf("%s_%s_Itinerary.pdf", name, t)
}

// RenderItinerary draws the full travel itinerary document. Each day is
// drawn as one block; a block that would straddle the bottom margin is
// pushed to the next page rather than split.
func RenderItinerary(doc view.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	renderCover(pdf, doc)
	renderOverview(pdf, doc)
	renderInclusions(pdf, doc)

	for _, day := range doc.Days {
		renderDay(pdf, doc, day)
	}

	renderTotal(pdf, doc)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render itinerary: %w", err)
	}
	return buf.Bytes(), nil
}

func renderCover(pdf *gofpdf.Fpdf, doc view.Document) {
	if img, opts, ok := decodeDataURI(doc.CoverImage); ok {
		name := "cover"
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
		pdf.ImageOptions(name, pageMargin, pageMargin, a4Width-2*pageMargin, 0, true, opts, 0, "")
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, doc.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(100, 100, 100)
	sub := fmt.Sprintf("%s  ·  %d Days  ·  Prepared for %s", doc.Destination, doc.DayCount, doc.CustomerName)
	pdf.CellFormat(0, 8, sub, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
}

func renderOverview(pdf *gofpdf.Fpdf, doc view.Document) {
	pdf.SetFont("Helvetica", "I", 11)
	pdf.MultiCell(0, 6, doc.Overview, "", "L", false)
	pdf.Ln(4)
}

func renderInclusions(pdf *gofpdf.Fpdf, doc view.Document) {
	if doc.Inclusions == "" && doc.Exclusions == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 11)
	if doc.Inclusions != "" {
		pdf.CellFormat(0, 7, "Inclusions", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, doc.Inclusions, "", "L", false)
		pdf.SetFont("Helvetica", "B", 11)
	}
	if doc.Exclusions != "" {
		pdf.CellFormat(0, 7, "Exclusions", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, doc.Exclusions, "", "L", false)
	}
	pdf.Ln(4)
}

func renderDay(pdf *gofpdf.Fpdf, doc view.Document, day view.DocumentDay) {
	// Keep a day's block on one page when it fits: estimate its height and
	// break early if it would cross the bottom margin. Very long days still
	// flow across pages.
	estimate := 16.0 + float64(len(day.Activities))*12.0
	_, pageH := pdf.GetPageSize()
	if y := pdf.GetY(); y+estimate > pageH-pageMargin && estimate < pageH-2*pageMargin {
		pdf.AddPage()
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, fmt.Sprintf("Day %d — %s", day.DayNumber, day.Headline), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, day.Date, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	for _, act := range day.Activities {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(18, 6, act.StartTime, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		label := act.Name
		if act.Cost != nil {
			label = fmt.Sprintf("%s  (%s %s)", act.Name, doc.Currency, formatMoney(*act.Cost))
		}
		pdf.CellFormat(0, 6, fmt.Sprintf("%s  [%s]", label, act.Category), "", 1, "L", false, 0, "")
		if act.Notes != "" {
			pdf.SetX(pageMargin + 18)
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(120, 120, 120)
			pdf.MultiCell(0, 5, act.Notes, "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}
	}
	pdf.Ln(4)
}

func renderTotal(pdf *gofpdf.Fpdf, doc view.Document) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Total Cost: %s %s", doc.Currency, formatMoney(doc.TotalCost)), "T", 1, "R", false, 0, "")
}

// decodeDataURI extracts raw image bytes and gofpdf image options from a
// "data:image/...;base64," URI. External URLs and unknown formats are
// skipped (ok=false) — the document simply renders without a cover.
func decodeDataURI(uri string) ([]byte, gofpdf.ImageOptions, bool) {
	var imageType string
	switch {
	case strings.HasPrefix(uri, "data:image/jpeg;base64,"):
		imageType = "JPG"
	case strings.HasPrefix(uri, "data:image/png;base64,"):
		imageType = "PNG"
	default:
		return nil, gofpdf.ImageOptions{}, false
	}
	idx := strings.Index(uri, ",")
	raw, err := base64.StdEncoding.DecodeString(uri[idx+1:])
	if err != nil {
		return nil, gofpdf.ImageOptions{}, false
	}
	return raw, gofpdf.ImageOptions{ImageType: imageType}, true
}

// formatMoney renders an amount with thousands separators and no decimals,
// matching the app's on-screen price formatting.
func formatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	n := int64(v + 0.5)
	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
