package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/nvats/travelog/internal/domain"
	"github.com/nvats/travelog/internal/itinerary"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	textModel      = "gemini-3-flash-preview"
	imageModel     = "gemini-2.5-flash-image"

	// Cover images wider than this are downscaled before being stored as a
	// data URI inside the tour blob.
	maxCoverWidth = 1280
)

// Gemini calls the Google Generative Language REST API. A Gemini with an
// empty API key is valid and returns fallbacks for everything, so the rest
// of the app works without a key.
type Gemini struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

// NewGemini constructs the client. httpClient may be nil, in which case a
// client with a 60s timeout is used (image generation is slow).
func NewGemini(apiKey string, httpClient *http.Client, log *slog.Logger) *Gemini {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Gemini{apiKey: apiKey, baseURL: defaultBaseURL, client: httpClient, log: log}
}

var _ Generator = (*Gemini)(nil)

// Summary writes a compelling itinerary summary for the tour. On failure it
// returns the fallback text with ok=false so callers can show it without
// persisting it.
func (g *Gemini) Summary(ctx context.Context, tour domain.Tour) (string, bool) {
	var b strings.Builder
	fmt.Fprintf(&b, "As a professional travel advisor, write a compelling, beautiful, and informative summary for this tour itinerary.\n")
	fmt.Fprintf(&b, "Tour Title: %s\nDestination: %s\nNumber of Days: %d\n\nItinerary Details:\n", tour.Title, tour.Destination, len(tour.Days))
	for _, d := range tour.Days {
		b.WriteString(dayLine(d))
	}
	b.WriteString("\nKeep the tone inspiring and professional. Max 3 paragraphs.")

	text, err := g.generateText(ctx, b.String())
	if err != nil {
		g.log.Warn("ai: summary generation failed", "error", err)
		return FallbackSummary, false
	}
	return text, true
}

// BudgetTips asks for three professional tips on the tour's per-day budget.
func (g *Gemini) BudgetTips(ctx context.Context, tour domain.Tour) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this travel budget for a %d-day trip to %s.\n", len(tour.Days), tour.Destination)
	fmt.Fprintf(&b, "Total Cost: %.0f %s\n\nBreakdown:\n", itinerary.TotalCost(tour), tour.Currency)
	for _, d := range tour.Days {
		fmt.Fprintf(&b, "Day %d:", d.DayNumber)
		for i, a := range d.Activities {
			if i > 0 {
				b.WriteString(",")
			}
			var cost float64
			if a.Cost != nil {
				cost = *a.Cost
			}
			fmt.Fprintf(&b, " %s (%.0f %s)", a.Name, cost, tour.Currency)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nProvide 3 quick professional tips to optimize this budget or things to watch out for.")

	text, err := g.generateText(ctx, b.String())
	if err != nil {
		g.log.Warn("ai: budget analysis failed", "error", err)
		return FallbackBudgetTips
	}
	return text
}

// CoverImage generates a destination photograph and returns it as a JPEG
// data URI, downscaled to at most maxCoverWidth pixels wide.
func (g *Gemini) CoverImage(ctx context.Context, tour domain.Tour) (string, bool) {
	prompt := fmt.Sprintf("A cinematic, high-resolution travel photograph of %s. Professional photography, stunning lighting, wanderlust vibe.", tour.Destination)

	raw, err := g.generateImage(ctx, prompt)
	if err != nil {
		g.log.Warn("ai: cover image generation failed", "error", err)
		return "", false
	}
	uri, err := encodeCover(raw)
	if err != nil {
		g.log.Warn("ai: cover image encoding failed", "error", err)
		return "", false
	}
	return uri, true
}

func dayLine(d domain.TourDay) string {
	names := make([]string, len(d.Activities))
	for i, a := range d.Activities {
		names[i] = a.Name
	}
	return fmt.Sprintf("Day %d: %s. Activities: %s\n", d.DayNumber, d.Summary, strings.Join(names, ", "))
}

// --- REST plumbing ----------------------------------------------------------

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.generate(ctx, textModel, prompt)
	if err != nil {
		return "", err
	}
	for _, c := range resp.Candidates {
		for _, p := range c.Content.Parts {
			if p.Text != "" {
				return p.Text, nil
			}
		}
	}
	return "", fmt.Errorf("ai: empty response")
}

func (g *Gemini) generateImage(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.generate(ctx, imageModel, prompt)
	if err != nil {
		return nil, err
	}
	for _, c := range resp.Candidates {
		for _, p := range c.Content.Parts {
			if p.InlineData != nil {
				return base64.StdEncoding.DecodeString(p.InlineData.Data)
			}
		}
	}
	return nil, fmt.Errorf("ai: response contained no image")
}

func (g *Gemini) generate(ctx context.Context, model, prompt string) (*generateResponse, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("ai: no API key configured")
	}

	body, err := json.Marshal(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	res, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("ai: %s returned %d: %s", model, res.StatusCode, snippet)
	}

	var out generateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("ai: decode response: %w", err)
	}
	return &out, nil
}

// encodeCover decodes generated image bytes, downscales them if oversized,
// and re-encodes as a JPEG data URI suitable for embedding in the tour blob.
func encodeCover(raw []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	if img.Bounds().Dx() > maxCoverWidth {
		img = imaging.Resize(img, maxCoverWidth, 0, imaging.Lanczos)
	}
	return EncodeDataURI(img)
}

// EncodeDataURI encodes an image as a "data:image/jpeg;base64," URI.
func EncodeDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
