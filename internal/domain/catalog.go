package domain

import "github.com/google/uuid"

// TourProduct is one priced entry of the read-only regional catalog used by
// the cost estimator. Products are reference data: importing or quoting one
// never mutates the table it came from.
type TourProduct struct {
	ID          string          `json:"id"` // catalog key, e.g. "HN1"
	Region      Region          `json:"region"`
	Category    ProductCategory `json:"category"`
	Name        string          `json:"name"`
	BaseCost    float64         `json:"base_cost"`
	Description string          `json:"description"`
	Inclusions  string          `json:"inclusions"`
}

// QuoteLine is a catalog product placed on a quote. InstanceID is generated
// fresh per add so the same product can appear on a quote multiple times.
type QuoteLine struct {
	InstanceID uuid.UUID   `json:"instance_id"`
	Product    TourProduct `json:"product"`
}

// QuoteTotals is the priced summary of a set of quote lines:
// Base = Σ baseCost, Margin = Base × rate, Selling = Base + Margin.
type QuoteTotals struct {
	Base    float64 `json:"base"`
	Margin  float64 `json:"margin"`
	Selling float64 `json:"selling"`
}

// DayTemplate is a predefined bundle of activities importable into a day.
// Template activities carry no IDs — a fresh UUID is assigned to each copy
// at import time.
type DayTemplate struct {
	ID          string             `json:"id"` // catalog key, e.g. "T-HN1"
	Region      Region             `json:"region"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Activities  []TemplateActivity `json:"activities"`
}

// TemplateActivity is an activity blueprint inside a DayTemplate.
type TemplateActivity struct {
	Name      string           `json:"name"`
	StartTime string           `json:"start_time"`
	Category  ActivityCategory `json:"category"`
	Notes     string           `json:"notes"`
}
