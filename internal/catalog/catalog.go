// Package catalog exposes the read-only reference tables — regional day
// templates and priced tour products — together with filtering and the
// quote margin arithmetic. Lookups return copies; nothing in this package
// ever mutates the tables.
package catalog

import (
	"strings"

	"github.com/nvats/travelog/internal/domain"
)

// DefaultMarginRate is the flat markup applied to a quote's base cost.
// It is a configuration point (see config.QuoteMarginRate), not a user
// setting.
const DefaultMarginRate = 0.20

// Products returns catalog products for the region, optionally narrowed by
// a case-insensitive substring match on the product name. Results keep the
// table's definition order.
func Products(region domain.Region, query string) []domain.TourProduct {
	out := []domain.TourProduct{}
	q := strings.ToLower(query)
	for _, p := range products {
		if p.Region != region {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ProductsByCategory is Products additionally narrowed to a shared/private
// category.
func ProductsByCategory(region domain.Region, category domain.ProductCategory, query string) []domain.TourProduct {
	out := []domain.TourProduct{}
	for _, p := range Products(region, query) {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ProductByID returns the catalog product with the given key.
func ProductByID(id string) (domain.TourProduct, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.TourProduct{}, false
}

// Templates returns day templates for the region, optionally narrowed by a
// case-insensitive substring match on the template name, in definition order.
func Templates(region domain.Region, query string) []domain.DayTemplate {
	out := []domain.DayTemplate{}
	q := strings.ToLower(query)
	for _, t := range templates {
		if t.Region != region {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.Name), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TemplateByID returns the day template with the given key.
func TemplateByID(id string) (domain.DayTemplate, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return domain.DayTemplate{}, false
}

// Totals folds quote lines into base/margin/selling figures. An empty line
// set yields all zeroes.
func Totals(lines []domain.QuoteLine, marginRate float64) domain.QuoteTotals {
	var base float64
	for _, l := range lines {
		base += l.Product.BaseCost
	}
	margin := base * marginRate
	return domain.QuoteTotals{Base: base, Margin: margin, Selling: base + margin}
}
