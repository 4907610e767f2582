package domain

import "fmt"

// ActivityCategory classifies an activity. The set is closed: JSON decoding
// rejects values outside it, so an invalid category can never enter a Tour.
type ActivityCategory string

const (
	CategorySightseeing ActivityCategory = "Sightseeing"
	CategoryFood        ActivityCategory = "Food"
	CategoryStay        ActivityCategory = "Stay"
	CategoryTransport   ActivityCategory = "Transport"
	CategoryShopping    ActivityCategory = "Shopping"
	CategoryOther       ActivityCategory = "Other"
)

// ActivityCategories lists all valid categories in display order.
var ActivityCategories = []ActivityCategory{
	CategorySightseeing, CategoryFood, CategoryStay,
	CategoryTransport, CategoryShopping, CategoryOther,
}

// Valid reports whether c is one of the defined categories.
func (c ActivityCategory) Valid() bool {
	for _, v := range ActivityCategories {
		if c == v {
			return true
		}
	}
	return false
}

// UnmarshalText validates the category on decode.
func (c *ActivityCategory) UnmarshalText(b []byte) error {
	v := ActivityCategory(b)
	if !v.Valid() {
		return fmt.Errorf("%w: unknown activity category %q", ErrValidation, string(b))
	}
	*c = v
	return nil
}

// Currency is an ISO 4217 code from the small set the app supports.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
)

// Currencies lists all supported currencies. INR first — it is the default.
var Currencies = []Currency{CurrencyINR, CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyJPY}

// Valid reports whether c is a supported currency code.
func (c Currency) Valid() bool {
	for _, v := range Currencies {
		if c == v {
			return true
		}
	}
	return false
}

// UnmarshalText validates the currency code on decode.
func (c *Currency) UnmarshalText(b []byte) error {
	v := Currency(b)
	if !v.Valid() {
		return fmt.Errorf("%w: unknown currency %q", ErrValidation, string(b))
	}
	*c = v
	return nil
}

// Region keys the template and product reference tables.
type Region string

const (
	RegionHanoi   Region = "HANOI"
	RegionDanang  Region = "DANANG"
	RegionPhuQuoc Region = "PHU QUOC"
	RegionHCMC    Region = "HCMC"
)

// Regions lists all regions in catalog order.
var Regions = []Region{RegionHanoi, RegionDanang, RegionPhuQuoc, RegionHCMC}

// Valid reports whether r is a known region.
func (r Region) Valid() bool {
	for _, v := range Regions {
		if r == v {
			return true
		}
	}
	return false
}

// UnmarshalText validates the region on decode.
func (r *Region) UnmarshalText(b []byte) error {
	v := Region(b)
	if !v.Valid() {
		return fmt.Errorf("%w: unknown region %q", ErrValidation, string(b))
	}
	*r = v
	return nil
}

// ProductCategory distinguishes shared group departures from private tours
// in the priced catalog.
type ProductCategory string

const (
	ProductShared  ProductCategory = "SHARED"
	ProductPrivate ProductCategory = "PRIVATE"
)

// Valid reports whether p is a known product category.
func (p ProductCategory) Valid() bool {
	return p == ProductShared || p == ProductPrivate
}

// UnmarshalText validates the product category on decode.
func (p *ProductCategory) UnmarshalText(b []byte) error {
	v := ProductCategory(b)
	if !v.Valid() {
		return fmt.Errorf("%w: unknown product category %q", ErrValidation, string(b))
	}
	*p = v
	return nil
}
