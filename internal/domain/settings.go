package domain

// AppSettings holds the user-level preferences persisted alongside the tour
// collection. DefaultCurrency seeds the currency of every new tour; UserName
// is printed as the agent name on exported documents.
type AppSettings struct {
	DefaultCurrency Currency `json:"default_currency"`
	UserName        string   `json:"user_name"`
}

// DefaultSettings is the state used before any settings blob has been saved,
// and the fallback when a saved blob fails to parse.
func DefaultSettings() AppSettings {
	return AppSettings{DefaultCurrency: CurrencyINR}
}
