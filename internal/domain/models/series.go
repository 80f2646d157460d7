package models

// Observation is a single dated data point in an economic time series.
//
// Value is nil when the source reports no data for that date (FRED encodes
// this as "."). nil is the only representation of absence; transformation
// stages never substitute a sentinel number for it.
type Observation struct {
	Date   string   `json:"date" example:"2024-01-01"`
	Value  *float64 `json:"value"`
	Status string   `json:"status,omitempty"`
}

// Series is an economic time series plus the metadata reported by the
// upstream provider.
//
// Observations are kept in ascending date order. The transformation engine
// treats a Series as an immutable value: every stage produces a fresh
// observation slice and never writes into its input.
//
// Frequency, Units, and Transformation are overwritten by the engine only
// when the corresponding pipeline stage actually ran; otherwise they keep
// the values reported by the source.
type Series struct {
	ID                 string        `json:"id" example:"GDP"`
	Title              string        `json:"title" example:"Gross Domestic Product"`
	Units              string        `json:"units" example:"Billions of Dollars"`
	Frequency          string        `json:"frequency" example:"Quarterly"`
	FrequencyShort     string        `json:"frequency_short" example:"Q"`
	SeasonalAdjustment string        `json:"seasonal_adjustment,omitempty"`
	LastUpdated        string        `json:"last_updated,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	Transformation     string        `json:"transformation,omitempty" example:"pct_change"`
	Observations       []Observation `json:"observations"`
}

// Float returns a pointer to v. Convenience for building observation
// fixtures and upstream decoding.
func Float(v float64) *float64 { return &v }
