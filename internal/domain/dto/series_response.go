package dto

import "github.com/Ahacad/financemonitor/internal/domain/models"

// ObservationResponse is one data point as rendered to API clients. A null
// value means the observation is absent for that date, distinct from zero.
type ObservationResponse struct {
	Date   string   `json:"date" example:"2024-01-01"`
	Value  *float64 `json:"value" example:"27000.5"`
	Status string   `json:"status,omitempty"`
}

// SeriesResponse is the JSON structure returned by GET /api/v1/series/:id.
//
// Fields mirror the domain Series but stay decoupled from it so the API
// surface can evolve independently of the engine's model.
type SeriesResponse struct {
	ID                 string                `json:"id" example:"GDP"`
	Title              string                `json:"title" example:"Gross Domestic Product"`
	Units              string                `json:"units" example:"Billions of Dollars"`
	Frequency          string                `json:"frequency" example:"Quarterly"`
	FrequencyShort     string                `json:"frequency_short" example:"Q"`
	SeasonalAdjustment string                `json:"seasonal_adjustment,omitempty"`
	LastUpdated        string                `json:"last_updated,omitempty"`
	Notes              string                `json:"notes,omitempty"`
	Transformation     string                `json:"transformation,omitempty" example:"pct_change"`
	Count              int                   `json:"count" example:"120"`
	Observations       []ObservationResponse `json:"observations"`
}

// NewSeriesResponse maps a domain series to its API representation.
func NewSeriesResponse(s *models.Series) SeriesResponse {
	observations := make([]ObservationResponse, 0, len(s.Observations))
	for _, o := range s.Observations {
		observations = append(observations, ObservationResponse{
			Date:   o.Date,
			Value:  o.Value,
			Status: o.Status,
		})
	}
	return SeriesResponse{
		ID:                 s.ID,
		Title:              s.Title,
		Units:              s.Units,
		Frequency:          s.Frequency,
		FrequencyShort:     s.FrequencyShort,
		SeasonalAdjustment: s.SeasonalAdjustment,
		LastUpdated:        s.LastUpdated,
		Notes:              s.Notes,
		Transformation:     s.Transformation,
		Count:              len(observations),
		Observations:       observations,
	}
}
