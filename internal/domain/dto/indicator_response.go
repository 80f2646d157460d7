package dto

import "github.com/Ahacad/financemonitor/internal/catalog"

// IndicatorResponse is the API shape of one catalog entry.
type IndicatorResponse struct {
	Key            string `json:"key" example:"gdp"`
	SeriesID       string `json:"series_id" example:"GDP"`
	Name           string `json:"name" example:"Gross Domestic Product"`
	Group          string `json:"group" example:"output"`
	Transformation string `json:"transformation,omitempty" example:"pct_change"`
	Frequency      string `json:"frequency,omitempty" example:"m"`
	Limit          int    `json:"limit,omitempty" example:"20"`
}

// NewIndicatorResponses maps the catalog to its API representation.
func NewIndicatorResponses(indicators []catalog.Indicator) []IndicatorResponse {
	out := make([]IndicatorResponse, 0, len(indicators))
	for _, ind := range indicators {
		out = append(out, IndicatorResponse{
			Key:            ind.Key,
			SeriesID:       ind.SeriesID,
			Name:           ind.Name,
			Group:          ind.Group,
			Transformation: ind.Transformation,
			Frequency:      ind.Frequency,
			Limit:          ind.Limit,
		})
	}
	return out
}
