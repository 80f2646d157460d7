package dto

import "github.com/Ahacad/financemonitor/internal/domain/models"

// DashboardResponse is the JSON structure returned by
// GET /api/v1/dashboards/:name.
type DashboardResponse struct {
	Name   string           `json:"name" example:"overview"`
	Title  string           `json:"title" example:"Economic Overview"`
	Series []SeriesResponse `json:"series"`
}

// NewDashboardResponse maps an assembled dashboard snapshot to its API
// representation.
func NewDashboardResponse(snap *models.DashboardSnapshot) DashboardResponse {
	series := make([]SeriesResponse, 0, len(snap.Series))
	for i := range snap.Series {
		series = append(series, NewSeriesResponse(&snap.Series[i]))
	}
	return DashboardResponse{
		Name:   snap.Name,
		Title:  snap.Title,
		Series: series,
	}
}
