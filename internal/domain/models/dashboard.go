package models

// DashboardSnapshot is the assembled result of fetching every series a
// dashboard definition names, each already transformed with its indicator's
// default derivation.
type DashboardSnapshot struct {
	Name   string   `json:"name" example:"overview"`
	Title  string   `json:"title" example:"Economic Overview"`
	Series []Series `json:"series"`
}
