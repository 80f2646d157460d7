package catalog

import "github.com/Ahacad/financemonitor/internal/domain/models"

// Indicator is one catalog entry: a friendly key bound to an upstream series
// plus the derivation dashboards display by default.
type Indicator struct {
	Key            string `json:"key"`
	SeriesID       string `json:"series_id"`
	Name           string `json:"name"`
	Group          string `json:"group"`
	Transformation string `json:"transformation,omitempty"`
	Frequency      string `json:"frequency,omitempty"`
	Limit          int    `json:"limit,omitempty"`
}

// Request builds the transformation request a dashboard applies to this
// indicator's raw series.
func (i Indicator) Request() models.TransformationRequest {
	return models.TransformationRequest{
		Transformation: i.Transformation,
		Frequency:      i.Frequency,
		Limit:          i.Limit,
	}
}

// Dashboard is a named group of indicators rendered together.
type Dashboard struct {
	Name       string      `json:"name"`
	Title      string      `json:"title"`
	Indicators []Indicator `json:"indicators"`
}

// indicators is the static catalog. Keys are stable API identifiers; series
// IDs are the upstream (FRED) codes.
var indicators = []Indicator{
	{Key: "gdp", SeriesID: "GDP", Name: "Gross Domestic Product", Group: "output", Transformation: "pct_change", Limit: 20},
	{Key: "real_gdp", SeriesID: "GDPC1", Name: "Real Gross Domestic Product", Group: "output", Transformation: "pct_change", Limit: 20},
	{Key: "industrial_production", SeriesID: "INDPRO", Name: "Industrial Production Index", Group: "output", Transformation: "pct_change_yoy", Limit: 24},
	{Key: "unemployment", SeriesID: "UNRATE", Name: "Unemployment Rate", Group: "labor", Limit: 24},
	{Key: "payrolls", SeriesID: "PAYEMS", Name: "Total Nonfarm Payrolls", Group: "labor", Transformation: "diff", Limit: 24},
	{Key: "cpi", SeriesID: "CPIAUCSL", Name: "Consumer Price Index", Group: "inflation", Transformation: "pct_change_yoy", Limit: 24},
	{Key: "core_cpi", SeriesID: "CPILFESL", Name: "Core Consumer Price Index", Group: "inflation", Transformation: "pct_change_yoy", Limit: 24},
	{Key: "pce", SeriesID: "PCEPI", Name: "PCE Price Index", Group: "inflation", Transformation: "pct_change_yoy", Limit: 24},
	{Key: "fed_funds", SeriesID: "FEDFUNDS", Name: "Federal Funds Effective Rate", Group: "rates", Limit: 36},
	{Key: "treasury_10y", SeriesID: "DGS10", Name: "10-Year Treasury Yield", Group: "rates", Frequency: "m", Limit: 36},
	{Key: "housing_starts", SeriesID: "HOUST", Name: "Housing Starts", Group: "housing", Transformation: "moving_avg_3", Limit: 24},
	{Key: "consumer_sentiment", SeriesID: "UMCSENT", Name: "Consumer Sentiment", Group: "sentiment", Limit: 24},
}

// dashboards groups catalog keys into the views the frontend renders.
var dashboards = []Dashboard{
	{Name: "overview", Title: "Economic Overview", Indicators: pick("gdp", "unemployment", "cpi", "fed_funds")},
	{Name: "inflation", Title: "Inflation Watch", Indicators: pick("cpi", "core_cpi", "pce", "fed_funds")},
	{Name: "labor", Title: "Labor Market", Indicators: pick("unemployment", "payrolls", "consumer_sentiment")},
	{Name: "rates", Title: "Interest Rates", Indicators: pick("fed_funds", "treasury_10y")},
}

func pick(keys ...string) []Indicator {
	out := make([]Indicator, 0, len(keys))
	for _, k := range keys {
		if ind, ok := IndicatorByKey(k); ok {
			out = append(out, ind)
		}
	}
	return out
}

// Indicators returns the full catalog.
func Indicators() []Indicator {
	out := make([]Indicator, len(indicators))
	copy(out, indicators)
	return out
}

// IndicatorByKey looks up a catalog entry by its API key.
func IndicatorByKey(key string) (Indicator, bool) {
	for _, ind := range indicators {
		if ind.Key == key {
			return ind, true
		}
	}
	return Indicator{}, false
}

// DashboardByName looks up a dashboard definition.
func DashboardByName(name string) (Dashboard, bool) {
	for _, d := range dashboards {
		if d.Name == name {
			return d, true
		}
	}
	return Dashboard{}, false
}

// Dashboards returns every dashboard definition.
func Dashboards() []Dashboard {
	out := make([]Dashboard, len(dashboards))
	copy(out, dashboards)
	return out
}
