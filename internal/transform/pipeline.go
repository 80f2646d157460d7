package transform

import (
	"strings"

	"github.com/Ahacad/financemonitor/internal/domain/models"
)

// DefaultAggregationMethod is used when a resample is requested without an
// explicit bucket reduction. FRED aggregates with avg by default.
const DefaultAggregationMethod = "avg"

// frequencyNames maps normalized codes to the display names FRED reports.
var frequencyNames = map[string]string{
	"d": "Daily",
	"w": "Weekly",
	"m": "Monthly",
	"q": "Quarterly",
	"a": "Annual",
}

// Apply runs the transformation pipeline against a series. Stage order is
// fixed: resample, unit conversion, point transform, date-range filter,
// limit. A stage whose request parameter is absent is skipped, and each
// stage consumes the previous stage's output. The input series is never
// mutated.
//
// Metadata on the returned series reflects exactly the stages that ran:
// Frequency/FrequencyShort after a real resample, Units after a real unit
// conversion, Transformation after a recognized point transform. Stages that
// fell back to identity (unsupported pair, unknown kind) leave the source
// metadata in place.
func Apply(series models.Series, req models.TransformationRequest) models.Series {
	out := series
	if len(series.Observations) == 0 {
		out.Observations = []models.Observation{}
		return out
	}
	if req.IsZero() {
		return out
	}
	obs := series.Observations

	if req.Frequency != "" && SupportedResample(series.FrequencyShort, req.Frequency) {
		method := req.AggregationMethod
		if method == "" {
			method = DefaultAggregationMethod
		}
		obs = Resample(obs, series.FrequencyShort, req.Frequency, method)
		code := NormalizeFrequency(req.Frequency)
		out.FrequencyShort = strings.ToUpper(code)
		if name, ok := frequencyNames[code]; ok {
			out.Frequency = name
		} else {
			out.Frequency = req.Frequency
		}
	}

	if req.Units != "" && SupportedUnitConversion(series.Units, req.Units) {
		obs = ConvertUnits(obs, series.Units, req.Units)
		out.Units = req.Units
	}

	if req.Transformation != "" && KnownTransformation(req.Transformation) {
		obs = Pointwise(obs, req.Transformation)
		out.Transformation = req.Transformation
	}

	if req.StartDate != "" || req.EndDate != "" {
		obs = FilterRange(obs, req.StartDate, req.EndDate)
	}

	if req.Limit > 0 {
		obs = Limit(obs, req.Limit)
	}

	out.Observations = obs
	return out
}
