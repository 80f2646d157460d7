package models

// TransformationRequest describes the derivation a caller wants applied
// to a raw series. Every field is optional; an empty field skips the
// corresponding pipeline stage.
//
// Fields:
//   - Transformation: point transform kind (pct_change, pct_change_yoy, diff,
//     log, moving_avg, moving_avg_3/6/12/4, cumulative_sum, normalize, none).
//   - Frequency: target frequency code (d, w, m, q, a; upstream short codes
//     such as "M" or "Q" are accepted and normalized).
//   - AggregationMethod: bucket reduction for resampling (first, last, avg,
//     sum). Defaults to avg when Frequency is set without it.
//   - Units: target unit label (millions, billions, thousands, percent, decimal).
//   - StartDate / EndDate: inclusive date window, YYYY-MM-DD.
//   - Limit: keep only the most recent N observations, applied last.
type TransformationRequest struct {
	Transformation    string `json:"transformation,omitempty"`
	Frequency         string `json:"frequency,omitempty"`
	AggregationMethod string `json:"aggregation_method,omitempty"`
	Units             string `json:"units,omitempty"`
	StartDate         string `json:"start_date,omitempty"`
	EndDate           string `json:"end_date,omitempty"`
	Limit             int    `json:"limit,omitempty"`
}

// IsZero reports whether the request asks for no transformation at all.
func (r TransformationRequest) IsZero() bool {
	return r == TransformationRequest{}
}
