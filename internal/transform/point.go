package transform

import (
	"math"

	"github.com/Ahacad/financemonitor/internal/domain/models"
)

// movingAvgPeriods maps each moving-average kind to its trailing window size.
// Plain "moving_avg" is an alias for the 3-period window.
var movingAvgPeriods = map[string]int{
	"moving_avg":    3,
	"moving_avg_3":  3,
	"moving_avg_4":  4,
	"moving_avg_6":  6,
	"moving_avg_12": 12,
}

// pointKinds is the set of recognized non-moving-average transform kinds.
var pointKinds = map[string]bool{
	"pct_change":     true,
	"pct_change_yoy": true,
	"diff":           true,
	"log":            true,
	"cumulative_sum": true,
	"normalize":      true,
}

// KnownTransformation reports whether kind names a transform that actually
// modifies values. "none" and unrecognized kinds are identity.
func KnownTransformation(kind string) bool {
	if _, ok := movingAvgPeriods[kind]; ok {
		return true
	}
	return pointKinds[kind]
}

// Pointwise applies a single numeric transform across the whole sequence.
// The output has the same length as the input and the i-th output keeps the
// i-th input's date. Undefined arithmetic (division by zero, log of a
// non-positive number, insufficient history) yields a nil value at that
// position rather than an error. An unrecognized kind is identity.
func Pointwise(obs []models.Observation, kind string) []models.Observation {
	if len(obs) == 0 {
		return []models.Observation{}
	}
	if p, ok := movingAvgPeriods[kind]; ok {
		return movingAverage(obs, p)
	}
	switch kind {
	case "pct_change":
		return pctChange(obs)
	case "pct_change_yoy":
		return pctChangeYoY(obs)
	case "diff":
		return diff(obs)
	case "log":
		return logValues(obs)
	case "cumulative_sum":
		return cumulativeSum(obs)
	case "normalize":
		return normalize(obs)
	default:
		return cloneObs(obs)
	}
}

// cloneObs returns a shallow copy of the sequence. Value pointers are shared
// but never written through, so the input stays untouched.
func cloneObs(obs []models.Observation) []models.Observation {
	out := make([]models.Observation, len(obs))
	copy(out, obs)
	return out
}

func pctChange(obs []models.Observation) []models.Observation {
	out := cloneObs(obs)
	out[0].Value = nil
	for i := 1; i < len(obs); i++ {
		prev, cur := obs[i-1].Value, obs[i].Value
		if prev == nil || cur == nil || *prev == 0 {
			out[i].Value = nil
			continue
		}
		v := (*cur - *prev) / *prev * 100
		out[i].Value = &v
	}
	return out
}

// pctChangeYoY compares each observation with the one a calendar year
// earlier, matched by (month, day) only. The index is filled during the same
// forward pass that computes results, so each lookup sees the most recent
// prior observation sharing its month and day; later entries overwrite
// earlier ones. Feb 29 finds no match in a non-leap prior year, and series
// with gaps may match an entry more than one year back. Downstream consumers
// depend on these exact quirks, so they stay.
func pctChangeYoY(obs []models.Observation) []models.Observation {
	out := cloneObs(obs)
	byMonthDay := make(map[string]*float64, len(obs))
	for i, o := range obs {
		key := monthDayKey(o.Date)
		prior, found := byMonthDay[key]
		if !found || prior == nil || *prior == 0 || o.Value == nil {
			out[i].Value = nil
		} else {
			v := (*o.Value - *prior) / *prior * 100
			out[i].Value = &v
		}
		byMonthDay[key] = o.Value
	}
	return out
}

// monthDayKey extracts "MM-DD" from a canonical YYYY-MM-DD date.
func monthDayKey(date string) string {
	if len(date) >= 10 {
		return date[5:10]
	}
	return date
}

func diff(obs []models.Observation) []models.Observation {
	out := cloneObs(obs)
	out[0].Value = nil
	for i := 1; i < len(obs); i++ {
		prev, cur := obs[i-1].Value, obs[i].Value
		if prev == nil || cur == nil {
			out[i].Value = nil
			continue
		}
		v := *cur - *prev
		out[i].Value = &v
	}
	return out
}

func logValues(obs []models.Observation) []models.Observation {
	out := cloneObs(obs)
	for i := range obs {
		if obs[i].Value == nil || *obs[i].Value <= 0 {
			out[i].Value = nil
			continue
		}
		v := math.Log(*obs[i].Value)
		out[i].Value = &v
	}
	return out
}

// movingAverage computes a trailing window of size p. Positions with fewer
// than p observations of history are nil. Within a full window the mean is
// taken over present values only; a window with zero present values is nil.
func movingAverage(obs []models.Observation, p int) []models.Observation {
	out := cloneObs(obs)
	for i := range obs {
		if i < p-1 {
			out[i].Value = nil
			continue
		}
		sum, n := 0.0, 0
		for j := i - p + 1; j <= i; j++ {
			if v := obs[j].Value; v != nil {
				sum += *v
				n++
			}
		}
		if n == 0 {
			out[i].Value = nil
			continue
		}
		v := sum / float64(n)
		out[i].Value = &v
	}
	return out
}

// cumulativeSum keeps a running total of present values. Positions whose own
// value is absent stay absent and do not advance the total.
func cumulativeSum(obs []models.Observation) []models.Observation {
	out := cloneObs(obs)
	total := 0.0
	for i := range obs {
		if obs[i].Value == nil {
			continue
		}
		total += *obs[i].Value
		v := total
		out[i].Value = &v
	}
	return out
}

// normalize min-max scales present values to [0, 1]. When all present values
// are equal, each maps to 1. A sequence with no present values is returned
// unchanged.
func normalize(obs []models.Observation) []models.Observation {
	lo, hi := math.Inf(1), math.Inf(-1)
	present := 0
	for _, o := range obs {
		if o.Value == nil {
			continue
		}
		present++
		if *o.Value < lo {
			lo = *o.Value
		}
		if *o.Value > hi {
			hi = *o.Value
		}
	}
	if present == 0 {
		return cloneObs(obs)
	}
	out := cloneObs(obs)
	span := hi - lo
	for i := range obs {
		if obs[i].Value == nil {
			continue
		}
		var v float64
		if span == 0 {
			v = 1
		} else {
			v = (*obs[i].Value - lo) / span
		}
		out[i].Value = &v
	}
	return out
}
