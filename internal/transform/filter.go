package transform

import "github.com/Ahacad/financemonitor/internal/domain/models"

// FilterRange keeps observations whose date falls within the inclusive
// [start, end] window. Empty bounds are open. Dates are canonical YYYY-MM-DD,
// so plain string comparison orders them correctly.
func FilterRange(obs []models.Observation, start, end string) []models.Observation {
	if len(obs) == 0 {
		return []models.Observation{}
	}
	if start == "" && end == "" {
		return cloneObs(obs)
	}
	out := make([]models.Observation, 0, len(obs))
	for _, o := range obs {
		if start != "" && o.Date < start {
			continue
		}
		if end != "" && o.Date > end {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Limit keeps only the most recent n observations. Non-positive n or n larger
// than the sequence returns the sequence unchanged.
func Limit(obs []models.Observation, n int) []models.Observation {
	if len(obs) == 0 {
		return []models.Observation{}
	}
	if n <= 0 || n >= len(obs) {
		return cloneObs(obs)
	}
	return cloneObs(obs[len(obs)-n:])
}
