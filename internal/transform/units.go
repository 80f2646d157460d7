package transform

import (
	"strings"

	"github.com/Ahacad/financemonitor/internal/domain/models"
)

// unitPair identifies one source→target unit rescaling.
type unitPair struct {
	source string
	target string
}

// unitScales is the fixed table of supported conversions. An unknown pair,
// like an unsupported frequency pair, falls back to identity.
var unitScales = map[unitPair]func(float64) float64{
	{"billions", "millions"}:  func(v float64) float64 { return v * 1000 },
	{"millions", "billions"}:  func(v float64) float64 { return v / 1000 },
	{"thousands", "millions"}: func(v float64) float64 { return v / 1000 },
	{"percent", "decimal"}:    func(v float64) float64 { return v / 100 },
	{"decimal", "percent"}:    func(v float64) float64 { return v * 100 },
}

// NormalizeUnit reduces a unit label to its leading keyword: FRED reports
// e.g. "Billions of Dollars", which conversion keys know as "billions".
func NormalizeUnit(units string) string {
	u := strings.ToLower(strings.TrimSpace(units))
	if i := strings.IndexAny(u, " \t"); i > 0 {
		u = u[:i]
	}
	return u
}

// SupportedUnitConversion reports whether the source→target pair is in the
// scale table.
func SupportedUnitConversion(sourceUnits, targetUnits string) bool {
	src, dst := NormalizeUnit(sourceUnits), NormalizeUnit(targetUnits)
	if src == dst {
		return false
	}
	_, ok := unitScales[unitPair{src, dst}]
	return ok
}

// ConvertUnits rescales every present value from source units to target
// units. Absent values stay absent; unknown pairs and identical units return
// the sequence unchanged.
func ConvertUnits(obs []models.Observation, sourceUnits, targetUnits string) []models.Observation {
	if len(obs) == 0 {
		return []models.Observation{}
	}
	src, dst := NormalizeUnit(sourceUnits), NormalizeUnit(targetUnits)
	scale, ok := unitScales[unitPair{src, dst}]
	if !ok || src == dst {
		return cloneObs(obs)
	}
	out := cloneObs(obs)
	for i := range obs {
		if obs[i].Value == nil {
			continue
		}
		v := scale(*obs[i].Value)
		out[i].Value = &v
	}
	return out
}
