package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Ahacad/financemonitor/internal/domain/models"
)

// freqPair identifies one source→target frequency conversion.
type freqPair struct {
	source string
	target string
}

// bucketKeys maps each supported conversion to the function deriving a
// calendar bucket key from an observation date. The whitelist is deliberate:
// upstream series only ever need these conversions, and anything outside it
// (including source == target) passes through untouched.
var bucketKeys = map[freqPair]func(date string) string{
	{"d", "m"}: monthBucket,
	{"d", "q"}: quarterBucket,
	{"m", "q"}: quarterBucket,
	{"m", "a"}: yearBucket,
	{"q", "a"}: yearBucket,
}

func monthBucket(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}

func yearBucket(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return date
}

func quarterBucket(date string) string {
	if len(date) < 7 {
		return date
	}
	month, err := strconv.Atoi(date[5:7])
	if err != nil || month < 1 || month > 12 {
		return date
	}
	return fmt.Sprintf("%s-Q%d", date[:4], (month-1)/3+1)
}

// NormalizeFrequency reduces a frequency label to its lowercase single-letter
// code: "Q", "Quarterly", and "q" all become "q".
func NormalizeFrequency(freq string) string {
	f := strings.ToLower(strings.TrimSpace(freq))
	if f == "" {
		return ""
	}
	switch f[0] {
	case 'd', 'w', 'm', 'q':
		return f[:1]
	case 'a':
		return "a"
	case 'y': // "yearly"
		return "a"
	default:
		return f
	}
}

// SupportedResample reports whether the source→target conversion is on the
// whitelist.
func SupportedResample(sourceFreq, targetFreq string) bool {
	_, ok := bucketKeys[freqPair{NormalizeFrequency(sourceFreq), NormalizeFrequency(targetFreq)}]
	return ok
}

// Resample groups an ascending sequence into coarser calendar buckets and
// reduces each bucket to a single observation. method is one of first, last,
// avg, or sum; anything else is treated as avg. An unsupported frequency pair
// returns the sequence unchanged.
//
// Bucket representatives keep real observed dates: first/last use the chosen
// observation's own date, while avg/sum are labeled with the bucket's last
// observed date, matching the as-of reporting convention of macro data
// vendors. Output is sorted ascending by representative date.
func Resample(obs []models.Observation, sourceFreq, targetFreq, method string) []models.Observation {
	if len(obs) == 0 {
		return []models.Observation{}
	}
	keyOf, ok := bucketKeys[freqPair{NormalizeFrequency(sourceFreq), NormalizeFrequency(targetFreq)}]
	if !ok {
		return cloneObs(obs)
	}

	buckets := make(map[string][]models.Observation)
	order := make([]string, 0)
	for _, o := range obs {
		key := keyOf(o.Date)
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], o)
	}

	out := make([]models.Observation, 0, len(order))
	for _, key := range order {
		out = append(out, reduceBucket(buckets[key], method))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// reduceBucket collapses one non-empty bucket per the aggregation method.
func reduceBucket(group []models.Observation, method string) models.Observation {
	first := group[0]
	last := group[len(group)-1]

	switch method {
	case "first":
		return models.Observation{Date: first.Date, Value: first.Value, Status: first.Status}
	case "last":
		return models.Observation{Date: last.Date, Value: last.Value, Status: last.Status}
	case "sum":
		sum, n := presentSum(group)
		if n == 0 {
			return models.Observation{Date: last.Date}
		}
		return models.Observation{Date: last.Date, Value: &sum}
	default: // avg
		sum, n := presentSum(group)
		if n == 0 {
			return models.Observation{Date: last.Date}
		}
		mean := sum / float64(n)
		return models.Observation{Date: last.Date, Value: &mean}
	}
}

// presentSum totals present values only; absent values are excluded, not
// treated as zero.
func presentSum(group []models.Observation) (float64, int) {
	sum, n := 0.0, 0
	for _, o := range group {
		if o.Value != nil {
			sum += *o.Value
			n++
		}
	}
	return sum, n
}
