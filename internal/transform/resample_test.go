package transform

import (
	"math"
	"testing"

	"github.com/Ahacad/financemonitor/internal/domain/models"
)

func TestResample_DayToMonthLast(t *testing.T) {
	in := []models.Observation{
		obs("2023-01-05", 1),
		obs("2023-01-20", 2),
		obs("2023-02-10", 3),
	}
	out := Resample(in, "d", "m", "last")
	if len(out) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(out))
	}
	if out[0].Date != "2023-01-20" || *out[0].Value != 2 {
		t.Fatalf("january bucket: %+v", out[0])
	}
	if out[1].Date != "2023-02-10" || *out[1].Value != 3 {
		t.Fatalf("february bucket: %+v", out[1])
	}
}

func TestResample_Methods(t *testing.T) {
	in := []models.Observation{
		obs("2023-01-05", 1),
		gap("2023-01-12"),
		obs("2023-01-20", 3),
	}

	cases := []struct {
		name     string
		method   string
		wantDate string
		want     *float64
	}{
		{name: "first takes own date", method: "first", wantDate: "2023-01-05", want: models.Float(1)},
		{name: "last takes own date", method: "last", wantDate: "2023-01-20", want: models.Float(3)},
		{name: "avg over present, last date", method: "avg", wantDate: "2023-01-20", want: models.Float(2)},
		{name: "sum over present, last date", method: "sum", wantDate: "2023-01-20", want: models.Float(4)},
		{name: "unknown method falls back to avg", method: "median", wantDate: "2023-01-20", want: models.Float(2)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := Resample(in, "d", "m", tc.method)
			if len(out) != 1 {
				t.Fatalf("expected 1 bucket, got %d", len(out))
			}
			if out[0].Date != tc.wantDate {
				t.Fatalf("date %q, want %q", out[0].Date, tc.wantDate)
			}
			if out[0].Value == nil || math.Abs(*out[0].Value-*tc.want) > 1e-9 {
				t.Fatalf("value %v, want %v", out[0].Value, *tc.want)
			}
		})
	}
}

func TestResample_AllAbsentBucket(t *testing.T) {
	in := []models.Observation{gap("2023-01-05"), gap("2023-01-20")}
	for _, method := range []string{"avg", "sum"} {
		out := Resample(in, "d", "m", method)
		if len(out) != 1 || out[0].Value != nil || out[0].Date != "2023-01-20" {
			t.Fatalf("method %s: %+v", method, out)
		}
	}
}

func TestResample_QuarterBuckets(t *testing.T) {
	in := []models.Observation{
		obs("2023-01-01", 1),
		obs("2023-02-01", 2),
		obs("2023-03-01", 3),
		obs("2023-04-01", 4),
	}
	out := Resample(in, "m", "q", "avg")
	if len(out) != 2 {
		t.Fatalf("expected Q1 and Q2, got %d buckets", len(out))
	}
	if out[0].Date != "2023-03-01" || *out[0].Value != 2 {
		t.Fatalf("q1: %+v", out[0])
	}
	if out[1].Date != "2023-04-01" || *out[1].Value != 4 {
		t.Fatalf("q2: %+v", out[1])
	}
}

func TestResample_AnnualBuckets(t *testing.T) {
	in := []models.Observation{
		obs("2022-03-01", 10),
		obs("2022-06-01", 20),
		obs("2023-03-01", 30),
	}
	out := Resample(in, "q", "a", "sum")
	if len(out) != 2 {
		t.Fatalf("expected 2 years, got %d", len(out))
	}
	if out[0].Date != "2022-06-01" || *out[0].Value != 30 {
		t.Fatalf("2022: %+v", out[0])
	}
	if out[1].Date != "2023-03-01" || *out[1].Value != 30 {
		t.Fatalf("2023: %+v", out[1])
	}
}

func TestResample_UnsupportedPairPassthrough(t *testing.T) {
	in := []models.Observation{obs("2023-01-05", 1), obs("2024-02-10", 2)}

	cases := []struct {
		name   string
		source string
		target string
	}{
		{name: "same frequency", source: "m", target: "m"},
		{name: "finer target", source: "m", target: "d"},
		{name: "day to year not whitelisted", source: "d", target: "a"},
		{name: "weekly source not whitelisted", source: "w", target: "m"},
		{name: "unknown code", source: "x", target: "m"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := Resample(in, tc.source, tc.target, "avg")
			if len(out) != len(in) {
				t.Fatalf("expected passthrough, got %d obs", len(out))
			}
			for i := range out {
				if out[i].Date != in[i].Date || *out[i].Value != *in[i].Value {
					t.Fatalf("obs[%d] changed: %+v", i, out[i])
				}
			}
		})
	}
}

func TestResample_SortedByRepresentativeDate(t *testing.T) {
	in := []models.Observation{
		obs("2023-01-05", 1),
		obs("2023-02-10", 2),
		obs("2023-03-15", 3),
	}
	out := Resample(in, "d", "q", "first")
	if len(out) != 1 || out[0].Date != "2023-01-05" {
		t.Fatalf("quarter bucket: %+v", out)
	}
	out = Resample(in, "d", "m", "last")
	for i := 1; i < len(out); i++ {
		if out[i-1].Date >= out[i].Date {
			t.Fatalf("output not ascending: %q >= %q", out[i-1].Date, out[i].Date)
		}
	}
}

func TestNormalizeFrequency(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Q", "q"},
		{"Quarterly", "q"},
		{"m", "m"},
		{"Monthly", "m"},
		{"Annual", "a"},
		{"Yearly", "a"},
		{"D", "d"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeFrequency(tc.in); got != tc.want {
			t.Fatalf("NormalizeFrequency(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}
