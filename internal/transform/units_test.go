package transform

import (
	"math"
	"testing"

	"github.com/Ahacad/financemonitor/internal/domain/models"
)

func TestConvertUnits_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		source string
		target string
		in     float64
		want   float64
	}{
		{name: "billions to millions", source: "billions", target: "millions", in: 1.5, want: 1500},
		{name: "millions to billions", source: "millions", target: "billions", in: 1500, want: 1.5},
		{name: "thousands to millions", source: "thousands", target: "millions", in: 2500, want: 2.5},
		{name: "percent to decimal", source: "percent", target: "decimal", in: 4.5, want: 0.045},
		{name: "decimal to percent", source: "decimal", target: "percent", in: 0.045, want: 4.5},
		{name: "full FRED label normalizes", source: "Billions of Dollars", target: "millions", in: 2, want: 2000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := []models.Observation{obs("2023-01-01", tc.in)}
			out := ConvertUnits(in, tc.source, tc.target)
			if out[0].Value == nil || math.Abs(*out[0].Value-tc.want) > 1e-9 {
				t.Fatalf("got %v, want %v", out[0].Value, tc.want)
			}
		})
	}
}

func TestConvertUnits_RoundTrip(t *testing.T) {
	in := []models.Observation{obs("2023-01-01", 123.456), obs("2023-02-01", 0.001)}
	mid := ConvertUnits(in, "billions", "millions")
	back := ConvertUnits(mid, "millions", "billions")
	for i := range in {
		if math.Abs(*back[i].Value-*in[i].Value) > 1e-9 {
			t.Fatalf("round trip drifted at %d: %v != %v", i, *back[i].Value, *in[i].Value)
		}
	}
}

func TestConvertUnits_NoOps(t *testing.T) {
	in := []models.Observation{obs("2023-01-01", 7), gap("2023-02-01")}

	cases := []struct {
		name   string
		source string
		target string
	}{
		{name: "unknown pair", source: "billions", target: "trillions"},
		{name: "same units", source: "millions", target: "millions"},
		{name: "same units different label", source: "Millions of Dollars", target: "millions"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := ConvertUnits(in, tc.source, tc.target)
			if *out[0].Value != 7 {
				t.Fatalf("value changed: %v", *out[0].Value)
			}
			if out[1].Value != nil {
				t.Fatalf("absent value became present")
			}
		})
	}
}

func TestConvertUnits_AbsentStaysAbsent(t *testing.T) {
	in := []models.Observation{gap("2023-01-01"), obs("2023-02-01", 1)}
	out := ConvertUnits(in, "billions", "millions")
	if out[0].Value != nil {
		t.Fatalf("absent value became present: %v", *out[0].Value)
	}
	if *out[1].Value != 1000 {
		t.Fatalf("present value not scaled: %v", *out[1].Value)
	}
}
