package models

import "testing"

func TestTransformationRequest_IsZero(t *testing.T) {
	cases := []struct {
		name string
		req  TransformationRequest
		want bool
	}{
		{name: "empty", req: TransformationRequest{}, want: true},
		{name: "transformation set", req: TransformationRequest{Transformation: "pct_change"}, want: false},
		{name: "frequency set", req: TransformationRequest{Frequency: "q"}, want: false},
		{name: "aggregation set", req: TransformationRequest{AggregationMethod: "sum"}, want: false},
		{name: "units set", req: TransformationRequest{Units: "millions"}, want: false},
		{name: "start date set", req: TransformationRequest{StartDate: "2020-01-01"}, want: false},
		{name: "end date set", req: TransformationRequest{EndDate: "2020-12-31"}, want: false},
		{name: "limit set", req: TransformationRequest{Limit: 10}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.req.IsZero(); got != tc.want {
				t.Fatalf("IsZero() = %v, want %v", got, tc.want)
			}
		})
	}
}
