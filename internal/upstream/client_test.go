package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const metaJSON = `{"seriess":[{
	"id":"GDP",
	"title":"Gross Domestic Product",
	"units":"Billions of Dollars",
	"frequency":"Quarterly",
	"frequency_short":"Q",
	"seasonal_adjustment":"Seasonally Adjusted Annual Rate",
	"last_updated":"2024-03-28 07:51:02-05",
	"notes":"BEA Account Code: A191RC"
}]}`

const obsJSON = `{"observations":[
	{"date":"2023-01-01","value":"26813.601"},
	{"date":"2023-04-01","value":"."},
	{"date":"2023-07-01","value":"27610.128"}
]}`

func newTestServer(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", 5*time.Second)
}

func TestFetchSeries_Success(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Errorf("missing api_key in %s", r.URL)
		}
		if r.URL.Query().Get("series_id") != "GDP" {
			t.Errorf("missing series_id in %s", r.URL)
		}
		switch r.URL.Path {
		case "/series":
			_, _ = w.Write([]byte(metaJSON))
		case "/series/observations":
			_, _ = w.Write([]byte(obsJSON))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	s, err := c.FetchSeries(context.Background(), "GDP")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if s.ID != "GDP" || s.FrequencyShort != "Q" || s.Units != "Billions of Dollars" {
		t.Fatalf("metadata: %+v", s)
	}
	if len(s.Observations) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(s.Observations))
	}
	if s.Observations[0].Value == nil || *s.Observations[0].Value != 26813.601 {
		t.Fatalf("first observation: %+v", s.Observations[0])
	}
	if s.Observations[1].Value != nil {
		t.Fatalf("dot value should be absent, got %v", *s.Observations[1].Value)
	}
	if s.Observations[1].Date != "2023-04-01" {
		t.Fatalf("absent observation keeps its date: %+v", s.Observations[1])
	}
}

func TestFetchSeries_NotFound(t *testing.T) {
	cases := []struct {
		name   string
		status int
	}{
		{name: "provider 400", status: http.StatusBadRequest},
		{name: "provider 404", status: http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})
			_, err := c.FetchSeries(context.Background(), "NOPE")
			if !errors.Is(err, ErrSeriesNotFound) {
				t.Fatalf("expected ErrSeriesNotFound, got %v", err)
			}
		})
	}
}

func TestFetchSeries_EmptyEnvelope(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"seriess":[]}`))
	})
	_, err := c.FetchSeries(context.Background(), "GDP")
	if !errors.Is(err, ErrSeriesNotFound) {
		t.Fatalf("expected ErrSeriesNotFound for empty envelope, got %v", err)
	}
}

func TestFetchSeries_UpstreamError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	})
	_, err := c.FetchSeries(context.Background(), "GDP")
	if err == nil || errors.Is(err, ErrSeriesNotFound) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestFetchSeries_ContextCancelled(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(metaJSON))
	})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := c.FetchSeries(ctx, "GDP"); err == nil {
		t.Fatalf("expected context deadline error")
	}
}
