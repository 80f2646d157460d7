package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Ahacad/financemonitor/internal/domain/models"
	"github.com/Ahacad/financemonitor/internal/logger"
)

// ErrSeriesNotFound is returned when the provider does not know the requested
// series ID. Handlers map it to 404.
var ErrSeriesNotFound = errors.New("series not found")

// Client fetches raw series from the upstream economic-data provider.
type Client interface {
	FetchSeries(ctx context.Context, id string) (*models.Series, error)
}

// fredClient talks to a FRED-compatible REST API. Two calls per series: one
// for metadata, one for observations.
type fredClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a Client against the given base URL (e.g.
// "https://api.stlouisfed.org/fred").
func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	return &fredClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// seriesMeta mirrors one element of the provider's "seriess" envelope.
type seriesMeta struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Units              string `json:"units"`
	Frequency          string `json:"frequency"`
	FrequencyShort     string `json:"frequency_short"`
	SeasonalAdjustment string `json:"seasonal_adjustment"`
	LastUpdated        string `json:"last_updated"`
	Notes              string `json:"notes"`
}

type seriesEnvelope struct {
	Seriess []seriesMeta `json:"seriess"`
}

// rawObservation carries the provider's string-typed value; "." means the
// value is missing for that date.
type rawObservation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type observationsEnvelope struct {
	Observations []rawObservation `json:"observations"`
}

func (c *fredClient) FetchSeries(ctx context.Context, id string) (*models.Series, error) {
	var meta seriesEnvelope
	if err := c.getJSON(ctx, "/series", id, &meta); err != nil {
		return nil, err
	}
	if len(meta.Seriess) == 0 {
		return nil, fmt.Errorf("series %s: %w", id, ErrSeriesNotFound)
	}

	var raw observationsEnvelope
	if err := c.getJSON(ctx, "/series/observations", id, &raw); err != nil {
		return nil, err
	}

	m := meta.Seriess[0]
	series := &models.Series{
		ID:                 m.ID,
		Title:              m.Title,
		Units:              m.Units,
		Frequency:          m.Frequency,
		FrequencyShort:     m.FrequencyShort,
		SeasonalAdjustment: m.SeasonalAdjustment,
		LastUpdated:        m.LastUpdated,
		Notes:              m.Notes,
		Observations:       decodeObservations(raw.Observations),
	}

	logger.L().Debug().
		Str("series", id).
		Int("observations", len(series.Observations)).
		Msg("upstream fetch complete")

	return series, nil
}

// decodeObservations converts provider values to the domain representation.
// "." and unparseable values become absent, never zero.
func decodeObservations(raw []rawObservation) []models.Observation {
	out := make([]models.Observation, 0, len(raw))
	for _, r := range raw {
		o := models.Observation{Date: r.Date}
		if r.Value != "" && r.Value != "." {
			if v, err := strconv.ParseFloat(r.Value, 64); err == nil {
				o.Value = &v
			}
		}
		out = append(out, o)
	}
	return out
}

func (c *fredClient) getJSON(ctx context.Context, path, seriesID string, into any) error {
	q := url.Values{}
	q.Set("series_id", seriesID)
	q.Set("api_key", c.apiKey)
	q.Set("file_type", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build upstream request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// FRED answers 400 for unknown series IDs; treat it like a miss.
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest {
		return fmt.Errorf("series %s: %w", seriesID, ErrSeriesNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("upstream %s returned %d: %s", path, resp.StatusCode, snippet)
	}

	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("decode upstream %s response: %w", path, err)
	}
	return nil
}
