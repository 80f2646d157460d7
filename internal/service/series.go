package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Ahacad/financemonitor/internal/cache"
	"github.com/Ahacad/financemonitor/internal/catalog"
	"github.com/Ahacad/financemonitor/internal/domain/models"
	"github.com/Ahacad/financemonitor/internal/logger"
	"github.com/Ahacad/financemonitor/internal/transform"
	"github.com/Ahacad/financemonitor/internal/upstream"
)

// ErrDashboardNotFound is returned for dashboard names the catalog does not
// know. Handlers map it to 404.
var ErrDashboardNotFound = errors.New("dashboard not found")

// SeriesService is the orchestration layer around the transformation engine:
// cache lookup, upstream fetch, pipeline application, cache fill.
type SeriesService interface {
	GetSeries(ctx context.Context, id string, req models.TransformationRequest) (*models.Series, error)
	GetDashboard(ctx context.Context, name string) (*models.DashboardSnapshot, error)
}

// TTLPolicy sets cache lifetimes by the transformed series' frequency.
// Fast covers daily/weekly data, Slow monthly, Glacial quarterly/annual.
type TTLPolicy struct {
	Fast    time.Duration
	Slow    time.Duration
	Glacial time.Duration
}

type seriesService struct {
	fetcher upstream.Client
	store   cache.Store
	ttl     TTLPolicy
}

func NewSeriesService(fetcher upstream.Client, store cache.Store, ttl TTLPolicy) SeriesService {
	return &seriesService{fetcher: fetcher, store: store, ttl: ttl}
}

// GetSeries returns the transformed series for id, serving from cache when a
// previous identical request is still fresh. Cache access is best effort: a
// broken cache degrades to an upstream fetch, never to a failed request.
func (s *seriesService) GetSeries(ctx context.Context, id string, req models.TransformationRequest) (*models.Series, error) {
	key := cacheKey(id, req)

	if raw, ok, err := s.store.Get(key); err != nil {
		logger.L().Warn().Str("key", key).Err(err).Msg("cache read failed")
	} else if ok {
		var cached models.Series
		if decodeErr := json.Unmarshal(raw, &cached); decodeErr != nil {
			logger.L().Warn().Str("key", key).Err(decodeErr).Msg("discarding corrupt cache entry")
		} else {
			return &cached, nil
		}
	}

	raw, err := s.fetcher.FetchSeries(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch series %s: %w", id, err)
	}

	result := transform.Apply(*raw, req)

	if payload, err := json.Marshal(result); err != nil {
		logger.L().Warn().Str("key", key).Err(err).Msg("cache encode failed")
	} else if err := s.store.Put(key, payload, s.ttlFor(result.FrequencyShort)); err != nil {
		logger.L().Warn().Str("key", key).Err(err).Msg("cache write failed")
	}

	return &result, nil
}

// GetDashboard assembles a catalog dashboard, fetching member series
// concurrently. The first failing series cancels the rest.
func (s *seriesService) GetDashboard(ctx context.Context, name string) (*models.DashboardSnapshot, error) {
	def, ok := catalog.DashboardByName(name)
	if !ok {
		return nil, fmt.Errorf("dashboard %s: %w", name, ErrDashboardNotFound)
	}

	snapshot := &models.DashboardSnapshot{
		Name:   def.Name,
		Title:  def.Title,
		Series: make([]models.Series, len(def.Indicators)),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, ind := range def.Indicators {
		i, ind := i, ind
		g.Go(func() error {
			series, err := s.GetSeries(gctx, ind.SeriesID, ind.Request())
			if err != nil {
				return fmt.Errorf("indicator %s: %w", ind.Key, err)
			}
			snapshot.Series[i] = *series
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// cacheKey identifies one transformed rendition of a series. Every request
// field participates so distinct derivations never collide.
func cacheKey(id string, req models.TransformationRequest) string {
	return fmt.Sprintf("series:%s:f=%s:m=%s:u=%s:t=%s:s=%s:e=%s:l=%d",
		id, req.Frequency, req.AggregationMethod, req.Units, req.Transformation,
		req.StartDate, req.EndDate, req.Limit)
}

// ttlFor picks the cache lifetime from the resulting frequency: fresher data
// expires sooner.
func (s *seriesService) ttlFor(frequencyShort string) time.Duration {
	switch transform.NormalizeFrequency(frequencyShort) {
	case "m":
		return s.ttl.Slow
	case "q", "a":
		return s.ttl.Glacial
	default:
		return s.ttl.Fast
	}
}
