package warmup

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Ahacad/financemonitor/internal/catalog"
	"github.com/Ahacad/financemonitor/internal/logger"
	"github.com/Ahacad/financemonitor/internal/service"
)

const maxWarmParallel = 4

// WarmCatalog pre-fills the cache by fetching every catalog indicator with
// its default transformation, so the first dashboard request after a deploy
// is served warm.
//
// Behavior:
//   - Uses a concurrency limit of min(maxWarmParallel, NumCPU), or the
//     provided clamp(1..maxWarmParallel).
//   - Any failing indicator cancels the rest and its error is returned.
func WarmCatalog(ctx context.Context, svc service.SeriesService, parallel int) error {
	indicators := catalog.Indicators()

	maxParallel := maxWarmParallel
	if parallel > 0 {
		if parallel > maxWarmParallel {
			parallel = maxWarmParallel
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().
		Int("indicators", len(indicators)).
		Int("max_parallel", maxParallel).
		Msg("cache warm-up start")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, ind := range indicators {
		i, ind := i, ind
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()

			series, err := svc.GetSeries(gctx, ind.SeriesID, ind.Request())
			if err != nil {
				logger.L().Error().Str("indicator", ind.Key).Err(err).Msg("warm-up fetch failed")
				return fmt.Errorf("indicator %s: %w", ind.Key, err)
			}

			logger.L().Info().
				Int("idx", i+1).
				Int("total", len(indicators)).
				Str("indicator", ind.Key).
				Int("observations", len(series.Observations)).
				Dur("elapsed", time.Since(start)).
				Msg("indicator warmed")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.L().Info().Int("indicators", len(indicators)).Msg("cache warm-up complete")
	return nil
}
