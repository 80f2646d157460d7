package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Ahacad/financemonitor/config"
	"github.com/Ahacad/financemonitor/internal/api"
	"github.com/Ahacad/financemonitor/internal/cache"
	"github.com/Ahacad/financemonitor/internal/service"
	"github.com/Ahacad/financemonitor/internal/upstream"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Opens the embedded cache store via InitCacheStore().
//   - Builds the upstream provider client.
//   - Creates the service layer (cache-aside orchestration + engine).
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close the cache store.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// Open the embedded cache store
	// indirection for unit testing
	store, err := storeOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize cache store: %w", err)
	}

	// Upstream provider client
	fetcher := clientCtor(cfg)

	// Service layer (cache lookup, fetch, transformation pipeline)
	svc := service.NewSeriesService(fetcher, store, service.TTLPolicy{
		Fast:    cfg.Cache.TTLFast,
		Slow:    cfg.Cache.TTLSlow,
		Glacial: cfg.Cache.TTLGlacial,
	})

	// HTTP handler layer
	handler := api.NewHandler(svc)

	// Gin router with routes
	router := api.NewRouter(handler)

	// Health and readiness probes
	healthHandler := api.NewHealthHandler(store.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = store.Close()
	}

	return router, cleanup, nil
}

// NewSeriesService wires the service layer from configuration; used by the
// cache warm-up mode, which needs the service without the HTTP surface.
func NewSeriesService(cfg config.Config) (service.SeriesService, func(), error) {
	store, err := storeOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize cache store: %w", err)
	}
	fetcher := clientCtor(cfg)
	svc := service.NewSeriesService(fetcher, store, service.TTLPolicy{
		Fast:    cfg.Cache.TTLFast,
		Slow:    cfg.Cache.TTLSlow,
		Glacial: cfg.Cache.TTLGlacial,
	})
	return svc, func() { _ = store.Close() }, nil
}

// clientCtor is an indirection for building the upstream client; tests can
// override it to point at a stub server.
var clientCtor = func(cfg config.Config) upstream.Client {
	return upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.APIKey, cfg.Upstream.Timeout)
}

// storeOpener is an indirection used by InitializeApp; overridden in tests to
// avoid touching the filesystem.
var storeOpener = func(cfg config.Config) (cache.Store, error) {
	return InitCacheStore(cfg)
}
