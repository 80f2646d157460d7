package main

//
//  @title           financemonitor API
//  @version         1.0
//  @description     Caching proxy and transformation engine for FRED economic data.
//  @termsOfService  https://github.com/Ahacad/financemonitor
//  @contact.name    API Support
//  @contact.url     https://github.com/Ahacad/financemonitor
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        series
//  @tag.description Endpoints for querying transformed economic series
//
//  @tag.name        dashboards
//  @tag.description Endpoints for grouped indicator snapshots
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ahacad/financemonitor/config"
	_ "github.com/Ahacad/financemonitor/docs" // swagger docs
	"github.com/Ahacad/financemonitor/internal/app"
	"github.com/Ahacad/financemonitor/internal/logger"
	"github.com/Ahacad/financemonitor/internal/warmup"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., the cache store).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the financemonitor application.
//
// Modes (selected via --mode flag):
//   - api:  Starts the REST API serving transformed series and dashboards.
//   - warm: Fetches every catalog indicator once to pre-fill the cache.
//
// Flags:
//   - --mode:     Execution mode ("api" or "warm"). Default: "api".
//   - --parallel: How many indicators to warm concurrently (0=auto up to CPU, max 4).
//   - --port:     Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or warm")
	parallel := flag.Int("parallel", 0, "How many indicators to warm concurrently (0=auto up to CPU, max 4)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "warm":
		// Warm mode: fetch every catalog indicator and fill the cache
		logger.L().Info().Msg("running cache warm-up")

		svc, cleanup, err := app.NewSeriesService(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("service init error")
		}
		defer cleanup()

		if err := warmup.WarmCatalog(ctx, svc, *parallel); err != nil {
			logger.L().Fatal().Err(err).Msg("warm-up failed")
		}
		logger.L().Info().Msg("warm-up completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
