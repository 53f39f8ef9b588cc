package main

//
//  @title           ticketpulse API
//  @version         1.0
//  @description     Event-ticketing read API: event catalog and sales analytics.
//  @termsOfService  https://github.com/guttosm/ticketpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/ticketpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        events
//  @tag.description Endpoints for browsing the event catalog
//
//  @tag.name        sales
//  @tag.description Endpoints for sales analytics (top-N rankings)
//
//  @tag.name        tickets
//  @tag.description Endpoints for listing ticket sales per event
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

	"github.com/guttosm/ticketpulse/config"
	_ "github.com/guttosm/ticketpulse/docs" // swagger docs
	"github.com/guttosm/ticketpulse/internal/app"
	"github.com/guttosm/ticketpulse/internal/logger"
	"github.com/guttosm/ticketpulse/internal/seed"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
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

// gracefulShutdown terminates the HTTP server and runs the cleanup callback
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
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

// main is the entry point of the ticketpulse application.
//
// Modes (selected via --mode flag):
//   - api:  Starts the REST API over the event catalog and sales analytics.
//   - seed: Loads .json fixture files from --dir into the database.
//
// Flags:
//   - --mode:     Execution mode ("api" or "seed"). Default: "api".
//   - --dir:      Directory with .json fixture files. Default: "./data/seed".
//   - --parallel: How many fixture files to process concurrently (0=auto, max 4).
//   - --port:     Port for the API server. Defaults to config (SERVER_PORT).
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or seed")
	dir := flag.String("dir", "./data/seed", "Directory with .json fixture files")
	parallel := flag.Int("parallel", 0, "How many fixture files to process concurrently (0=auto, max 4)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "seed":
		logger.L().Info().Msg("running seed")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := seed.ProcessDirectory(ctx, *dir, db, *parallel); err != nil {
			logger.L().Fatal().Err(err).Msg("seed failed")
		}
		logger.L().Info().Msg("seed completed successfully")

	case "api":
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
