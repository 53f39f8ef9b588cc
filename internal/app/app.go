package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ticketpulse/config"
	"github.com/guttosm/ticketpulse/internal/api"
	"github.com/guttosm/ticketpulse/internal/service"
	"github.com/guttosm/ticketpulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// initialization error.
//
// Everything is wired by explicit constructor injection: the storage handle
// is created once here and passed down, so there is no hidden global
// session state anywhere below this function.
//
// Responsibilities:
//   - Connects to PostgreSQL.
//   - Initializes the repository layer.
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewEventsRepository(db)

	events := service.NewEventService(repo)
	tickets := service.NewTicketService(repo)

	handler := api.NewHandler(events, tickets)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
