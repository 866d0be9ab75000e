package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gatherly/gatherly/internal/api"
	"github.com/gatherly/gatherly/internal/app/activities"
	"github.com/gatherly/gatherly/internal/config"
	"github.com/gatherly/gatherly/internal/factory"
	"github.com/gatherly/gatherly/internal/logger"
	"github.com/gatherly/gatherly/internal/mediator"
)

func main() {
	// Optional driver override (sqlite | postgres)
	dbDriver := flag.String("db-driver", "", "Override GATHERLY_DB_DRIVER")
	flag.Parse()

	log := logger.New("activity-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *dbDriver != "" {
		cfg.DBDriver = *dbDriver
		if err := cfg.ResolveDefaults(); err != nil {
			log.Fatal().Err(err).Msg("Invalid db-driver override")
		}
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("Activity service starting")

	store, err := factory.NewStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Storage adapter unavailable")
	}
	defer func() { _ = store.Close() }()

	// Handler wiring happens once here; a duplicate registration is a
	// startup configuration error, not a request-time one.
	dispatcher := mediator.New()
	if err := activities.Register(dispatcher, store); err != nil {
		log.Fatal().Err(err).Msg("Handler registration failed")
	}

	router := api.NewRouter(dispatcher, store, cfg.IsDevelopment())
	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
