// Command worker applies queued journal entries to user snapshots. Run as
// many replicas as needed; snapshot locks keep them from racing.
package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-db-journal/internal/app"
	"github.com/MKhiriev/go-db-journal/internal/config"
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/server"
	"github.com/MKhiriev/go-db-journal/internal/workers"
	"github.com/go-chi/chi/v5"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orNA(buildVersion), orNA(buildDate), orNA(buildCommit))

	log := logger.NewLogger("go-db-journal-worker")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()
	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening backends")
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Err(err).Msg("error closing backends")
		}
	}()

	runtime, err := application.Runtime()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating journal runtime")
	}

	// only metrics are exposed
	router := chi.NewRouter()
	router.Handle("/metrics", application.Metrics.Handler())

	srv, err := server.NewServer(router, workers.NewWorkers(runtime), cfg.Server, cfg.Workers.ShutdownTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating worker process")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("worker stopped with error")
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
