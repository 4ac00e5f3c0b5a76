package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-db-journal/internal/app"
	"github.com/MKhiriev/go-db-journal/internal/config"
	"github.com/MKhiriev/go-db-journal/internal/handler"
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/server"
	"github.com/MKhiriev/go-db-journal/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-db-journal-server")
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

	handlers, err := handler.NewHandlers(application.Services(), cfg, application.Metrics.Handler(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var background workers.Worker
	if cfg.Workers.Enabled {
		runtime, err := application.Runtime()
		if err != nil {
			log.Fatal().Err(err).Msg("error creating journal runtime")
		}
		background = workers.NewWorkers(runtime)
		log.Info().Int("concurrency", cfg.Workers.Concurrency).Msg("journal workers embedded")
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), background, cfg.Server, cfg.Workers.ShutdownTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
