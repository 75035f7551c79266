package main

import (
	"context"
	"fmt"

	"github.com/checkdaily/checkdaily/internal/config"
	myHTTP "github.com/checkdaily/checkdaily/internal/handler/http"
	"github.com/checkdaily/checkdaily/internal/logger"
	"github.com/checkdaily/checkdaily/internal/server"
	"github.com/checkdaily/checkdaily/internal/service"
	"github.com/checkdaily/checkdaily/internal/store"
	"github.com/checkdaily/checkdaily/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("checkdaily-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	repos, err := store.NewRepositories(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer repos.Close()

	if err := migrations.Migrate(repos.DB().DB, cfg.Storage.DB.Driver); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services := service.NewServices(repos, cfg.Auth, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
