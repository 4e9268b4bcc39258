package main

import (
	"context"
	"fmt"

	"github.com/asemenov/go-chat-backend/internal/config"
	handler "github.com/asemenov/go-chat-backend/internal/handler/http"
	"github.com/asemenov/go-chat-backend/internal/logger"
	"github.com/asemenov/go-chat-backend/internal/server"
	"github.com/asemenov/go-chat-backend/internal/service"
	"github.com/asemenov/go-chat-backend/internal/store"
	"github.com/asemenov/go-chat-backend/migrations"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// missing .env is fine, env vars and flags still apply
	_ = godotenv.Load()

	log := logger.NewLogger("chat-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg.App, log)

	router := handler.NewHandler(services, log).Init()

	srv, err := server.NewServer(router, cfg.Server, log)
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
