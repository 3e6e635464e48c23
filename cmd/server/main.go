package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/handler"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/server"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-auth-gate-server")
	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Bool("auto_migrate", cfg.Storage.DB.AutoMigrate).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}
