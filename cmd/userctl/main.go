package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/adapter"
	"github.com/MKhiriev/go-auth-gate/internal/client"
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/models"
)

const requestTimeout = 10 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("userctl")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Error().Err(err).Msg("userctl failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, log *logger.Logger) error {
	var services *service.Services

	if client.NeedsStorage(args) {
		loadConfig := config.GetEnvConfigWithoutSignKey
		if client.SignsTokens(args) {
			loadConfig = config.GetEnvConfig
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error getting configs: %w", err)
		}

		storages, err := store.NewStorages(ctx, cfg.Storage, log)
		if err != nil {
			return fmt.Errorf("error creating storages: %w", err)
		}
		defer storages.Close()

		services = service.NewServices(storages, cfg.App, log)
	}

	newAdapter := func(address string) (adapter.ServerAdapter, error) {
		return adapter.NewHTTPServerAdapter(address, requestTimeout, log)
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var app client.Client = client.NewApp(services, newAdapter, os.Stdout, log).
		WithBuildInfo(buildInfo)

	return app.Run(ctx, args)
}
