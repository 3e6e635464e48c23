// Package handler groups the transport handlers exposed by the server.
package handler

import (
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/handler/http"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.AuthService == nil {
		return nil, errNoServicesProvided
	}
	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, cfg.Server, logger),
	}, nil
}
