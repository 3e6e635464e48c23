package http

import (
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
)

type Handler struct {
	services *service.Services

	cookieName         string
	corsAllowedOrigins []string
	requestTimeout     time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, appCfg config.App, serverCfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		cookieName:         appCfg.CookieName,
		corsAllowedOrigins: serverCfg.CORSAllowedOrigins,
		requestTimeout:     serverCfg.RequestTimeout,
		logger:             logger,
	}
}
