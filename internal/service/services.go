package service

import (
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
)

type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		UserService: NewUserService(storages.UserRepository, cfg, logger),
	}
}
