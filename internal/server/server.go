package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/handler"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until a stop signal arrives or the listener fails. Only
// the latter is returned as an error.
func (s *server) RunServer() error {
	return s.run(context.Background())
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) run(parent context.Context) error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	ctx, stop := signal.NotifyContext(
		parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("%w: %w", errServerFailed, err)
		}
		return nil
	case <-ctx.Done():
		s.Shutdown()
		// ListenAndServe returns as soon as Shutdown is called
		<-serveErr
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// newStdLogger adapts l for http.Server.ErrorLog.
func newStdLogger(l *logger.Logger) *log.Logger {
	return log.New(l, "", 0)
}
