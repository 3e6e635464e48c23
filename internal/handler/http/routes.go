package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router: global middleware first, the identity resolver
// last, then the three routes.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(cors.Handler(corsOptions(h.corsAllowedOrigins)))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withIdentity)

	// routes without authorization
	router.Get("/ping", h.ping)

	// routes that require an identity
	router.Get("/secret", restrict(h.secret))
	router.Get("/userinfo", restrict(h.userinfo))

	router.MethodNotAllowed(methodNotFound)

	return router
}

// corsOptions allows credentialed (cookie) requests only from origins listed
// by name. Browsers reject credentials paired with a wildcard origin.
func corsOptions(allowedOrigins []string) cors.Options {
	return cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: !slices.Contains(allowedOrigins, "*") && len(allowedOrigins) > 0,
	}
}
