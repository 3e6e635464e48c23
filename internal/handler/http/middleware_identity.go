package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

// withIdentity resolves the caller's identity once per request and stores the
// outcome in the request context as a [utils.IdentityResolution].
//
// Credentials are read from the "Authorization: Bearer" header and, when the
// header is absent, from the session cookie. The middleware never rejects a
// request:
//   - no credentials, a malformed header, an invalid or expired token, or a
//     token naming a deleted user leave the request anonymous;
//   - any other failure (the users table cannot be read) is recorded in the
//     resolution so that guarded routes can answer with 500.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		var resolution utils.IdentityResolution

		tokenString, err := h.credentialsFromRequest(r)
		switch {
		case err != nil:
			log.Debug().Err(err).Msg("request credentials ignored")
		case tokenString != "":
			identity, resolveErr := h.services.AuthService.ResolveIdentity(ctx, tokenString)
			switch {
			case resolveErr == nil:
				resolution = utils.IdentityResolution{Identity: identity, Present: true}
			case errors.Is(resolveErr, service.ErrTokenIsExpiredOrInvalid),
				errors.Is(resolveErr, service.ErrUnknownIdentity):
				log.Warn().Err(resolveErr).Msg("identity not resolved")
			default:
				log.Err(resolveErr).Msg("identity resolution failed")
				resolution = utils.IdentityResolution{Err: resolveErr}
			}
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentityResolution(ctx, resolution)))
	})
}

// credentialsFromRequest returns the raw session token carried by r, or an
// empty string if there is none.
func (h *Handler) credentialsFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return utils.ParseBearerToken(authHeader)
	}

	if h.cookieName == "" {
		return "", nil
	}
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		// http.ErrNoCookie is the only error Cookie returns.
		return "", nil
	}

	return cookie.Value, nil
}
