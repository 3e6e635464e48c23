// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// identityHandlerFunc is a handler that requires an authenticated caller.
// It can only be mounted on a router through restrict.
type identityHandlerFunc func(w http.ResponseWriter, r *http.Request, identity models.Identity)

// restrict guards next with the identity resolved by withIdentity.
//
//   - identity present: next runs with it.
//   - no identity: 401 with body "Unauthorized"; next never runs.
//   - resolution fault, or the resolver did not run: 500.
func restrict(next identityHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		resolution, ok := utils.GetIdentityResolutionFromContext(r.Context())
		if !ok {
			log.Err(ErrIdentityResolverNotInstalled).Str("uri", r.RequestURI).Send()
			writeInternalError(w)
			return
		}

		if resolution.Err != nil {
			log.Err(resolution.Err).Msg("guarded route called after failed identity resolution")
			writeInternalError(w)
			return
		}

		if resolution.Anonymous() {
			log.Debug().Str("uri", r.RequestURI).Msg("unauthorized request to guarded route")
			writeUnauthorized(w)
			return
		}

		next(w, r, resolution.Identity)
	}
}
