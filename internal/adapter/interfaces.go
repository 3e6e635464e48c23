// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the go-auth-gate HTTP API.
//
// [ServerAdapter] decouples callers such as the userctl tool from the
// transport. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] (for example
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a running go-auth-gate server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Ping calls GET /ping and returns the decoded reply.
	Ping(ctx context.Context) (string, error)

	// Secret calls GET /secret. Requires a token.
	Secret(ctx context.Context) (string, error)

	// UserInfo calls GET /userinfo and returns the caller's email. Requires
	// a token.
	UserInfo(ctx context.Context) (models.UserInfo, error)
}
