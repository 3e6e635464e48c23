// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// digests, HTTP response writing, and JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the identity resolver stores its
// [IdentityResolution] in the request context.
var IdentityCtxKey = contextKey("identity")

// IdentityResolution is the outcome of resolving the requester's identity.
// It is stored by value, so handlers cannot mutate what the resolver saw.
//
// Exactly one of the following holds:
//   - Present is true and Identity is the resolved user;
//   - Err is non-nil: resolution failed for a reason other than missing or
//     invalid credentials (for example, the database was unreachable);
//   - neither: the request is anonymous.
type IdentityResolution struct {
	Identity models.Identity
	Present  bool
	Err      error
}

// Anonymous reports whether the request carries no identity and no fault.
func (r IdentityResolution) Anonymous() bool {
	return !r.Present && r.Err == nil
}

// WithIdentityResolution returns a copy of ctx carrying res.
func WithIdentityResolution(ctx context.Context, res IdentityResolution) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, res)
}

// GetIdentityResolutionFromContext returns the resolution stored in ctx.
// ok is false when the identity resolver has not run for this context.
func GetIdentityResolutionFromContext(ctx context.Context) (IdentityResolution, bool) {
	res, ok := ctx.Value(IdentityCtxKey).(IdentityResolution)
	return res, ok
}
