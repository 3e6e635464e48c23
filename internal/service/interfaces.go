// Package service holds the authentication logic between the HTTP layer
// and the users store: password checks, session token issuing and the
// resolution of a token into an identity.
package service

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	// Authenticate checks password against the stored digest of the user
	// with the given email.
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// ResolveIdentity turns a session token into the identity of the user
	// it was issued for. Credential problems are reported as
	// ErrTokenIsExpiredOrInvalid or ErrUnknownIdentity; anything else is a
	// storage fault.
	ResolveIdentity(ctx context.Context, tokenString string) (models.Identity, error)
}

type UserService interface {
	// RegisterUser validates email, stores a bcrypt digest of password and
	// returns the created user.
	RegisterUser(ctx context.Context, email, password string) (models.User, error)
}
