// Package store implements persistence of the users table on top of
// database/sql, with PostgreSQL (pgx) and SQLite (go-sqlite3) connectors.
package store

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the data-access contract for the users table.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row with its
	// server-assigned id and timestamps.
	// Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the row whose email equals email.
	// Returns ErrNoUserWasFound when there is none.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the row with the given id.
	// Returns ErrNoUserWasFound when there is none.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}
