package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// All methods obtain a context-scoped logger via [logger.FromContext].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns the stored row.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUser(r.db.builder, user)
	if err != nil {
		return models.User{}, err
	}

	created, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch {
		case r.db.uniqueViolation(err):
			return models.User{}, ErrEmailAlreadyExists
		case errors.Is(err, ErrScanningRow):
			return models.User{}, err
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// FindUserByEmail returns the user whose email matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildFindUserByEmail(r.db.builder, email)
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID returns the user with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildFindUserByID(r.db.builder, userID)
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := r.scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case errors.Is(err, ErrScanningRow):
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, err
	default:
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// scanUser scans one users row. Query errors, including sql.ErrNoRows, are
// returned unchanged; conversion failures are wrapped in ErrScanningRow.
func (r *userRepository) scanUser(row *sql.Row) (models.User, error) {
	if err := row.Err(); err != nil {
		return models.User{}, err
	}

	var (
		user                 models.User
		createdAt, updatedAt timestamp
	)
	err := row.Scan(&user.UserID, &user.Email, &user.PasswordDigest, &createdAt, &updatedAt)
	switch {
	case err == nil:
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, err
	default:
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return user, nil
}
