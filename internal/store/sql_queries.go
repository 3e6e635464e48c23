package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-gate/models"
)

const usersTable = "users"

var userColumns = []string{"user_id", "email", "password_digest", "created_at", "updated_at"}

func buildCreateUser(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns("email", "password_digest").
		Values(user.Email, user.PasswordDigest).
		Suffix("RETURNING user_id, email, password_digest, created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByEmail(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByID(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
