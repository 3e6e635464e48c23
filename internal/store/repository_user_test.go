package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

var userRowColumns = []string{"user_id", "email", "password_digest", "created_at", "updated_at"}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &userRepository{
		db:     newDB(db, config.DriverPostgres, l),
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := models.User{Email: "a@b.com", PasswordDigest: "$2a$10$digest"}
	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(`INSERT INTO users \(email,password_digest\) VALUES \(\$1,\$2\) RETURNING`).
		WithArgs(user.Email, user.PasswordDigest).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, user.Email, user.PasswordDigest, now, now))

	created, err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "a@b.com", created.Email)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.com"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.com"})

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1)) // wrong shape → scan error

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.com"})

	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(`SELECT user_id, email, password_digest, created_at, updated_at FROM users WHERE email = \$1`).
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(3, "a@b.com", "digest", now, now))

	found, err := repo.FindUserByEmail(context.Background(), "a@b.com")

	require.NoError(t, err)
	assert.Equal(t, int64(3), found.UserID)
	assert.Equal(t, "digest", found.PasswordDigest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("ghost@b.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByEmail(context.Background(), "ghost@b.com")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(`SELECT .* FROM users WHERE user_id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(9, "test@example.com", "digest", now, now))

	found, err := repo.FindUserByID(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: 9, Email: "test@example.com"}, found.Identity())
}

func TestFindUserByID_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "no rows",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT user_id").WillReturnRows(sqlmock.NewRows(userRowColumns))
			},
			wantErr: ErrNoUserWasFound,
		},
		{
			name: "connection failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT user_id").WillReturnError(sql.ErrConnDone)
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "bad timestamp",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT user_id").
					WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "a@b.com", "d", "yesterday", "yesterday"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			_, err := repo.FindUserByID(context.Background(), 1)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuildQueries_SQLitePlaceholders(t *testing.T) {
	db := newDB(nil, config.DriverSQLite, logger.Nop())

	query, args, err := buildFindUserByEmail(db.builder, "a@b.com")

	require.NoError(t, err)
	assert.Equal(t, "SELECT user_id, email, password_digest, created_at, updated_at FROM users WHERE email = ?", query)
	assert.Equal(t, []any{"a@b.com"}, args)
}

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		src     any
		want    time.Time
		wantErr bool
	}{
		{name: "time", src: want, want: want},
		{name: "sqlite text", src: "2026-10-19 12:30:00", want: want},
		{name: "rfc3339 bytes", src: []byte("2026-10-19T12:30:00Z"), want: want},
		{name: "null", src: nil, want: time.Time{}},
		{name: "garbage", src: "soon", wantErr: true},
		{name: "number", src: int64(5), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts timestamp
			err := ts.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(ts.Time), "want %v, got %v", tt.want, ts.Time)
		})
	}
}
