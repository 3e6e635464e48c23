package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/mock"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-auth-gate-test",
		TokenDuration: time.Hour,
		CookieName:    "token",
		PasswordCost:  bcrypt.MinCost,
	}
}

// newTestAuthSvc builds an authService backed by a mock repository.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAppConfig(), logger.Nop()).(*authService)
	return svc, repo
}

func mustDigest(t *testing.T, password string) string {
	t.Helper()
	digest, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return digest
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 7, Email: "a@b.com", PasswordDigest: mustDigest(t, "s3cret")}
	repo.EXPECT().FindUserByEmail(ctx, "a@b.com").Return(stored, nil)

	user, err := svc.Authenticate(ctx, "  A@B.com ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "a@b.com", user.Email)
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 7, Email: "a@b.com", PasswordDigest: mustDigest(t, "s3cret")}
	repo.EXPECT().FindUserByEmail(ctx, "a@b.com").Return(stored, nil)

	_, err := svc.Authenticate(ctx, "a@b.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Authenticate_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "nobody@b.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Authenticate(ctx, "nobody@b.com", "whatever")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Authenticate_EmptyInput(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "", password: "x"},
		{name: "blank email", email: "   ", password: "x"},
		{name: "empty password", email: "a@b.com", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestAuthSvc(t, ctrl)

			_, err := svc.Authenticate(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

// ── CreateToken / ParseToken ─────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "go-auth-gate-test", parsed.Issuer)
}

func TestAuthService_CreateToken_ZeroDuration(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	svc.tokenDuration = 0

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	expired, err := utils.GenerateJWTToken(svc.tokenIssuer, 1, -time.Minute, svc.tokenSignKey)
	require.NoError(t, err)
	foreignIssuer, err := utils.GenerateJWTToken("someone-else", 1, time.Hour, svc.tokenSignKey)
	require.NoError(t, err)
	foreignKey, err := utils.GenerateJWTToken(svc.tokenIssuer, 1, time.Hour, "other-key")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "expired", token: expired.String()},
		{name: "wrong issuer", token: foreignIssuer.String()},
		{name: "wrong key", token: foreignKey.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

// ── ResolveIdentity ──────────────────────────────────────────────────────────

func TestAuthService_ResolveIdentity_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 5})
	require.NoError(t, err)

	repo.EXPECT().FindUserByID(ctx, int64(5)).
		Return(models.User{UserID: 5, Email: "test@example.com", PasswordDigest: "digest"}, nil)

	identity, err := svc.ResolveIdentity(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: 5, Email: "test@example.com"}, identity)
}

func TestAuthService_ResolveIdentity_InvalidTokenSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.ResolveIdentity(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ResolveIdentity_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 99})
	require.NoError(t, err)

	repo.EXPECT().FindUserByID(ctx, int64(99)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err = svc.ResolveIdentity(ctx, token.String())
	assert.ErrorIs(t, err, ErrUnknownIdentity)
}

func TestAuthService_ResolveIdentity_DatabaseFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 3})
	require.NoError(t, err)

	dbErr := errors.New("connection refused")
	repo.EXPECT().FindUserByID(ctx, int64(3)).Return(models.User{}, dbErr)

	_, err = svc.ResolveIdentity(ctx, token.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrUnknownIdentity)
	assert.NotErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
