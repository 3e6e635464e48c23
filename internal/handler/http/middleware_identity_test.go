package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/mock"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCookieName = "token"

func newTestHandler(t *testing.T) (*Handler, *mock.MockAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	authSvc := mock.NewMockAuthService(ctrl)

	return &Handler{
		services:           &service.Services{AuthService: authSvc},
		cookieName:         testCookieName,
		corsAllowedOrigins: []string{"*"},
		logger:             logger.Nop(),
	}, authSvc
}

// resolveRequest runs req through withIdentity and returns what the next
// handler saw.
func resolveRequest(t *testing.T, h *Handler, req *http.Request) utils.IdentityResolution {
	t.Helper()

	var (
		got    utils.IdentityResolution
		called bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = utils.GetIdentityResolutionFromContext(r.Context())
		require.True(t, ok, "resolution must always be attached")
		called = true
	})

	h.withIdentity(next).ServeHTTP(httptest.NewRecorder(), req)
	require.True(t, called, "withIdentity must never reject a request")

	return got
}

func TestWithIdentity_NoCredentials(t *testing.T) {
	h, authSvc := newTestHandler(t)
	authSvc.EXPECT().ResolveIdentity(gomock.Any(), gomock.Any()).Times(0)

	res := resolveRequest(t, h, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.True(t, res.Anonymous())
}

func TestWithIdentity_BearerHeader(t *testing.T) {
	h, authSvc := newTestHandler(t)
	identity := models.Identity{UserID: 1, Email: "a@b.com"}
	authSvc.EXPECT().ResolveIdentity(gomock.Any(), "good-token").Return(identity, nil)

	req := httptest.NewRequest(http.MethodGet, "/userinfo", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	res := resolveRequest(t, h, req)

	assert.True(t, res.Present)
	assert.NoError(t, res.Err)
	assert.Equal(t, identity, res.Identity)
}

func TestWithIdentity_Cookie(t *testing.T) {
	h, authSvc := newTestHandler(t)
	identity := models.Identity{UserID: 2, Email: "test@example.com"}
	authSvc.EXPECT().ResolveIdentity(gomock.Any(), "cookie-token").Return(identity, nil)

	req := httptest.NewRequest(http.MethodGet, "/userinfo", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "cookie-token"})

	res := resolveRequest(t, h, req)

	assert.True(t, res.Present)
	assert.Equal(t, identity, res.Identity)
}

func TestWithIdentity_HeaderWinsOverCookie(t *testing.T) {
	h, authSvc := newTestHandler(t)
	authSvc.EXPECT().ResolveIdentity(gomock.Any(), "header-token").
		Return(models.Identity{UserID: 1, Email: "a@b.com"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/userinfo", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "cookie-token"})

	res := resolveRequest(t, h, req)

	assert.True(t, res.Present)
}

func TestWithIdentity_MalformedHeaderIsAnonymous(t *testing.T) {
	for _, header := range []string{"Basic dXNlcjpwYXNz", "Bearer", "Bearer    ", "token-without-scheme"} {
		t.Run(header, func(t *testing.T) {
			h, authSvc := newTestHandler(t)
			authSvc.EXPECT().ResolveIdentity(gomock.Any(), gomock.Any()).Times(0)

			req := httptest.NewRequest(http.MethodGet, "/secret", nil)
			req.Header.Set("Authorization", header)

			res := resolveRequest(t, h, req)

			assert.True(t, res.Anonymous())
		})
	}
}

func TestWithIdentity_ResolverErrors(t *testing.T) {
	dbErr := errors.New("connection refused")

	tests := []struct {
		name          string
		resolveErr    error
		wantAnonymous bool
	}{
		{name: "invalid token", resolveErr: service.ErrTokenIsExpiredOrInvalid, wantAnonymous: true},
		{name: "unknown user", resolveErr: service.ErrUnknownIdentity, wantAnonymous: true},
		{name: "database fault", resolveErr: fmt.Errorf("identity lookup failed: %w", dbErr), wantAnonymous: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authSvc := newTestHandler(t)
			authSvc.EXPECT().ResolveIdentity(gomock.Any(), "some-token").Return(models.Identity{}, tt.resolveErr)

			req := httptest.NewRequest(http.MethodGet, "/secret", nil)
			req.Header.Set("Authorization", "Bearer some-token")

			res := resolveRequest(t, h, req)

			assert.False(t, res.Present)
			assert.Equal(t, tt.wantAnonymous, res.Anonymous())
			if !tt.wantAnonymous {
				assert.ErrorIs(t, res.Err, dbErr)
			}
		})
	}
}

func TestWithIdentity_OtherCookiesIgnored(t *testing.T) {
	h, authSvc := newTestHandler(t)
	authSvc.EXPECT().ResolveIdentity(gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "unrelated"})

	res := resolveRequest(t, h, req)

	assert.True(t, res.Anonymous())
}
