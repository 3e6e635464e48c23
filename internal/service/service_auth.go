package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt digests and issues and resolves
// HS256 session tokens.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Authenticate looks the user up by email and compares password with the
// stored digest.
//
// Returns the user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - a wrapped store.ErrNoUserWasFound if no user has that email.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.PasswordDigest, password); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("wrong password")
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return models.User{}, ErrWrongPassword
		}
		return models.User{}, err
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. Any validation failure (expired,
// wrong issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolveIdentity parses tokenString and re-reads the user it names, so a
// resolved identity always matches an existing row.
func (a *authService) ResolveIdentity(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Identity{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Identity{}, ErrUnknownIdentity
		}
		return models.Identity{}, fmt.Errorf("identity lookup failed: %w", err)
	}

	return user.Identity(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
