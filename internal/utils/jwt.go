package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by ParseBearerToken.
var (
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrEmptyToken                 = errors.New("empty token in `Authorization` header")
)

// GenerateJWTToken creates a signed HMAC-SHA256 session token for userID.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if issuer or signKey is empty or tokenDuration is zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-auth-gate", 42, time.Hour, "secret")
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification with tokenSignKey
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "go-auth-gate")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed := models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString}
	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, err
	}
	parsed.UserID = userID

	return parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization" header value
// of the form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
