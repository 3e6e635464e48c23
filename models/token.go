package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT with convenience accessors.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access. SignedString holds the
// compact form that clients send back in the "Authorization" header or the
// session cookie. UserID is the parsed "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
