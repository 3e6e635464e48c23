package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by CheckPassword when the password does
// not match the digest.
var ErrPasswordMismatch = errors.New("password does not match digest")

// HashPassword returns the bcrypt digest of password at the given cost.
//
// Example usage:
//
//	digest, err := utils.HashPassword("hunter2", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword compares password with a bcrypt digest.
// It returns ErrPasswordMismatch on a mismatch and a wrapped error when
// the digest itself is malformed.
func CheckPassword(digest, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error checking password: %w", err)
	}
}
