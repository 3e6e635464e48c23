package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrUnknownIdentity is returned when a valid token names a user that
	// no longer exists.
	ErrUnknownIdentity = errors.New("token subject does not match any user")
)
