package adapter

import "errors"

var (
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("resource not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrGatewayTimeout      = errors.New("server timed out")

	ErrEmptyAddress = errors.New("empty address")
)
