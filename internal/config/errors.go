package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid token or password settings
	// (for example, missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidFlags is returned when the command line cannot be parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
)
