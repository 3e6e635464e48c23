// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// normalize fills derived values after all sources are merged.
// A bare database name from the DB variable becomes a local PostgreSQL DSN.
func (cfg *StructuredConfig) normalize() {
	cfg.Storage.DB.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.DB.Driver))

	if cfg.Storage.DB.DSN == "" && cfg.Database != "" && cfg.Storage.DB.Driver == DriverPostgres {
		cfg.Storage.DB.DSN = fmt.Sprintf("postgres://localhost:5432/%s?sslmode=disable", url.PathEscape(cfg.Database))
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. With signKeyOptional the token
// sign key may be empty; everything else is still required.
func (cfg *StructuredConfig) validate(signKeyOptional bool) error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" && !signKeyOptional {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordCost < bcrypt.MinCost || cfg.App.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password cost must be in range %d-%d", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}

	return nil
}
