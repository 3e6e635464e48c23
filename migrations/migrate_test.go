// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations are registered, so every statement goose issues fails

	err = Migrate(db, "pgx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil, "pgx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestEmbeddedMigrations_EveryDriverHasUsersTable(t *testing.T) {
	for driver, dir := range migrationDirs {
		t.Run(driver, func(t *testing.T) {
			files, err := fs.Glob(embedMigrations, dir+"/*.sql")
			require.NoError(t, err)
			require.NotEmpty(t, files)

			content, err := fs.ReadFile(embedMigrations, files[0])
			require.NoError(t, err)
			assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS users")
			assert.Contains(t, string(content), "password_digest")
			assert.Contains(t, string(content), "-- +goose Down")
		})
	}
}
