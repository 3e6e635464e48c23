// Package migrations embeds the schema of the users table for every
// supported database driver and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// goose keeps its dialect and filesystem in package globals.
var gooseMu sync.Mutex

var migrationDirs = map[string]string{
	"pgx":     "postgres",
	"sqlite3": "sqlite",
}

// Migrate applies all pending migrations for driver ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, ok := migrationDirs[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
