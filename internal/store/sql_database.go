package store

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/migrations"
)

// DB wraps a *sql.DB together with the dialect-specific pieces the
// repositories need: the squirrel statement builder and a classifier that
// maps driver errors to store sentinels.
type DB struct {
	*sql.DB

	driver  string
	builder sq.StatementBuilderType

	// uniqueViolation reports whether err is a unique constraint violation
	// in this driver's error vocabulary.
	uniqueViolation func(err error) bool

	logger *logger.Logger
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.uniqueViolation = isPostgresUniqueViolation
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.uniqueViolation = isSQLiteUniqueViolation
	}

	return db
}

// Migrate applies the embedded migrations of this connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// timestamp scans TIMESTAMP columns that drivers return either as
// time.Time or as text.
type timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	time.DateTime,
}

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unsupported timestamp format %q", s)
}
