package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

// Storages bundles the repositories and the connection they share.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DB.Driver, applies
// migrations when cfg.DB.AutoMigrate is set and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, err
		}
		log.Info().Str("driver", cfg.DB.Driver).Msg("migrations applied")
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
