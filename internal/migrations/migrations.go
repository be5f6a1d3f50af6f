package migrations

import (
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/tum-cit/memo-bench/internal/logger"
)

//go:embed sql/*.sql
var migrationFS embed.FS

// Up applies all pending schema migrations against the given database.
// It is a no-op when the schema is already current.
func Up(db *sqlx.DB) error {
	src, err := iofs.New(migrationFS, "sql")
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Log.Info("schema is up to date")
			return nil
		}
		return err
	}

	version, dirty, err := m.Version()
	logger.Log.Infow("migrations applied",
		"version", version,
		"dirty", dirty,
		"error", err,
	)
	return nil
}
