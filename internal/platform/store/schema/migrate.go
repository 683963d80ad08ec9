// Package schema runs embedded SQL migrations against postgres
package schema

import (
	"embed"
	stderrs "errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"liveboard/internal/platform/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies all pending migrations. Embedded sources keep the binaries
// self-contained; no migrations directory has to ship alongside them.
// A database already at the latest version is not an error
func Migrate(connString string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, connString)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Named("schema").Warn().AnErr("source_err", srcErr).AnErr("db_err", dbErr).Msg("migrate close")
		}
	}()

	if err := m.Up(); err != nil && !stderrs.Is(err, migrate.ErrNoChange) {
		return err
	}

	v, dirty, err := m.Version()
	if err != nil && !stderrs.Is(err, migrate.ErrNilVersion) {
		return err
	}
	logger.Named("schema").Info().Uint("version", v).Bool("dirty", dirty).Msg("migrations applied")
	return nil
}
