package postgres

import (
	"database/sql"
	"log/slog"

	"farmhub/internal/infra/persistence/postgres/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

// ApplyMigrations brings the schema up to the latest embedded version.
// It is a no-op when the database is already current.
func ApplyMigrations(sqlDB *sql.DB, logger *slog.Logger) error {
	driver, err := migratepgx.WithInstance(sqlDB, &migratepgx.Config{})
	if err != nil {
		return errors.Wrap(err, "create migration driver")
	}

	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return errors.Wrap(err, "open embedded migrations")
	}

	instance, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "create migrate instance")
	}

	err = instance.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Debug("Database schema is up to date")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	version, dirty, err := instance.Version()
	if err != nil {
		return errors.Wrap(err, "read migration version")
	}
	logger.Info("Database migrations applied",
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)

	return nil
}
