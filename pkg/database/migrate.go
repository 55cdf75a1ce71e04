package database

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver for the migration connection

	"github.com/techcarewavehealth-wq/carewaveerp/migrations"
)

// Driver names accepted by the configuration.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Direction selects which way migrations run.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// RunMigrations applies the embedded migrations for driver. It opens and
// closes its own connection, since migrate closes the instance it is given.
func RunMigrations(driver, dsn string, dir Direction, logger *slog.Logger) error {
	var (
		sqlDriver string
		dirName   string
		embedded  fs.FS
	)
	switch driver {
	case DriverPostgres:
		sqlDriver, dirName, embedded = "pgx", "postgres", migrations.Postgres
	case DriverSQLite:
		sqlDriver, dirName, embedded = "sqlite", "sqlite", migrations.SQLite
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	var instance migratedb.Driver
	if driver == DriverPostgres {
		instance, err = postgres.WithInstance(db, &postgres.Config{})
	} else {
		instance, err = sqlite.WithInstance(db, &sqlite.Config{})
	}
	if err != nil {
		db.Close()
		return fmt.Errorf("could not create %s driver instance for migrations: %w", driver, err)
	}

	source, err := iofs.New(embedded, dirName)
	if err != nil {
		db.Close()
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, instance)
	if err != nil {
		db.Close()
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if dir == Down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	sourceErr, dbErr := m.Close()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply %s migrations: %w", dir, err)
	}
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.", slog.String("driver", driver))
	} else {
		logger.Info("Database migrations applied successfully.", slog.String("driver", driver), slog.String("direction", string(dir)))
	}
	return nil
}
