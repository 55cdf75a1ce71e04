// Package commands wires the carewave CLI.
package commands

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/platform/config"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/repositories/database/pgsql"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/repositories/database/sqlite"
	"github.com/techcarewavehealth-wq/carewaveerp/pkg/database"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "carewave",
		Short: "CareWave ERP accounting ledger",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newSeedCommand())
	rootCmd.AddCommand(newTokenCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}

// newLogger installs a JSON logger writing to w as the process default.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return logger
}

// loadRuntime reads configuration and sets up logging. Commands other than
// serve log to stderr so their output stays pipeable.
func loadRuntime(logOut io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, newLogger(cfg, logOut), nil
}

// migrationDSN returns the connection string migrations run against.
func migrationDSN(cfg *config.Config) string {
	if cfg.DBDriver == database.DriverPostgres {
		return cfg.DatabaseURL
	}
	return database.SQLiteDSN(cfg.SQLitePath)
}

// openStore connects to the configured database and returns the repositories
// with a function that releases the connection.
func openStore(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DBDriver {
	case database.DriverPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil
	case database.DriverSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return sqlite.NewRepositoryProvider(db), func() { closeSQLite(db) }, nil
	}
	return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
}

func closeSQLite(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("Error closing SQLite database", slog.String("error", err.Error()))
	}
}

// openServices opens the store, optionally migrating it first.
func openServices(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrateFirst bool) (*portssvc.ServiceContainer, func(), error) {
	if migrateFirst {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DBDriver, migrationDSN(cfg), database.Up, logger); err != nil {
			return nil, nil, err
		}
	}
	repos, closeFn, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return services.NewServiceContainer(repos), closeFn, nil
}
