package seed_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/repositories/database/sqlite"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/seed"
	"github.com/techcarewavehealth-wq/carewaveerp/pkg/database"
)

func TestSchemes(t *testing.T) {
	assert.Equal(t, []string{"ES", "US"}, seed.Schemes())
}

func TestLoadTemplate(t *testing.T) {
	for _, scheme := range []string{"ES", "us", " Es "} {
		tmpl, err := seed.LoadTemplate(scheme)
		require.NoError(t, err, scheme)
		assert.NotEmpty(t, tmpl.Accounts)

		var cash, equity int
		for _, a := range tmpl.Accounts {
			assert.True(t, domain.ParseAccountType(a.Type).Valid(), a.Code)
			if a.Cash {
				cash++
			}
			if a.Equity {
				equity++
			}
		}
		assert.Positive(t, cash, "template %s needs a cash account", scheme)
		assert.Positive(t, equity, "template %s needs an equity account", scheme)
	}
}

func TestLoadTemplate_Unknown(t *testing.T) {
	_, err := seed.LoadTemplate("FR")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestApply_SkipsExistingCodes(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)
	path := filepath.Join(t.TempDir(), "seed.db")
	require.NoError(t, database.RunMigrations(database.DriverSQLite, database.SQLiteDSN(path), database.Up, logger))
	db, err := database.NewSQLiteDB(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	svc := services.NewServiceContainer(sqlite.NewRepositoryProvider(db))

	tmpl, err := seed.LoadTemplate("ES")
	require.NoError(t, err)

	first, err := seed.Apply(ctx, svc.Account, tmpl, "seeder", logger)
	require.NoError(t, err)
	assert.Equal(t, len(tmpl.Accounts), first.Created)
	assert.Zero(t, first.Skipped)

	second, err := seed.Apply(ctx, svc.Account, tmpl, "seeder", logger)
	require.NoError(t, err)
	assert.Zero(t, second.Created)
	assert.Equal(t, len(tmpl.Accounts), second.Skipped)

	accounts, err := svc.Account.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, len(tmpl.Accounts))
	for _, a := range accounts {
		assert.Equal(t, "ES", a.Scheme)
		assert.Equal(t, "seeder", a.CreatedBy)
	}
}
