package pgsql

import (
	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		JournalRepo:  newPgxJournalRepository(dbPool),
		BudgetRepo:   newPgxBudgetRepository(dbPool),
		InvestorRepo: newPgxInvestorRepository(dbPool),
		KPIRepo:      newPgxKPIRepository(dbPool),
	}
}
