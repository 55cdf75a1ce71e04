package sqlite

import (
	"database/sql"

	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every SQLite repository onto one database handle.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newSQLiteAccountRepository(db),
		JournalRepo:  newSQLiteJournalRepository(db),
		BudgetRepo:   newSQLiteBudgetRepository(db),
		InvestorRepo: newSQLiteInvestorRepository(db),
		KPIRepo:      newSQLiteKPIRepository(db),
	}
}
