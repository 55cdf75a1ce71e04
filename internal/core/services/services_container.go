package services

import (
	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo),
		Journal:   NewJournalService(repos.JournalRepo, repos.AccountRepo),
		Statement: NewStatementService(repos.AccountRepo, repos.JournalRepo),
		Budget:    NewBudgetService(repos.BudgetRepo, repos.AccountRepo, repos.JournalRepo),
		Liquidity: NewLiquidityService(repos.AccountRepo, repos.JournalRepo),
		Equity:    NewEquityService(repos.InvestorRepo),
		KPI:       NewKPIService(repos.KPIRepo, repos.AccountRepo, repos.JournalRepo),
	}
}
