package services

import (
	"context"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
)

// BudgetReaderSvc defines read operations for budgets
type BudgetReaderSvc interface {
	GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
}

// BudgetWriterSvc defines write operations for budgets
type BudgetWriterSvc interface {
	CreateBudget(ctx context.Context, input domain.CreateBudgetInput, actor string) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID string, actor string) error
}

// BudgetVarianceSvc compares budgets against posted expenses
type BudgetVarianceSvc interface {
	// Evaluate computes the actual expense and variance for one budget.
	Evaluate(ctx context.Context, budget domain.Budget) (*domain.BudgetVariance, error)

	// EvaluateByID loads a budget and evaluates it.
	EvaluateByID(ctx context.Context, budgetID string) (*domain.BudgetVariance, error)

	// EvaluateAll evaluates every budget in list order.
	EvaluateAll(ctx context.Context) ([]domain.BudgetVariance, error)
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
	BudgetVarianceSvc
}
