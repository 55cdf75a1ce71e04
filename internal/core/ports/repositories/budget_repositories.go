package repositories

import (
	"context"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
)

// BudgetRepositoryFacade defines persistence for budgets.
type BudgetRepositoryFacade interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)
	// ListBudgets orders by year desc, then month desc with annual budgets last.
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID string) error
}
