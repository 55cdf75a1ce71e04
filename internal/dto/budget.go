package dto

import (
	"time"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils"
)

// CreateBudgetRequest defines the data needed to create a budget. A missing month means annual.
type CreateBudgetRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	Year          int    `json:"year" binding:"required,min=1,max=9999"`
	Month         *int   `json:"month" binding:"omitempty,min=1,max=12"`
	ExpenseTarget string `json:"expenseTarget"`
}

func (r CreateBudgetRequest) ToInput() (domain.CreateBudgetInput, error) {
	target, err := utils.ParseAmount(r.ExpenseTarget)
	if err != nil {
		return domain.CreateBudgetInput{}, err
	}
	return domain.CreateBudgetInput{Name: r.Name, Year: r.Year, Month: r.Month, ExpenseTarget: target}, nil
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID      string         `json:"budgetID"`
	Name          string         `json:"name"`
	Year          int            `json:"year"`
	Month         *int           `json:"month"`
	ExpenseTarget AmountResponse `json:"expenseTarget"`
	CreatedAt     time.Time      `json:"createdAt"`
	CreatedBy     string         `json:"createdBy"`
}

func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:      b.BudgetID,
		Name:          b.Name,
		Year:          b.Year,
		Month:         b.Month,
		ExpenseTarget: amount(b.ExpenseTarget),
		CreatedAt:     b.CreatedAt,
		CreatedBy:     b.CreatedBy,
	}
}

// ListBudgetsResponse wraps a list of budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

func ToListBudgetsResponse(budgets []domain.Budget) ListBudgetsResponse {
	out := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		out[i] = ToBudgetResponse(&budgets[i])
	}
	return ListBudgetsResponse{Budgets: out}
}

// BudgetVarianceResponse compares a budget with actual spending. Positive variance is an overspend.
type BudgetVarianceResponse struct {
	Budget        BudgetResponse `json:"budget"`
	ActualExpense AmountResponse `json:"actualExpense"`
	Variance      AmountResponse `json:"variance"`
	Overspent     bool           `json:"overspent"`
}

func ToBudgetVarianceResponse(v *domain.BudgetVariance) BudgetVarianceResponse {
	return BudgetVarianceResponse{
		Budget:        ToBudgetResponse(&v.Budget),
		ActualExpense: amount(v.ActualExpense),
		Variance:      amount(v.Variance),
		Overspent:     v.Variance.IsPositive(),
	}
}

// ListBudgetVariancesResponse wraps the variance of every budget.
type ListBudgetVariancesResponse struct {
	Variances []BudgetVarianceResponse `json:"variances"`
}

func ToListBudgetVariancesResponse(vs []domain.BudgetVariance) ListBudgetVariancesResponse {
	out := make([]BudgetVarianceResponse, len(vs))
	for i := range vs {
		out[i] = ToBudgetVarianceResponse(&vs[i])
	}
	return ListBudgetVariancesResponse{Variances: out}
}
