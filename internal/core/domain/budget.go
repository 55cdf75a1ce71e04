package domain

import "github.com/shopspring/decimal"

// Budget is an expense target for a year or a single month.
type Budget struct {
	BudgetID      string          `json:"budgetID"`
	Name          string          `json:"name"`
	Year          int             `json:"year"`
	Month         *int            `json:"month,omitempty"` // nil means annual
	ExpenseTarget decimal.Decimal `json:"expenseTarget"`
	AuditFields
}

// IsAnnual reports whether the budget spans the whole year.
func (b Budget) IsAnnual() bool {
	return b.Month == nil
}

// Covers reports whether the month falls inside the budget period.
func (b Budget) Covers(k MonthKey) bool {
	if k.Year != b.Year {
		return false
	}
	return b.Month == nil || *b.Month == k.Month
}

// BudgetVariance compares actual spending against a budget.
// A positive variance is an overspend.
type BudgetVariance struct {
	Budget        Budget          `json:"budget"`
	ActualExpense decimal.Decimal `json:"actualExpense"`
	Variance      decimal.Decimal `json:"variance"`
}

// CreateBudgetInput carries the values needed to create a budget.
type CreateBudgetInput struct {
	Name          string
	Year          int
	Month         *int
	ExpenseTarget decimal.Decimal
}
