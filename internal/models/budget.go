package models

import "github.com/shopspring/decimal"

// Budget is the persisted row of the budgets table.
type Budget struct {
	BudgetID      string          `db:"budget_id"`
	Name          string          `db:"name"`
	Year          int             `db:"year"`
	Month         *int            `db:"month"`
	ExpenseTarget decimal.Decimal `db:"expense_target"`
	AuditFields
}
