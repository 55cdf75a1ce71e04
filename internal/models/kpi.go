package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyKPI is the persisted row of the monthly_kpis table.
type MonthlyKPI struct {
	Year             int                 `db:"year"`
	Month            int                 `db:"month"`
	BurnRate         decimal.Decimal     `db:"burn_rate"`
	RunwayMonths     decimal.NullDecimal `db:"runway_months"`
	RecurringRevenue decimal.Decimal     `db:"recurring_revenue"`
	CalculatedBy     string              `db:"calculated_by"`
	CalculatedAt     time.Time           `db:"calculated_at"`
	Notes            *string             `db:"notes"`
}
