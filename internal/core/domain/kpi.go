package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyKPI is a derived snapshot of liquidity figures for one month.
// It can be recomputed at any time and is never a source of truth.
type MonthlyKPI struct {
	Year             int                 `json:"year"`
	Month            int                 `json:"month"`
	BurnRate         decimal.Decimal     `json:"burnRate"`
	RunwayMonths     decimal.NullDecimal `json:"runwayMonths"`
	RecurringRevenue decimal.Decimal     `json:"recurringRevenue"`
	CalculatedBy     string              `json:"calculatedBy"`
	CalculatedAt     time.Time           `json:"calculatedAt"`
	Notes            *string             `json:"notes,omitempty"`
}
