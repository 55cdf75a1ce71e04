package services

import (
	"context"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LiquiditySvc estimates cash burn and runway.
type LiquiditySvc interface {
	// BurnRate averages the most recent expense months, up to three.
	BurnRate(ctx context.Context) (decimal.Decimal, []domain.MonthlyAmount, error)

	// RunwayMonths divides cash by burn rate; it is null when burn is not positive.
	RunwayMonths(ctx context.Context) (decimal.NullDecimal, error)

	// Report computes cash, burn and runway over lines dated up to asOf (zero means all).
	Report(ctx context.Context, asOf domain.DateRange) (*domain.LiquidityReport, error)
}
