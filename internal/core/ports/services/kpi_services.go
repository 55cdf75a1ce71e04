package services

import (
	"context"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
)

// KPISvcFacade maintains monthly KPI snapshots.
type KPISvcFacade interface {
	// Recalculate derives the KPI for a month from posted lines and stores it.
	Recalculate(ctx context.Context, year, month int, notes *string, actor string) (*domain.MonthlyKPI, error)
	GetKPI(ctx context.Context, year, month int) (*domain.MonthlyKPI, error)
	ListKPIs(ctx context.Context) ([]domain.MonthlyKPI, error)
}
