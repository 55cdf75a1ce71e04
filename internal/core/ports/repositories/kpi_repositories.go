package repositories

import (
	"context"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
)

// KPIRepositoryFacade defines persistence for monthly KPI snapshots.
type KPIRepositoryFacade interface {
	// UpsertKPI inserts or replaces the snapshot for kpi.Year/kpi.Month.
	UpsertKPI(ctx context.Context, kpi domain.MonthlyKPI) error
	FindKPI(ctx context.Context, year, month int) (*domain.MonthlyKPI, error)
	// ListKPIs orders by year desc, month desc.
	ListKPIs(ctx context.Context) ([]domain.MonthlyKPI, error)
}
