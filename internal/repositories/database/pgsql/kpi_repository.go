package pgsql

import (
	"context"
	"errors"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/models"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const kpiColumns = "year, month, burn_rate, runway_months, recurring_revenue, calculated_by, calculated_at, notes"

type PgxKPIRepository struct {
	BaseRepository
}

func newPgxKPIRepository(pool *pgxpool.Pool) portsrepo.KPIRepositoryFacade {
	return &PgxKPIRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.KPIRepositoryFacade = (*PgxKPIRepository)(nil)

func scanKPI(row pgx.Row) (models.MonthlyKPI, error) {
	var m models.MonthlyKPI
	err := row.Scan(&m.Year, &m.Month, &m.BurnRate, &m.RunwayMonths, &m.RecurringRevenue, &m.CalculatedBy, &m.CalculatedAt, &m.Notes)
	return m, err
}

func (r *PgxKPIRepository) UpsertKPI(ctx context.Context, kpi domain.MonthlyKPI) error {
	m := mapping.ToModelKPI(kpi)
	_, err := r.Pool.Exec(ctx, `INSERT INTO monthly_kpis (`+kpiColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (year, month) DO UPDATE SET
			burn_rate = EXCLUDED.burn_rate,
			runway_months = EXCLUDED.runway_months,
			recurring_revenue = EXCLUDED.recurring_revenue,
			calculated_by = EXCLUDED.calculated_by,
			calculated_at = EXCLUDED.calculated_at,
			notes = EXCLUDED.notes;`,
		m.Year, m.Month, m.BurnRate, m.RunwayMonths, m.RecurringRevenue, m.CalculatedBy, m.CalculatedAt, m.Notes)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert monthly kpi", err)
	}
	return nil
}

func (r *PgxKPIRepository) FindKPI(ctx context.Context, year, month int) (*domain.MonthlyKPI, error) {
	m, err := scanKPI(r.Pool.QueryRow(ctx, `SELECT `+kpiColumns+` FROM monthly_kpis WHERE year = $1 AND month = $2;`, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find monthly kpi", err)
	}
	k := mapping.ToDomainKPI(m)
	return &k, nil
}

func (r *PgxKPIRepository) ListKPIs(ctx context.Context) ([]domain.MonthlyKPI, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+kpiColumns+` FROM monthly_kpis ORDER BY year DESC, month DESC;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list monthly kpis", err)
	}
	defer rows.Close()
	var kpis []domain.MonthlyKPI
	for rows.Next() {
		m, err := scanKPI(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan monthly kpi", err)
		}
		kpis = append(kpis, mapping.ToDomainKPI(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate monthly kpis", err)
	}
	return kpis, nil
}
