package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/models"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils/mapping"
)

const kpiColumns = "year, month, burn_rate, runway_months, recurring_revenue, calculated_by, calculated_at, notes"

type SQLiteKPIRepository struct {
	BaseRepository
}

func newSQLiteKPIRepository(db *sql.DB) portsrepo.KPIRepositoryFacade {
	return &SQLiteKPIRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.KPIRepositoryFacade = (*SQLiteKPIRepository)(nil)

func scanKPI(row rowScanner) (models.MonthlyKPI, error) {
	var (
		m            models.MonthlyKPI
		calculatedAt string
	)
	if err := row.Scan(&m.Year, &m.Month, &m.BurnRate, &m.RunwayMonths, &m.RecurringRevenue, &m.CalculatedBy, &calculatedAt, &m.Notes); err != nil {
		return m, err
	}
	t, err := parseTime(calculatedAt)
	if err != nil {
		return m, fmt.Errorf("kpi %d-%02d calculated_at: %w", m.Year, m.Month, err)
	}
	m.CalculatedAt = t
	return m, nil
}

func (r *SQLiteKPIRepository) UpsertKPI(ctx context.Context, kpi domain.MonthlyKPI) error {
	m := mapping.ToModelKPI(kpi)
	_, err := r.DB.ExecContext(ctx, `INSERT INTO monthly_kpis (`+kpiColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (year, month) DO UPDATE SET
			burn_rate = excluded.burn_rate,
			runway_months = excluded.runway_months,
			recurring_revenue = excluded.recurring_revenue,
			calculated_by = excluded.calculated_by,
			calculated_at = excluded.calculated_at,
			notes = excluded.notes;`,
		m.Year, m.Month, m.BurnRate, m.RunwayMonths, m.RecurringRevenue, m.CalculatedBy, formatTime(m.CalculatedAt), m.Notes)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert monthly kpi", err)
	}
	return nil
}

func (r *SQLiteKPIRepository) FindKPI(ctx context.Context, year, month int) (*domain.MonthlyKPI, error) {
	m, err := scanKPI(r.DB.QueryRowContext(ctx, `SELECT `+kpiColumns+` FROM monthly_kpis WHERE year = ? AND month = ?;`, year, month))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find monthly kpi", err)
	}
	k := mapping.ToDomainKPI(m)
	return &k, nil
}

func (r *SQLiteKPIRepository) ListKPIs(ctx context.Context) ([]domain.MonthlyKPI, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+kpiColumns+` FROM monthly_kpis ORDER BY year DESC, month DESC;`)
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
