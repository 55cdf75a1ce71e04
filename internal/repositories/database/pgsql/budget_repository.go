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

const budgetColumns = "budget_id, name, year, month, expense_target, created_at, created_by"

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(&m.BudgetID, &m.Name, &m.Year, &m.Month, &m.ExpenseTarget, &m.CreatedAt, &m.CreatedBy)
	return m, err
}

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	_, err := r.Pool.Exec(ctx, `INSERT INTO budgets (`+budgetColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		m.BudgetID, m.Name, m.Year, m.Month, m.ExpenseTarget, m.CreatedAt, m.CreatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert budget", err)
	}
	return nil
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	m, err := scanBudget(r.Pool.QueryRow(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE budget_id = $1;`, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find budget", err)
	}
	b := mapping.ToDomainBudget(m)
	return &b, nil
}

func (r *PgxBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+budgetColumns+` FROM budgets ORDER BY year DESC, month DESC NULLS LAST, budget_id ASC;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list budgets", err)
	}
	defer rows.Close()
	var budgets []domain.Budget
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget", err)
		}
		budgets = append(budgets, mapping.ToDomainBudget(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate budgets", err)
	}
	return budgets, nil
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1;`, budgetID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete budget", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
