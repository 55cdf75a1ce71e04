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

const budgetColumns = "budget_id, name, year, month, expense_target, created_at, created_by"

type SQLiteBudgetRepository struct {
	BaseRepository
}

func newSQLiteBudgetRepository(db *sql.DB) portsrepo.BudgetRepositoryFacade {
	return &SQLiteBudgetRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.BudgetRepositoryFacade = (*SQLiteBudgetRepository)(nil)

func scanBudget(row rowScanner) (models.Budget, error) {
	var (
		m         models.Budget
		createdAt string
	)
	if err := row.Scan(&m.BudgetID, &m.Name, &m.Year, &m.Month, &m.ExpenseTarget, &createdAt, &m.CreatedBy); err != nil {
		return m, err
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return m, fmt.Errorf("budget %s created_at: %w", m.BudgetID, err)
	}
	m.CreatedAt = t
	return m, nil
}

func (r *SQLiteBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	_, err := r.DB.ExecContext(ctx, `INSERT INTO budgets (`+budgetColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?);`,
		m.BudgetID, m.Name, m.Year, m.Month, m.ExpenseTarget, formatTime(m.CreatedAt), m.CreatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert budget", err)
	}
	return nil
}

func (r *SQLiteBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	m, err := scanBudget(r.DB.QueryRowContext(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE budget_id = ?;`, budgetID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find budget", err)
	}
	b := mapping.ToDomainBudget(m)
	return &b, nil
}

func (r *SQLiteBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+budgetColumns+` FROM budgets ORDER BY year DESC, month IS NULL, month DESC, budget_id ASC;`)
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

func (r *SQLiteBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM budgets WHERE budget_id = ?;`, budgetID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete budget", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
