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

const investorColumns = "investor_id, name, ownership_percent, invested_amount, notes, created_at, created_by"

type SQLiteInvestorRepository struct {
	BaseRepository
}

func newSQLiteInvestorRepository(db *sql.DB) portsrepo.InvestorRepositoryFacade {
	return &SQLiteInvestorRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.InvestorRepositoryFacade = (*SQLiteInvestorRepository)(nil)

func scanInvestor(row rowScanner) (models.Investor, error) {
	var (
		m         models.Investor
		createdAt string
	)
	if err := row.Scan(&m.InvestorID, &m.Name, &m.OwnershipPercent, &m.InvestedAmount, &m.Notes, &createdAt, &m.CreatedBy); err != nil {
		return m, err
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return m, fmt.Errorf("investor %s created_at: %w", m.InvestorID, err)
	}
	m.CreatedAt = t
	return m, nil
}

func (r *SQLiteInvestorRepository) SaveInvestor(ctx context.Context, investor domain.Investor) error {
	m := mapping.ToModelInvestor(investor)
	_, err := r.DB.ExecContext(ctx, `INSERT INTO investors (`+investorColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?);`,
		m.InvestorID, m.Name, m.OwnershipPercent, m.InvestedAmount, m.Notes, formatTime(m.CreatedAt), m.CreatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert investor", err)
	}
	return nil
}

func (r *SQLiteInvestorRepository) FindInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error) {
	m, err := scanInvestor(r.DB.QueryRowContext(ctx, `SELECT `+investorColumns+` FROM investors WHERE investor_id = ?;`, investorID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find investor", err)
	}
	inv := mapping.ToDomainInvestor(m)
	return &inv, nil
}

func (r *SQLiteInvestorRepository) ListInvestors(ctx context.Context) ([]domain.Investor, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+investorColumns+` FROM investors ORDER BY investor_id ASC;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list investors", err)
	}
	defer rows.Close()
	var investors []domain.Investor
	for rows.Next() {
		m, err := scanInvestor(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan investor", err)
		}
		investors = append(investors, mapping.ToDomainInvestor(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate investors", err)
	}
	return investors, nil
}

func (r *SQLiteInvestorRepository) DeleteInvestor(ctx context.Context, investorID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM investors WHERE investor_id = ?;`, investorID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete investor", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
