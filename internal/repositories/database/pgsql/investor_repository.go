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

const investorColumns = "investor_id, name, ownership_percent, invested_amount, notes, created_at, created_by"

type PgxInvestorRepository struct {
	BaseRepository
}

func newPgxInvestorRepository(pool *pgxpool.Pool) portsrepo.InvestorRepositoryFacade {
	return &PgxInvestorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestorRepositoryFacade = (*PgxInvestorRepository)(nil)

func scanInvestor(row pgx.Row) (models.Investor, error) {
	var m models.Investor
	err := row.Scan(&m.InvestorID, &m.Name, &m.OwnershipPercent, &m.InvestedAmount, &m.Notes, &m.CreatedAt, &m.CreatedBy)
	return m, err
}

func (r *PgxInvestorRepository) SaveInvestor(ctx context.Context, investor domain.Investor) error {
	m := mapping.ToModelInvestor(investor)
	_, err := r.Pool.Exec(ctx, `INSERT INTO investors (`+investorColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		m.InvestorID, m.Name, m.OwnershipPercent, m.InvestedAmount, m.Notes, m.CreatedAt, m.CreatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert investor", err)
	}
	return nil
}

func (r *PgxInvestorRepository) FindInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error) {
	m, err := scanInvestor(r.Pool.QueryRow(ctx, `SELECT `+investorColumns+` FROM investors WHERE investor_id = $1;`, investorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find investor", err)
	}
	inv := mapping.ToDomainInvestor(m)
	return &inv, nil
}

func (r *PgxInvestorRepository) ListInvestors(ctx context.Context) ([]domain.Investor, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+investorColumns+` FROM investors ORDER BY investor_id ASC;`)
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

func (r *PgxInvestorRepository) DeleteInvestor(ctx context.Context, investorID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM investors WHERE investor_id = $1;`, investorID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete investor", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
