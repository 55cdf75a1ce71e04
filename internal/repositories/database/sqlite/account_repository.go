package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/models"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils/mapping"
)

const accountColumns = "account_id, code, name, account_type, scheme, is_cash, is_equity, created_at, created_by"

type SQLiteAccountRepository struct {
	BaseRepository
}

func newSQLiteAccountRepository(db *sql.DB) portsrepo.AccountRepositoryFacade {
	return &SQLiteAccountRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.AccountRepositoryFacade = (*SQLiteAccountRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		m         models.Account
		createdAt string
	)
	if err := row.Scan(&m.AccountID, &m.Code, &m.Name, &m.AccountType, &m.Scheme, &m.IsCash, &m.IsEquity, &createdAt, &m.CreatedBy); err != nil {
		return m, err
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return m, fmt.Errorf("account %s created_at: %w", m.AccountID, err)
	}
	m.CreatedAt = t
	return m, nil
}

func (r *SQLiteAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	_, err := r.DB.ExecContext(ctx, `INSERT INTO accounts (`+accountColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		m.AccountID, m.Code, m.Name, m.AccountType, m.Scheme, m.IsCash, m.IsEquity, formatTime(m.CreatedAt), m.CreatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateCode, m.Code)
		}
		return apperrors.NewAppError(500, "failed to insert account", err)
	}
	return nil
}

func (r *SQLiteAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	m, err := scanAccount(r.DB.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id = ?;`, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account", err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (r *SQLiteAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(accountIDs)), ", ")
	args := make([]any, len(accountIDs))
	for i, id := range accountIDs {
		args[i] = id
	}
	rows, err := r.DB.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_id IN (`+placeholders+`);`, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by ids", err)
	}
	defer rows.Close()
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account", err)
		}
		result[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate accounts", err)
	}
	return result, nil
}

func (r *SQLiteAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY code ASC;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list accounts", err)
	}
	defer rows.Close()
	var ms []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate accounts", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

func (r *SQLiteAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(tx)

	var exists, inUse bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_id = ?1),
		EXISTS (SELECT 1 FROM journal_lines WHERE account_id = ?1);`, accountID).Scan(&exists, &inUse)
	if err != nil {
		return apperrors.NewAppError(500, "failed to check account references", err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	if inUse {
		return apperrors.ErrAccountInUse
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE account_id = ?;`, accountID); err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.ErrAccountInUse
		}
		return apperrors.NewAppError(500, "failed to delete account", err)
	}
	return r.Commit(tx)
}
