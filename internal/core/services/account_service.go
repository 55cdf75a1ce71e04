package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
)

// accountService maintains the chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, input domain.CreateAccountInput, actor string) (*domain.Account, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	code := strings.TrimSpace(input.Code)
	name := strings.TrimSpace(input.Name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: account code and name are required", apperrors.ErrValidation)
	}
	accountType := domain.ParseAccountType(string(input.AccountType))
	if !accountType.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, input.AccountType)
	}
	scheme := strings.ToUpper(strings.TrimSpace(input.Scheme))
	if scheme == "" {
		scheme = domain.DefaultScheme
	}

	accountID, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to generate account ID", err)
	}
	account := domain.Account{
		AccountID:   accountID.String(),
		Code:        code,
		Name:        name,
		AccountType: accountType,
		Scheme:      scheme,
		IsCash:      input.IsCash,
		IsEquity:    input.IsEquity,
		AuditFields: domain.AuditFields{CreatedAt: time.Now().UTC(), CreatedBy: actor},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateCode) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateCode, code)
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("code", code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("code", code),
		slog.String("type", string(accountType)),
		slog.String("actor", actor))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string, actor string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrAccountInUse) {
			s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID), slog.String("actor", actor))
	return nil
}
