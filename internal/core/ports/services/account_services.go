package services

import (
	"context"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts returns every account ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	// CreateAccount registers a new account.
	CreateAccount(ctx context.Context, input domain.CreateAccountInput, actor string) (*domain.Account, error)

	// DeleteAccount removes an account that no journal line references.
	DeleteAccount(ctx context.Context, accountID string, actor string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
