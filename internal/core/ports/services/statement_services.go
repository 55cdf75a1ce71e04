package services

import (
	"context"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
)

// StatementSvc derives ledgers and financial statements from posted lines.
// Every call recomputes from the store. A zero range covers all time.
type StatementSvc interface {
	LedgerForAccount(ctx context.Context, accountID string) (*domain.AccountLedger, error)
	TrialBalance(ctx context.Context, period domain.DateRange) (*domain.TrialBalance, error)
	IncomeStatement(ctx context.Context, period domain.DateRange) (*domain.IncomeStatement, error)
	BalanceSheet(ctx context.Context, period domain.DateRange) (*domain.BalanceSheet, error)
}
