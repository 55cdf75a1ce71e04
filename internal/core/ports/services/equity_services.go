package services

import (
	"context"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
)

// EquitySvcFacade manages investors and the capitalization table.
type EquitySvcFacade interface {
	CreateInvestor(ctx context.Context, input domain.CreateInvestorInput, actor string) (*domain.Investor, error)
	GetInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error)
	ListInvestors(ctx context.Context) ([]domain.Investor, error)
	DeleteInvestor(ctx context.Context, investorID string, actor string) error

	// CapTable returns every investor with implied valuation and totals.
	CapTable(ctx context.Context) (*domain.CapTable, error)
}
