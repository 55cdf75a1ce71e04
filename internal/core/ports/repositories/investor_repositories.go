package repositories

import (
	"context"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
)

// InvestorRepositoryFacade defines persistence for investors.
type InvestorRepositoryFacade interface {
	SaveInvestor(ctx context.Context, investor domain.Investor) error
	FindInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error)
	// ListInvestors returns investors in creation order.
	ListInvestors(ctx context.Context) ([]domain.Investor, error)
	DeleteInvestor(ctx context.Context, investorID string) error
}
