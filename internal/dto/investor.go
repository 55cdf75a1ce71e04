package dto

import (
	"fmt"
	"time"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils"
)

// CreateInvestorRequest defines the data needed to register an investor.
type CreateInvestorRequest struct {
	Name             string  `json:"name" binding:"required,max=255"`
	OwnershipPercent string  `json:"ownershipPercent"`
	InvestedAmount   string  `json:"investedAmount"`
	Notes            *string `json:"notes"`
}

func (r CreateInvestorRequest) ToInput() (domain.CreateInvestorInput, error) {
	pct, err := utils.ParseAmount(r.OwnershipPercent)
	if err != nil {
		return domain.CreateInvestorInput{}, fmt.Errorf("ownership percent: %w", err)
	}
	invested, err := utils.ParseAmount(r.InvestedAmount)
	if err != nil {
		return domain.CreateInvestorInput{}, fmt.Errorf("invested amount: %w", err)
	}
	return domain.CreateInvestorInput{Name: r.Name, OwnershipPercent: pct, InvestedAmount: invested, Notes: r.Notes}, nil
}

// InvestorResponse defines the data returned for an investor.
type InvestorResponse struct {
	InvestorID       string          `json:"investorID"`
	Name             string          `json:"name"`
	OwnershipPercent AmountResponse  `json:"ownershipPercent"`
	InvestedAmount   AmountResponse  `json:"investedAmount"`
	ImpliedValuation *AmountResponse `json:"impliedValuation"`
	Notes            *string         `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

func ToInvestorResponse(inv *domain.Investor) InvestorResponse {
	return InvestorResponse{
		InvestorID:       inv.InvestorID,
		Name:             inv.Name,
		OwnershipPercent: amount(inv.OwnershipPercent),
		InvestedAmount:   amount(inv.InvestedAmount),
		ImpliedValuation: nullableAmount(inv.ImpliedValuation()),
		Notes:            inv.Notes,
		CreatedAt:        inv.CreatedAt,
		CreatedBy:        inv.CreatedBy,
	}
}

// ListInvestorsResponse wraps a list of investors.
type ListInvestorsResponse struct {
	Investors []InvestorResponse `json:"investors"`
}

func ToListInvestorsResponse(investors []domain.Investor) ListInvestorsResponse {
	out := make([]InvestorResponse, len(investors))
	for i := range investors {
		out[i] = ToInvestorResponse(&investors[i])
	}
	return ListInvestorsResponse{Investors: out}
}

// CapTableResponse summarizes all stakes.
type CapTableResponse struct {
	Investors         []InvestorResponse `json:"investors"`
	TotalInvested     AmountResponse     `json:"totalInvested"`
	TotalOwnership    AmountResponse     `json:"totalOwnership"`
	OwnershipExceeded bool               `json:"ownershipExceeded"`
}

func ToCapTableResponse(t *domain.CapTable) CapTableResponse {
	out := make([]InvestorResponse, len(t.Investors))
	for i := range t.Investors {
		out[i] = ToInvestorResponse(&t.Investors[i].Investor)
	}
	return CapTableResponse{
		Investors:         out,
		TotalInvested:     amount(t.TotalInvested),
		TotalOwnership:    amount(t.TotalOwnership),
		OwnershipExceeded: t.OwnershipExceeded,
	}
}
