package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Investor is a holder of an equity stake.
type Investor struct {
	InvestorID       string          `json:"investorID"`
	Name             string          `json:"name"`
	OwnershipPercent decimal.Decimal `json:"ownershipPercent"`
	InvestedAmount   decimal.Decimal `json:"investedAmount"`
	Notes            *string         `json:"notes,omitempty"`
	AuditFields
}

// ImpliedValuation infers the organization value from the stake size.
// It is undefined when the investor holds no ownership.
func (i Investor) ImpliedValuation() decimal.NullDecimal {
	if !i.OwnershipPercent.IsPositive() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(i.InvestedAmount.Div(i.OwnershipPercent).Mul(hundred))
}

// InvestorValuation pairs an investor with its implied valuation.
type InvestorValuation struct {
	Investor         Investor            `json:"investor"`
	ImpliedValuation decimal.NullDecimal `json:"impliedValuation"`
}

// CapTable summarizes all investors.
type CapTable struct {
	Investors         []InvestorValuation `json:"investors"`
	TotalInvested     decimal.Decimal     `json:"totalInvested"`
	TotalOwnership    decimal.Decimal     `json:"totalOwnership"`
	OwnershipExceeded bool                `json:"ownershipExceeded"`
}

// CreateInvestorInput carries the values needed to register an investor.
type CreateInvestorInput struct {
	Name             string
	OwnershipPercent decimal.Decimal
	InvestedAmount   decimal.Decimal
	Notes            *string
}
