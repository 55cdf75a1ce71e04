package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/dto"
)

func TestPostEntryRequest_ToInput(t *testing.T) {
	req := dto.PostEntryRequest{
		Date:        "2025-01-15",
		Description: "Cobro",
		Lines: []dto.LineRequest{
			{AccountID: "a", Debit: "1.234,5"},
			{AccountID: "b", Credit: "250,75"},
		},
	}
	_, err := req.ToInput()
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount, "thousand separators are not accepted")

	req.Lines[0].Debit = "250,75"
	in, err := req.ToInput()
	require.NoError(t, err)
	assert.Equal(t, 2025, in.Date.Year())
	assert.True(t, in.Lines[0].Debit.Equal(decimal.RequireFromString("250.75")))
	assert.True(t, in.Lines[0].Credit.IsZero())
	assert.True(t, in.Lines[1].Credit.Equal(decimal.RequireFromString("250.75")))
}

func TestPostEntryRequest_ToInput_BadDate(t *testing.T) {
	req := dto.PostEntryRequest{Date: "15/01/2025", Lines: []dto.LineRequest{{AccountID: "a"}, {AccountID: "b"}}}
	_, err := req.ToInput()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPeriodParams_ToRange(t *testing.T) {
	r, err := dto.PeriodParams{}.ToRange()
	require.NoError(t, err)
	assert.True(t, r.IsZero())

	r, err = dto.PeriodParams{From: "2025-01-01", To: "2025-03-31"}.ToRange()
	require.NoError(t, err)
	assert.Equal(t, 3, int(r.To.Month()))

	_, err = dto.PeriodParams{From: "2025-04-01", To: "2025-03-31"}.ToRange()
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = dto.PeriodParams{To: "yesterday"}.ToRange()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToInvestorResponse_UndefinedValuation(t *testing.T) {
	inv := domain.Investor{Name: "Advisor", OwnershipPercent: decimal.Zero, InvestedAmount: decimal.NewFromInt(5000)}
	resp := dto.ToInvestorResponse(&inv)
	assert.Nil(t, resp.ImpliedValuation)
	assert.Equal(t, "5000.00", resp.InvestedAmount)

	inv.OwnershipPercent = decimal.NewFromInt(10)
	inv.InvestedAmount = decimal.NewFromInt(100000)
	resp = dto.ToInvestorResponse(&inv)
	require.NotNil(t, resp.ImpliedValuation)
	assert.Equal(t, "1000000.00", *resp.ImpliedValuation)
}

func TestToLiquidityResponse_NullRunway(t *testing.T) {
	resp := dto.ToLiquidityResponse(&domain.LiquidityReport{
		CashBalance: decimal.NewFromInt(100),
		BurnRate:    decimal.Zero,
	})
	assert.Nil(t, resp.RunwayMonths)
	assert.Equal(t, "0.00", resp.BurnRate)
	assert.Empty(t, resp.BurnMonths)
}
