package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/services"
)

func TestCreateInvestor(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvestorRepository)
	svc := services.NewEquityService(repo)

	repo.On("SaveInvestor", ctx, mock.MatchedBy(func(i domain.Investor) bool {
		return i.Name == "Ana Ruiz" && i.Notes == nil
	})).Return(nil).Once()

	blank := "   "
	inv, err := svc.CreateInvestor(ctx, domain.CreateInvestorInput{
		Name:             " Ana Ruiz ",
		OwnershipPercent: decimal.NewFromInt(10),
		InvestedAmount:   decimal.NewFromInt(100000),
		Notes:            &blank,
	}, "founder")
	require.NoError(t, err)
	assert.Equal(t, "founder", inv.CreatedBy)
	assert.Equal(t, "1000000.00", inv.ImpliedValuation().Decimal.StringFixed(2))
	repo.AssertExpectations(t)
}

func TestCreateInvestor_Validation(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvestorRepository)
	svc := services.NewEquityService(repo)

	tests := []struct {
		name  string
		input domain.CreateInvestorInput
		want  error
	}{
		{"blank name", domain.CreateInvestorInput{Name: "", OwnershipPercent: decimal.NewFromInt(5)}, apperrors.ErrValidation},
		{"percent above 100", domain.CreateInvestorInput{Name: "x", OwnershipPercent: decimal.NewFromInt(101)}, apperrors.ErrValidation},
		{"negative percent", domain.CreateInvestorInput{Name: "x", OwnershipPercent: decimal.NewFromInt(-1)}, apperrors.ErrValidation},
		{"negative invested", domain.CreateInvestorInput{Name: "x", OwnershipPercent: decimal.NewFromInt(5), InvestedAmount: decimal.NewFromInt(-1)}, apperrors.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateInvestor(ctx, tt.input, "founder")
			assert.ErrorIs(t, err, tt.want)
		})
	}
	repo.AssertNotCalled(t, "SaveInvestor", mock.Anything, mock.Anything)
}

func TestCapTable(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvestorRepository)
	svc := services.NewEquityService(repo)

	repo.On("ListInvestors", ctx).Return([]domain.Investor{
		{InvestorID: "1", Name: "Seed", OwnershipPercent: decimal.NewFromInt(10), InvestedAmount: decimal.NewFromInt(100000)},
		{InvestorID: "2", Name: "Advisor", OwnershipPercent: decimal.Zero, InvestedAmount: decimal.Zero},
		{InvestorID: "3", Name: "Series A", OwnershipPercent: decimal.NewFromInt(95), InvestedAmount: decimal.NewFromInt(950000)},
	}, nil).Once()

	table, err := svc.CapTable(ctx)
	require.NoError(t, err)
	require.Len(t, table.Investors, 3)
	assert.True(t, table.Investors[0].ImpliedValuation.Valid)
	assert.False(t, table.Investors[1].ImpliedValuation.Valid)
	assert.Equal(t, "1050000.00", table.TotalInvested.StringFixed(2))
	assert.Equal(t, "105", table.TotalOwnership.String())
	assert.True(t, table.OwnershipExceeded)
}

func TestDeleteInvestor_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInvestorRepository)
	svc := services.NewEquityService(repo)
	repo.On("DeleteInvestor", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	assert.ErrorIs(t, svc.DeleteInvestor(ctx, "missing", "founder"), apperrors.ErrNotFound)
}
