package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils/accounting"
)

var fullOwnership = decimal.NewFromInt(100)

// equityService keeps the investor register and cap table.
type equityService struct {
	BaseService
	investorRepo portsrepo.InvestorRepositoryFacade
}

// NewEquityService creates a new equity registry.
func NewEquityService(repo portsrepo.InvestorRepositoryFacade) portssvc.EquitySvcFacade {
	return &equityService{investorRepo: repo}
}

var _ portssvc.EquitySvcFacade = (*equityService)(nil)

func (s *equityService) CreateInvestor(ctx context.Context, input domain.CreateInvestorInput, actor string) (*domain.Investor, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: investor name is required", apperrors.ErrValidation)
	}
	if input.OwnershipPercent.IsNegative() || input.OwnershipPercent.GreaterThan(fullOwnership) {
		return nil, fmt.Errorf("%w: ownership percent %s must be between 0 and 100", apperrors.ErrValidation, input.OwnershipPercent.String())
	}
	if !input.OwnershipPercent.Round(accounting.MaxDecimalPlaces).Equal(input.OwnershipPercent) {
		return nil, fmt.Errorf("%w: ownership percent %s has more than %d decimal places", apperrors.ErrValidation, input.OwnershipPercent.String(), accounting.MaxDecimalPlaces)
	}
	if err := accounting.CheckAmount(input.InvestedAmount); err != nil {
		return nil, err
	}
	var notes *string
	if input.Notes != nil {
		if n := strings.TrimSpace(*input.Notes); n != "" {
			notes = &n
		}
	}

	investorID, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to generate investor ID", err)
	}
	investor := domain.Investor{
		InvestorID:       investorID.String(),
		Name:             name,
		OwnershipPercent: input.OwnershipPercent,
		InvestedAmount:   input.InvestedAmount,
		Notes:            notes,
		AuditFields:      domain.AuditFields{CreatedAt: time.Now().UTC(), CreatedBy: actor},
	}
	if err := s.investorRepo.SaveInvestor(ctx, investor); err != nil {
		s.LogError(ctx, err, "Failed to save investor", slog.String("name", name))
		return nil, err
	}
	s.LogInfo(ctx, "Investor registered", slog.String("investor_id", investor.InvestorID), slog.String("actor", actor))
	return &investor, nil
}

func (s *equityService) GetInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error) {
	investor, err := s.investorRepo.FindInvestorByID(ctx, investorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find investor", slog.String("investor_id", investorID))
		}
		return nil, err
	}
	return investor, nil
}

func (s *equityService) ListInvestors(ctx context.Context) ([]domain.Investor, error) {
	investors, err := s.investorRepo.ListInvestors(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investors")
		return nil, err
	}
	return investors, nil
}

func (s *equityService) DeleteInvestor(ctx context.Context, investorID string, actor string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if err := s.investorRepo.DeleteInvestor(ctx, investorID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete investor", slog.String("investor_id", investorID))
		}
		return err
	}
	s.LogInfo(ctx, "Investor deleted", slog.String("investor_id", investorID), slog.String("actor", actor))
	return nil
}

// CapTable totals every stake. Total ownership is not capped at 100.
func (s *equityService) CapTable(ctx context.Context) (*domain.CapTable, error) {
	investors, err := s.ListInvestors(ctx)
	if err != nil {
		return nil, err
	}
	table := &domain.CapTable{
		Investors:      make([]domain.InvestorValuation, 0, len(investors)),
		TotalInvested:  decimal.Zero,
		TotalOwnership: decimal.Zero,
	}
	for _, inv := range investors {
		table.Investors = append(table.Investors, domain.InvestorValuation{Investor: inv, ImpliedValuation: inv.ImpliedValuation()})
		table.TotalInvested = table.TotalInvested.Add(inv.InvestedAmount)
		table.TotalOwnership = table.TotalOwnership.Add(inv.OwnershipPercent)
	}
	table.OwnershipExceeded = table.TotalOwnership.GreaterThan(fullOwnership)
	if table.OwnershipExceeded {
		s.LogInfo(ctx, "Total ownership exceeds 100 percent", slog.String("total_ownership", table.TotalOwnership.String()))
	}
	return table, nil
}
