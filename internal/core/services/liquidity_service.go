package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/platform/metrics"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils/accounting"
)

// burnWindow is how many of the latest expense months the burn rate averages.
const burnWindow = 3

// liquidityService estimates monthly burn and cash runway.
type liquidityService struct {
	BaseService
	ledgerReader
}

// NewLiquidityService creates a new liquidity analyzer.
func NewLiquidityService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader) portssvc.LiquiditySvc {
	return &liquidityService{ledgerReader: ledgerReader{accountRepo: accountRepo, journalRepo: journalRepo}}
}

var _ portssvc.LiquiditySvc = (*liquidityService)(nil)

// liquidity scans lines dated on or before through (zero means all) once and
// returns cash, burn and runway.
func (r ledgerReader) liquidity(ctx context.Context, through time.Time) (*domain.LiquidityReport, error) {
	accounts, err := r.accountsByID(ctx)
	if err != nil {
		return nil, err
	}

	cash := decimal.Zero
	expenseByMonth := make(map[domain.MonthKey]decimal.Decimal)
	err = r.eachLine(ctx, domain.LineFilter{Range: domain.Through(through)}, func(line domain.PostedLine) error {
		account := accounts[line.AccountID]
		switch {
		case account.AccountType == domain.Asset && account.IsCash:
			cash = cash.Add(line.Net())
		case account.AccountType == domain.Expense:
			k := domain.MonthOf(line.EntryDate)
			expenseByMonth[k] = expenseByMonth[k].Add(line.Net())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	months := accounting.RecentMonths(expenseByMonth, burnWindow)
	burn := accounting.Average(months)
	return &domain.LiquidityReport{
		CashBalance:  cash,
		BurnRate:     burn,
		BurnMonths:   months,
		RunwayMonths: accounting.Runway(cash, burn),
	}, nil
}

func (s *liquidityService) BurnRate(ctx context.Context) (decimal.Decimal, []domain.MonthlyAmount, error) {
	report, err := s.liquidity(ctx, time.Time{})
	if err != nil {
		s.LogError(ctx, err, "Failed to compute burn rate")
		return decimal.Zero, nil, err
	}
	return report.BurnRate, report.BurnMonths, nil
}

func (s *liquidityService) RunwayMonths(ctx context.Context) (decimal.NullDecimal, error) {
	report, err := s.liquidity(ctx, time.Time{})
	if err != nil {
		s.LogError(ctx, err, "Failed to compute runway")
		return decimal.NullDecimal{}, err
	}
	return report.RunwayMonths, nil
}

// Report ignores asOf.From; cash is a balance and needs every earlier line.
func (s *liquidityService) Report(ctx context.Context, asOf domain.DateRange) (*domain.LiquidityReport, error) {
	report, err := s.liquidity(ctx, asOf.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute liquidity report")
		return nil, err
	}
	metrics.StatementsComputed.WithLabelValues("liquidity").Inc()
	s.LogDebug(ctx, "Liquidity computed",
		slog.String("cash", report.CashBalance.StringFixed(2)),
		slog.String("burn_rate", report.BurnRate.StringFixed(2)),
		slog.Int("burn_months", len(report.BurnMonths)))
	return report, nil
}
