package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
)

// kpiService snapshots monthly liquidity figures.
type kpiService struct {
	BaseService
	ledgerReader
	kpiRepo portsrepo.KPIRepositoryFacade
	now     func() time.Time
}

// NewKPIService creates a new KPI snapshotter.
func NewKPIService(kpiRepo portsrepo.KPIRepositoryFacade, accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader) portssvc.KPISvcFacade {
	return &kpiService{
		ledgerReader: ledgerReader{accountRepo: accountRepo, journalRepo: journalRepo},
		kpiRepo:      kpiRepo,
		now:          time.Now,
	}
}

var _ portssvc.KPISvcFacade = (*kpiService)(nil)

func validateMonth(year, month int) error {
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year %d out of range", apperrors.ErrValidation, year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d out of range", apperrors.ErrValidation, month)
	}
	return nil
}

// Recalculate derives burn, runway and recurring revenue as of the last day
// of the month and replaces any earlier snapshot for it.
func (s *kpiService) Recalculate(ctx context.Context, year, month int, notes *string, actor string) (*domain.MonthlyKPI, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	key := domain.MonthKey{Year: year, Month: month}

	liq, err := s.liquidity(ctx, key.LastDay())
	if err != nil {
		s.LogError(ctx, err, "Failed to compute liquidity for KPI", slog.Int("year", year), slog.Int("month", month))
		return nil, err
	}
	revenue, err := s.monthIncome(ctx, key)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute recurring revenue", slog.Int("year", year), slog.Int("month", month))
		return nil, err
	}

	runway := decimal.NullDecimal{}
	if liq.RunwayMonths.Valid {
		runway = decimal.NewNullDecimal(liq.RunwayMonths.Decimal.Round(2))
	}
	var trimmed *string
	if notes != nil {
		if n := strings.TrimSpace(*notes); n != "" {
			trimmed = &n
		}
	}
	kpi := domain.MonthlyKPI{
		Year:             year,
		Month:            month,
		BurnRate:         liq.BurnRate.Round(2),
		RunwayMonths:     runway,
		RecurringRevenue: revenue,
		CalculatedBy:     actor,
		CalculatedAt:     s.now().UTC(),
		Notes:            trimmed,
	}
	if err := s.kpiRepo.UpsertKPI(ctx, kpi); err != nil {
		s.LogError(ctx, err, "Failed to store KPI", slog.Int("year", year), slog.Int("month", month))
		return nil, err
	}
	s.LogInfo(ctx, "Monthly KPI recalculated",
		slog.Int("year", year), slog.Int("month", month),
		slog.String("burn_rate", kpi.BurnRate.StringFixed(2)),
		slog.String("actor", actor))
	return &kpi, nil
}

// monthIncome sums credit minus debit over income lines dated in the month.
func (s *kpiService) monthIncome(ctx context.Context, key domain.MonthKey) (decimal.Decimal, error) {
	accounts, err := s.accountsByID(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	period := domain.DateRange{
		From: time.Date(key.Year, time.Month(key.Month), 1, 0, 0, 0, 0, time.UTC),
		To:   key.LastDay(),
	}
	total := decimal.Zero
	err = s.eachLine(ctx, domain.LineFilter{Range: period}, func(line domain.PostedLine) error {
		if accounts[line.AccountID].AccountType == domain.Income {
			total = total.Add(line.Credit.Sub(line.Debit))
		}
		return nil
	})
	return total, err
}

func (s *kpiService) GetKPI(ctx context.Context, year, month int) (*domain.MonthlyKPI, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}
	kpi, err := s.kpiRepo.FindKPI(ctx, year, month)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find KPI", slog.Int("year", year), slog.Int("month", month))
		}
		return nil, err
	}
	return kpi, nil
}

func (s *kpiService) ListKPIs(ctx context.Context) ([]domain.MonthlyKPI, error) {
	kpis, err := s.kpiRepo.ListKPIs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list KPIs")
		return nil, err
	}
	return kpis, nil
}
