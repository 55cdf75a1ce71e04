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
	"github.com/techcarewavehealth-wq/carewaveerp/internal/platform/metrics"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils/accounting"
)

// budgetService manages expense budgets and their variance against the books.
type budgetService struct {
	BaseService
	ledgerReader
	budgetRepo portsrepo.BudgetRepositoryFacade
}

// NewBudgetService creates a new budget variance calculator.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader) portssvc.BudgetSvcFacade {
	return &budgetService{
		ledgerReader: ledgerReader{accountRepo: accountRepo, journalRepo: journalRepo},
		budgetRepo:   budgetRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// budgetPeriod returns the calendar range a budget covers.
func budgetPeriod(b domain.Budget) domain.DateRange {
	if b.Month == nil {
		return domain.DateRange{
			From: time.Date(b.Year, time.January, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(b.Year, time.December, 31, 0, 0, 0, 0, time.UTC),
		}
	}
	k := domain.MonthKey{Year: b.Year, Month: *b.Month}
	return domain.DateRange{
		From: time.Date(b.Year, time.Month(*b.Month), 1, 0, 0, 0, 0, time.UTC),
		To:   k.LastDay(),
	}
}

func validateBudgetInput(input domain.CreateBudgetInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: budget name is required", apperrors.ErrValidation)
	}
	if input.Year < 1 || input.Year > 9999 {
		return fmt.Errorf("%w: year %d out of range", apperrors.ErrValidation, input.Year)
	}
	if input.Month != nil && (*input.Month < 1 || *input.Month > 12) {
		return fmt.Errorf("%w: month %d out of range", apperrors.ErrValidation, *input.Month)
	}
	return accounting.CheckAmount(input.ExpenseTarget)
}

func (s *budgetService) CreateBudget(ctx context.Context, input domain.CreateBudgetInput, actor string) (*domain.Budget, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validateBudgetInput(input); err != nil {
		return nil, err
	}

	budgetID, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to generate budget ID", err)
	}
	budget := domain.Budget{
		BudgetID:      budgetID.String(),
		Name:          strings.TrimSpace(input.Name),
		Year:          input.Year,
		Month:         input.Month,
		ExpenseTarget: input.ExpenseTarget,
		AuditFields:   domain.AuditFields{CreatedAt: time.Now().UTC(), CreatedBy: actor},
	}
	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("name", budget.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Budget created", slog.String("budget_id", budget.BudgetID), slog.Int("year", budget.Year), slog.String("actor", actor))
	return &budget, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget", slog.String("budget_id", budgetID))
		}
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, err
	}
	return budgets, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID string, actor string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", budgetID))
		}
		return err
	}
	s.LogInfo(ctx, "Budget deleted", slog.String("budget_id", budgetID), slog.String("actor", actor))
	return nil
}

// actualExpense sums debit minus credit over expense lines inside period.
func (s *budgetService) actualExpense(ctx context.Context, accounts map[string]domain.Account, period domain.DateRange) (decimal.Decimal, error) {
	total := decimal.Zero
	err := s.eachLine(ctx, domain.LineFilter{Range: period}, func(line domain.PostedLine) error {
		if accounts[line.AccountID].AccountType == domain.Expense {
			total = total.Add(line.Net())
		}
		return nil
	})
	return total, err
}

func (s *budgetService) evaluate(ctx context.Context, accounts map[string]domain.Account, budget domain.Budget) (*domain.BudgetVariance, error) {
	actual, err := s.actualExpense(ctx, accounts, budgetPeriod(budget))
	if err != nil {
		return nil, err
	}
	return &domain.BudgetVariance{
		Budget:        budget,
		ActualExpense: actual,
		Variance:      actual.Sub(budget.ExpenseTarget),
	}, nil
}

func (s *budgetService) Evaluate(ctx context.Context, budget domain.Budget) (*domain.BudgetVariance, error) {
	accounts, err := s.accountsByID(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for budget variance")
		return nil, err
	}
	v, err := s.evaluate(ctx, accounts, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to evaluate budget", slog.String("budget_id", budget.BudgetID))
		return nil, err
	}
	metrics.StatementsComputed.WithLabelValues("budget_variance").Inc()
	return v, nil
}

func (s *budgetService) EvaluateByID(ctx context.Context, budgetID string) (*domain.BudgetVariance, error) {
	budget, err := s.GetBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	return s.Evaluate(ctx, *budget)
}

func (s *budgetService) EvaluateAll(ctx context.Context) ([]domain.BudgetVariance, error) {
	budgets, err := s.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accountsByID(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for budget variance")
		return nil, err
	}
	out := make([]domain.BudgetVariance, 0, len(budgets))
	for _, b := range budgets {
		v, err := s.evaluate(ctx, accounts, b)
		if err != nil {
			s.LogError(ctx, err, "Failed to evaluate budget", slog.String("budget_id", b.BudgetID))
			return nil, err
		}
		out = append(out, *v)
	}
	metrics.StatementsComputed.WithLabelValues("budget_variance").Add(float64(len(out)))
	return out, nil
}
