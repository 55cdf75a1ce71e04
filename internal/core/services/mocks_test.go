package services_test

import (
	"context"
	"iter"

	"github.com/stretchr/testify/mock"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		token := args.Get(1).(string)
		next = &token
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

// IterateLines yields the configured lines that pass filter, mimicking the
// store's WHERE clause. A non-nil error is yielded after the lines.
func (m *MockJournalRepository) IterateLines(ctx context.Context, filter domain.LineFilter) iter.Seq2[domain.PostedLine, error] {
	args := m.Called(ctx, filter)
	lines, _ := args.Get(0).([]domain.PostedLine)
	failure := args.Error(1)
	return func(yield func(domain.PostedLine, error) bool) {
		for _, l := range lines {
			if filter.AccountID != "" && l.AccountID != filter.AccountID {
				continue
			}
			if !filter.Range.Contains(l.EntryDate) {
				continue
			}
			if !yield(l, nil) {
				return
			}
		}
		if failure != nil {
			yield(domain.PostedLine{}, failure)
		}
	}
}

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

var _ portsrepo.BudgetRepositoryFacade = (*MockBudgetRepository)(nil)

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

// --- Mock InvestorRepository ---
type MockInvestorRepository struct {
	mock.Mock
}

var _ portsrepo.InvestorRepositoryFacade = (*MockInvestorRepository)(nil)

func (m *MockInvestorRepository) SaveInvestor(ctx context.Context, investor domain.Investor) error {
	args := m.Called(ctx, investor)
	return args.Error(0)
}

func (m *MockInvestorRepository) FindInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error) {
	args := m.Called(ctx, investorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investor), args.Error(1)
}

func (m *MockInvestorRepository) ListInvestors(ctx context.Context) ([]domain.Investor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investor), args.Error(1)
}

func (m *MockInvestorRepository) DeleteInvestor(ctx context.Context, investorID string) error {
	args := m.Called(ctx, investorID)
	return args.Error(0)
}

// --- Mock KPIRepository ---
type MockKPIRepository struct {
	mock.Mock
}

var _ portsrepo.KPIRepositoryFacade = (*MockKPIRepository)(nil)

func (m *MockKPIRepository) UpsertKPI(ctx context.Context, kpi domain.MonthlyKPI) error {
	args := m.Called(ctx, kpi)
	return args.Error(0)
}

func (m *MockKPIRepository) FindKPI(ctx context.Context, year, month int) (*domain.MonthlyKPI, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyKPI), args.Error(1)
}

func (m *MockKPIRepository) ListKPIs(ctx context.Context) ([]domain.MonthlyKPI, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyKPI), args.Error(1)
}
