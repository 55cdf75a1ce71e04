package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/services"
)

// ReportingServiceTestSuite drives the derived-report services from an
// in-memory book served by the repository mocks.
type ReportingServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	mockAccountRepo *MockAccountRepository
	mockJournalRepo *MockJournalRepository
	mockBudgetRepo  *MockBudgetRepository
	mockKPIRepo     *MockKPIRepository

	statement portssvc.StatementSvc
	liquidity portssvc.LiquiditySvc
	budget    portssvc.BudgetSvcFacade
	kpi       portssvc.KPISvcFacade

	accounts []domain.Account
	lines    []domain.PostedLine
	seq      int
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockKPIRepo = new(MockKPIRepository)

	suite.statement = services.NewStatementService(suite.mockAccountRepo, suite.mockJournalRepo)
	suite.liquidity = services.NewLiquidityService(suite.mockAccountRepo, suite.mockJournalRepo)
	suite.budget = services.NewBudgetService(suite.mockBudgetRepo, suite.mockAccountRepo, suite.mockJournalRepo)
	suite.kpi = services.NewKPIService(suite.mockKPIRepo, suite.mockAccountRepo, suite.mockJournalRepo)

	suite.accounts = []domain.Account{
		{AccountID: "cash", Code: "572", Name: "Bancos", AccountType: domain.Asset, IsCash: true},
		{AccountID: "receivable", Code: "430", Name: "Clientes", AccountType: domain.Asset},
		{AccountID: "loan", Code: "170", Name: "Deudas a largo plazo", AccountType: domain.Liability},
		{AccountID: "capital", Code: "100", Name: "Capital social", AccountType: domain.Equity},
		{AccountID: "sales", Code: "700", Name: "Ventas", AccountType: domain.Income},
		{AccountID: "rent", Code: "621", Name: "Arrendamientos", AccountType: domain.Expense},
	}
	suite.lines = nil
	suite.seq = 0
}

func TestReportingServices(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

// book wires the mocks to the current accounts and lines.
func (suite *ReportingServiceTestSuite) book() {
	suite.mockAccountRepo.On("ListAccounts", mock.Anything).Return(suite.accounts, nil)
	suite.mockJournalRepo.On("IterateLines", mock.Anything, mock.Anything).Return(suite.lines, nil)
}

// post appends a two-line entry debiting one account and crediting another.
func (suite *ReportingServiceTestSuite) post(date, debitAcc, creditAcc, amount string) {
	suite.seq++
	d, err := time.Parse("2006-01-02", date)
	suite.Require().NoError(err)
	amt := decimal.RequireFromString(amount)
	entryID := "entry-" + string(rune('a'+suite.seq))
	suite.lines = append(suite.lines,
		domain.PostedLine{JournalLine: domain.JournalLine{EntryID: entryID, AccountID: debitAcc, Position: 0, Debit: amt, Credit: decimal.Zero}, EntryDate: d, Description: "debit " + date},
		domain.PostedLine{JournalLine: domain.JournalLine{EntryID: entryID, AccountID: creditAcc, Position: 1, Debit: decimal.Zero, Credit: amt}, EntryDate: d, Description: "credit " + date},
	)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (suite *ReportingServiceTestSuite) TestLedgerForAccount_RunningBalances() {
	suite.post("2025-01-15", "cash", "sales", "250")
	suite.book()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, "cash").Return(&suite.accounts[0], nil)
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, "sales").Return(&suite.accounts[4], nil)

	cash, err := suite.statement.LedgerForAccount(suite.ctx, "cash")
	suite.Require().NoError(err)
	suite.Require().Len(cash.Rows, 1)
	suite.True(cash.Rows[0].Debit.Equal(dec("250")))
	suite.True(cash.Rows[0].RunningBalance.Equal(dec("250")))

	sales, err := suite.statement.LedgerForAccount(suite.ctx, "sales")
	suite.Require().NoError(err)
	suite.Require().Len(sales.Rows, 1)
	suite.True(sales.Rows[0].Credit.Equal(dec("250")))
	suite.True(sales.Rows[0].RunningBalance.Equal(dec("-250")))

	again, err := suite.statement.LedgerForAccount(suite.ctx, "cash")
	suite.Require().NoError(err)
	suite.Equal(cash, again)
}

func (suite *ReportingServiceTestSuite) TestLedgerForAccount_NotFound() {
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := suite.statement.LedgerForAccount(suite.ctx, "ghost")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_MatchesLedgers() {
	suite.post("2025-01-02", "cash", "capital", "10000")
	suite.post("2025-01-10", "rent", "cash", "1200")
	suite.post("2025-02-01", "receivable", "sales", "3000")
	suite.post("2025-02-20", "cash", "receivable", "1000")
	suite.book()
	for i := range suite.accounts {
		suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.accounts[i].AccountID).Return(&suite.accounts[i], nil)
	}

	tb, err := suite.statement.TrialBalance(suite.ctx, domain.DateRange{})
	suite.Require().NoError(err)
	suite.True(tb.TotalDebit.Equal(tb.TotalCredit))
	suite.True(tb.TotalDebit.Equal(dec("15200")))

	var codes []string
	for _, row := range tb.Rows {
		codes = append(codes, row.Account.Code)
		ledger, err := suite.statement.LedgerForAccount(suite.ctx, row.Account.AccountID)
		suite.Require().NoError(err)
		last := ledger.Rows[len(ledger.Rows)-1].RunningBalance
		suite.True(row.Balance.Equal(last), "account %s: %s != %s", row.Account.Code, row.Balance, last)
	}
	assert.Equal(suite.T(), []string{"100", "430", "572", "621", "700"}, codes)

	feb, err := suite.statement.TrialBalance(suite.ctx, domain.DateRange{
		From: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
	})
	suite.Require().NoError(err)
	suite.Len(feb.Rows, 3)
	suite.True(feb.TotalDebit.Equal(dec("4000")))
}

func (suite *ReportingServiceTestSuite) TestIncomeAndBalanceSheet() {
	suite.post("2025-01-02", "cash", "capital", "10000")
	suite.post("2025-01-05", "cash", "loan", "5000")
	suite.post("2025-01-10", "rent", "cash", "1200")
	suite.post("2025-01-20", "receivable", "sales", "3000")
	suite.book()

	is, err := suite.statement.IncomeStatement(suite.ctx, domain.DateRange{})
	suite.Require().NoError(err)
	suite.True(is.TotalIncome.Equal(dec("3000")))
	suite.True(is.TotalExpense.Equal(dec("1200")))
	suite.True(is.NetIncome.Equal(dec("1800")))
	suite.Require().Len(is.Income, 1)
	suite.Equal("700 - Ventas", is.Income[0].Label)

	bs, err := suite.statement.BalanceSheet(suite.ctx, domain.DateRange{})
	suite.Require().NoError(err)
	suite.True(bs.AssetsTotal.Equal(dec("16800")), bs.AssetsTotal.String())
	suite.True(bs.CashBalance.Equal(dec("13800")))
	suite.True(bs.LiabilitiesTotal.Equal(dec("5000")))
	suite.True(bs.EquityTotal.Equal(dec("10000")))
	suite.Require().Len(bs.Equity, 1)
	suite.Equal("100 - Capital social", bs.Equity[0].Label)
	suite.True(bs.NetIncome.Equal(dec("1800")))
	suite.True(bs.Balanced(), bs.Discrepancy.String())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_EquityFlagAndDiscrepancy() {
	suite.accounts = append(suite.accounts, domain.Account{
		AccountID: "reserve", Code: "112", Name: "Reserva legal", AccountType: domain.Income, IsEquity: true,
	})
	suite.post("2025-01-02", "cash", "reserve", "400")
	suite.book()

	bs, err := suite.statement.BalanceSheet(suite.ctx, domain.DateRange{})
	suite.Require().NoError(err)
	suite.Require().Len(bs.Equity, 1)
	suite.Equal("112 - Reserva legal", bs.Equity[0].Label)
	// the flagged income account counts as equity and also as income
	suite.True(bs.NetIncome.Equal(dec("400")))
	suite.True(bs.Discrepancy.Equal(dec("-400")))
	suite.False(bs.Balanced())
}

func (suite *ReportingServiceTestSuite) TestStorageFailureSurfaces() {
	suite.mockAccountRepo.On("ListAccounts", mock.Anything).Return(suite.accounts, nil)
	storeErr := apperrors.NewAppError(500, "failed to iterate journal lines", assert.AnError)
	suite.mockJournalRepo.On("IterateLines", mock.Anything, mock.Anything).Return(nil, storeErr)

	_, err := suite.statement.TrialBalance(suite.ctx, domain.DateRange{})
	suite.ErrorIs(err, apperrors.ErrStorage)

	_, err = suite.liquidity.Report(suite.ctx, domain.DateRange{})
	suite.ErrorIs(err, apperrors.ErrStorage)
}

func (suite *ReportingServiceTestSuite) TestBurnRateAndRunway() {
	suite.post("2024-12-01", "cash", "capital", "10000")
	suite.post("2024-12-10", "rent", "cash", "9999")
	suite.post("2025-01-10", "rent", "cash", "1000")
	suite.post("2025-02-10", "rent", "cash", "1500")
	suite.post("2025-03-10", "rent", "cash", "2000")
	suite.post("2025-03-15", "cash", "loan", "8999")
	suite.book()

	burn, months, err := suite.liquidity.BurnRate(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("1500.00", burn.StringFixed(2))
	suite.Require().Len(months, 3)
	suite.Equal(domain.MonthKey{Year: 2025, Month: 1}, months[0].MonthKey)

	// cash: 10000 - 9999 - 1000 - 1500 - 2000 + 8999 = 4500
	runway, err := suite.liquidity.RunwayMonths(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().True(runway.Valid)
	suite.Equal("3.00", runway.Decimal.StringFixed(2))
}

func (suite *ReportingServiceTestSuite) TestRunway_UndefinedWithoutExpenses() {
	suite.post("2025-01-02", "cash", "capital", "1000")
	suite.book()

	report, err := suite.liquidity.Report(suite.ctx, domain.DateRange{})
	suite.Require().NoError(err)
	suite.True(report.BurnRate.IsZero())
	suite.Empty(report.BurnMonths)
	suite.False(report.RunwayMonths.Valid)
	suite.True(report.CashBalance.Equal(dec("1000")))
}

func (suite *ReportingServiceTestSuite) TestRunway_NegativeCash() {
	suite.post("2025-01-10", "rent", "cash", "500")
	suite.book()

	runway, err := suite.liquidity.RunwayMonths(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().True(runway.Valid)
	suite.True(runway.Decimal.Equal(dec("-1")))
}

func (suite *ReportingServiceTestSuite) TestBudgetVariance() {
	suite.post("2025-02-10", "rent", "cash", "700")
	suite.post("2025-03-05", "rent", "cash", "1500")
	suite.post("2025-03-25", "rent", "cash", "500")
	suite.post("2024-03-25", "rent", "cash", "900")
	suite.book()

	march := 3
	monthly := domain.Budget{BudgetID: "b1", Name: "Marzo", Year: 2025, Month: &march, ExpenseTarget: dec("1800")}
	v, err := suite.budget.Evaluate(suite.ctx, monthly)
	suite.Require().NoError(err)
	suite.Equal("2000.00", v.ActualExpense.StringFixed(2))
	suite.Equal("200.00", v.Variance.StringFixed(2))

	annual := domain.Budget{BudgetID: "b2", Name: "2025", Year: 2025, ExpenseTarget: dec("5000")}
	suite.mockBudgetRepo.On("ListBudgets", mock.Anything).Return([]domain.Budget{monthly, annual}, nil).Once()
	all, err := suite.budget.EvaluateAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("2700.00", all[1].ActualExpense.StringFixed(2))
	suite.Equal("-2300.00", all[1].Variance.StringFixed(2))
}

func (suite *ReportingServiceTestSuite) TestCreateBudget_Validation() {
	thirteen := 13
	cases := map[string]struct {
		input domain.CreateBudgetInput
		want  error
	}{
		"blank name":      {domain.CreateBudgetInput{Name: " ", Year: 2025}, apperrors.ErrValidation},
		"year zero":       {domain.CreateBudgetInput{Name: "x", Year: 0}, apperrors.ErrValidation},
		"month 13":        {domain.CreateBudgetInput{Name: "x", Year: 2025, Month: &thirteen}, apperrors.ErrValidation},
		"negative target": {domain.CreateBudgetInput{Name: "x", Year: 2025, ExpenseTarget: dec("-1")}, apperrors.ErrInvalidAmount},
	}
	for name, tc := range cases {
		suite.Run(name, func() {
			_, err := suite.budget.CreateBudget(suite.ctx, tc.input, "actor")
			suite.ErrorIs(err, tc.want)
		})
	}
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)

	suite.mockBudgetRepo.On("SaveBudget", mock.Anything, mock.AnythingOfType("domain.Budget")).Return(nil).Once()
	b, err := suite.budget.CreateBudget(suite.ctx, domain.CreateBudgetInput{Name: " Q1 ", Year: 2025, ExpenseTarget: dec("1800")}, "actor")
	suite.Require().NoError(err)
	suite.Equal("Q1", b.Name)
	suite.True(b.IsAnnual())
}

func (suite *ReportingServiceTestSuite) TestRecalculateKPI() {
	suite.post("2025-01-02", "cash", "capital", "10000")
	suite.post("2025-01-10", "rent", "cash", "1000")
	suite.post("2025-02-10", "rent", "cash", "2000")
	suite.post("2025-02-20", "cash", "sales", "600")
	suite.post("2025-04-10", "rent", "cash", "5000")
	suite.book()

	var stored domain.MonthlyKPI
	suite.mockKPIRepo.On("UpsertKPI", mock.Anything, mock.AnythingOfType("domain.MonthlyKPI")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(domain.MonthlyKPI) }).
		Return(nil).Once()

	notes := " cierre febrero "
	kpi, err := suite.kpi.Recalculate(suite.ctx, 2025, 2, &notes, "cfo")
	suite.Require().NoError(err)

	// through February: burn (1000+2000)/2, cash 10000-1000-2000+600
	suite.Equal("1500.00", kpi.BurnRate.StringFixed(2))
	suite.Require().True(kpi.RunwayMonths.Valid)
	suite.Equal("5.07", kpi.RunwayMonths.Decimal.StringFixed(2))
	suite.Equal("600.00", kpi.RecurringRevenue.StringFixed(2))
	suite.Equal("cfo", kpi.CalculatedBy)
	suite.Require().NotNil(kpi.Notes)
	suite.Equal("cierre febrero", *kpi.Notes)
	suite.Equal(*kpi, stored)

	_, err = suite.kpi.Recalculate(suite.ctx, 2025, 13, nil, "cfo")
	suite.ErrorIs(err, apperrors.ErrValidation)
	_, err = suite.kpi.Recalculate(suite.ctx, 2025, 2, nil, "")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockKPIRepo.AssertExpectations(suite.T())
}
