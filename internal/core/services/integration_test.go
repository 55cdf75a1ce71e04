package services_test

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/repositories/database/sqlite"
	"github.com/techcarewavehealth-wq/carewaveerp/pkg/database"
)

// LedgerIntegrationTestSuite runs the services on a fresh SQLite file per test.
type LedgerIntegrationTestSuite struct {
	suite.Suite
	ctx context.Context
	db  *sql.DB
	svc *portssvc.ServiceContainer
}

func (suite *LedgerIntegrationTestSuite) SetupTest() {
	suite.ctx = context.Background()
	path := filepath.Join(suite.T().TempDir(), "ledger.db")
	suite.Require().NoError(database.RunMigrations(database.DriverSQLite, database.SQLiteDSN(path), database.Up, slog.New(slog.DiscardHandler)))
	db, err := database.NewSQLiteDB(suite.ctx, path)
	suite.Require().NoError(err)
	suite.db = db
	suite.svc = services.NewServiceContainer(sqlite.NewRepositoryProvider(db))
}

func (suite *LedgerIntegrationTestSuite) TearDownTest() {
	suite.db.Close()
}

func TestLedgerIntegration(t *testing.T) {
	suite.Run(t, new(LedgerIntegrationTestSuite))
}

func (suite *LedgerIntegrationTestSuite) account(code, name string, t domain.AccountType, isCash bool) *domain.Account {
	a, err := suite.svc.Account.CreateAccount(suite.ctx, domain.CreateAccountInput{
		Code: code, Name: name, AccountType: t, IsCash: isCash,
	}, "tester")
	suite.Require().NoError(err)
	return a
}

func (suite *LedgerIntegrationTestSuite) post(date string, debit, credit *domain.Account, amount string) *domain.JournalEntry {
	d, err := time.Parse("2006-01-02", date)
	suite.Require().NoError(err)
	amt := decimal.RequireFromString(amount)
	e, err := suite.svc.Journal.PostEntry(suite.ctx, domain.PostEntryInput{
		Date:        d,
		Description: "asiento " + date,
		Lines: []domain.LineInput{
			{AccountID: debit.AccountID, Debit: amt},
			{AccountID: credit.AccountID, Credit: amt},
		},
	}, "tester")
	suite.Require().NoError(err)
	return e
}

func (suite *LedgerIntegrationTestSuite) TestDuplicateCodeRejected() {
	suite.account("572", "Bancos", domain.Asset, true)
	_, err := suite.svc.Account.CreateAccount(suite.ctx, domain.CreateAccountInput{
		Code: "572", Name: "Otro", AccountType: domain.Asset,
	}, "tester")
	suite.ErrorIs(err, apperrors.ErrDuplicateCode)
}

func (suite *LedgerIntegrationTestSuite) TestLedgerAfterSinglePosting() {
	a := suite.account("572", "Bancos", domain.Asset, true)
	b := suite.account("700", "Ventas", domain.Income, false)
	suite.post("2025-01-15", a, b, "250")

	la, err := suite.svc.Statement.LedgerForAccount(suite.ctx, a.AccountID)
	suite.Require().NoError(err)
	suite.Require().Len(la.Rows, 1)
	suite.Equal("250.00", la.Rows[0].Debit.StringFixed(2))
	suite.Equal("250.00", la.Rows[0].RunningBalance.StringFixed(2))

	lb, err := suite.svc.Statement.LedgerForAccount(suite.ctx, b.AccountID)
	suite.Require().NoError(err)
	suite.Require().Len(lb.Rows, 1)
	suite.Equal("250.00", lb.Rows[0].Credit.StringFixed(2))
	suite.Equal("-250.00", lb.Rows[0].RunningBalance.StringFixed(2))
}

func (suite *LedgerIntegrationTestSuite) TestDeleteAccountInUseAndDeleteEntry() {
	a := suite.account("572", "Bancos", domain.Asset, true)
	b := suite.account("700", "Ventas", domain.Income, false)
	e := suite.post("2025-01-15", a, b, "100")

	suite.ErrorIs(suite.svc.Account.DeleteAccount(suite.ctx, a.AccountID, "tester"), apperrors.ErrAccountInUse)

	suite.Require().NoError(suite.svc.Journal.DeleteEntry(suite.ctx, e.EntryID, "tester"))
	ledger, err := suite.svc.Statement.LedgerForAccount(suite.ctx, a.AccountID)
	suite.Require().NoError(err)
	suite.Empty(ledger.Rows)
	suite.True(ledger.Balance.IsZero())

	suite.NoError(suite.svc.Account.DeleteAccount(suite.ctx, a.AccountID, "tester"))
	_, err = suite.svc.Account.GetAccountByID(suite.ctx, a.AccountID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerIntegrationTestSuite) TestRejectedEntryLeavesNoTrace() {
	a := suite.account("572", "Bancos", domain.Asset, true)
	b := suite.account("700", "Ventas", domain.Income, false)
	_, err := suite.svc.Journal.PostEntry(suite.ctx, domain.PostEntryInput{
		Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Description: "descuadrado",
		Lines: []domain.LineInput{
			{AccountID: a.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: b.AccountID, Credit: decimal.NewFromInt(90)},
		},
	}, "tester")
	suite.ErrorIs(err, apperrors.ErrUnbalancedEntry)

	entries, next, err := suite.svc.Journal.ListEntries(suite.ctx, 10, nil)
	suite.Require().NoError(err)
	suite.Empty(entries)
	suite.Nil(next)
}

func (suite *LedgerIntegrationTestSuite) TestTrialBalanceMatchesLedgers() {
	cash := suite.account("572", "Bancos", domain.Asset, true)
	capital := suite.account("100", "Capital social", domain.Equity, false)
	sales := suite.account("700", "Ventas", domain.Income, false)
	rent := suite.account("621", "Arrendamientos", domain.Expense, false)
	suite.post("2025-01-02", cash, capital, "10000")
	suite.post("2025-01-10", rent, cash, "1200.50")
	suite.post("2025-02-03", cash, sales, "3000.25")

	tb, err := suite.svc.Statement.TrialBalance(suite.ctx, domain.DateRange{})
	suite.Require().NoError(err)
	suite.True(tb.TotalDebit.Equal(tb.TotalCredit))
	for _, row := range tb.Rows {
		ledger, err := suite.svc.Statement.LedgerForAccount(suite.ctx, row.Account.AccountID)
		suite.Require().NoError(err)
		suite.True(row.Balance.Equal(ledger.Balance), "account %s", row.Account.Code)
		suite.True(ledger.Balance.Equal(ledger.Rows[len(ledger.Rows)-1].RunningBalance))
	}

	bs, err := suite.svc.Statement.BalanceSheet(suite.ctx, domain.DateRange{})
	suite.Require().NoError(err)
	suite.True(bs.Balanced(), bs.Discrepancy.String())
	suite.Equal("11799.75", bs.CashBalance.StringFixed(2))
}

func (suite *LedgerIntegrationTestSuite) TestLiquidityBudgetAndKPI() {
	cash := suite.account("572", "Bancos", domain.Asset, true)
	capital := suite.account("100", "Capital social", domain.Equity, false)
	rent := suite.account("621", "Arrendamientos", domain.Expense, false)
	suite.post("2025-01-01", cash, capital, "9000")
	suite.post("2025-01-10", rent, cash, "1000")
	suite.post("2025-02-10", rent, cash, "1500")
	suite.post("2025-03-10", rent, cash, "2000")

	report, err := suite.svc.Liquidity.Report(suite.ctx, domain.DateRange{})
	suite.Require().NoError(err)
	suite.Equal("1500.00", report.BurnRate.StringFixed(2))
	suite.Equal("4500.00", report.CashBalance.StringFixed(2))
	suite.Require().True(report.RunwayMonths.Valid)
	suite.Equal("3.00", report.RunwayMonths.Decimal.StringFixed(2))

	march := 3
	budget, err := suite.svc.Budget.CreateBudget(suite.ctx, domain.CreateBudgetInput{
		Name: "Marzo", Year: 2025, Month: &march, ExpenseTarget: decimal.NewFromInt(1800),
	}, "tester")
	suite.Require().NoError(err)
	v, err := suite.svc.Budget.EvaluateByID(suite.ctx, budget.BudgetID)
	suite.Require().NoError(err)
	suite.Equal("200.00", v.Variance.StringFixed(2))

	kpi, err := suite.svc.KPI.Recalculate(suite.ctx, 2025, 3, nil, "cfo")
	suite.Require().NoError(err)
	stored, err := suite.svc.KPI.GetKPI(suite.ctx, 2025, 3)
	suite.Require().NoError(err)
	suite.Equal(kpi.BurnRate.StringFixed(2), stored.BurnRate.StringFixed(2))
	suite.Equal("3.00", stored.RunwayMonths.Decimal.StringFixed(2))
	suite.Equal("cfo", stored.CalculatedBy)
}

func (suite *LedgerIntegrationTestSuite) TestCapTable() {
	_, err := suite.svc.Equity.CreateInvestor(suite.ctx, domain.CreateInvestorInput{
		Name: "Seed", OwnershipPercent: decimal.NewFromInt(10), InvestedAmount: decimal.NewFromInt(100000),
	}, "tester")
	suite.Require().NoError(err)

	table, err := suite.svc.Equity.CapTable(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(table.Investors, 1)
	suite.Equal("1000000.00", table.Investors[0].ImpliedValuation.Decimal.StringFixed(2))
	suite.False(table.OwnershipExceeded)
}
