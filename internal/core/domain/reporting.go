package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one line of an account ledger with its running balance.
type LedgerRow struct {
	EntryID        string          `json:"entryID"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// AccountLedger is the full movement history of one account.
type AccountLedger struct {
	Account Account         `json:"account"`
	Rows    []LedgerRow     `json:"rows"`
	Balance decimal.Decimal `json:"balance"`
}

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	Account     Account         `json:"account"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalance lists every account that has at least one line.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// AccountAmount represents an account with its net amount for financial reports
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Label     string          `json:"label"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomeStatement is the profit and loss report.
type IncomeStatement struct {
	Income       []AccountAmount `json:"income"`
	Expenses     []AccountAmount `json:"expenses"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetIncome    decimal.Decimal `json:"netIncome"`
}

// BalanceSheet is the statement of financial position.
// Discrepancy is assets minus liabilities, equity and net income; it is
// reported, not enforced.
type BalanceSheet struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	AssetsTotal      decimal.Decimal `json:"assetsTotal"`
	LiabilitiesTotal decimal.Decimal `json:"liabilitiesTotal"`
	EquityTotal      decimal.Decimal `json:"equityTotal"`
	CashBalance      decimal.Decimal `json:"cashBalance"`
	NetIncome        decimal.Decimal `json:"netIncome"`
	Discrepancy      decimal.Decimal `json:"discrepancy"`
}

// Balanced reports whether the accounting identity holds.
func (b BalanceSheet) Balanced() bool {
	return b.Discrepancy.IsZero()
}

// MonthlyAmount is an aggregate for a single calendar month.
type MonthlyAmount struct {
	MonthKey
	Amount decimal.Decimal `json:"amount"`
}

// LiquidityReport holds the burn rate and runway estimate.
type LiquidityReport struct {
	CashBalance  decimal.Decimal     `json:"cashBalance"`
	BurnRate     decimal.Decimal     `json:"burnRate"`
	BurnMonths   []MonthlyAmount     `json:"burnMonths"`
	RunwayMonths decimal.NullDecimal `json:"runwayMonths"`
}
