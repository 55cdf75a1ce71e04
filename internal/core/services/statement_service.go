package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/platform/metrics"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils/accounting"
)

// statementService derives ledgers and statements from posted lines.
// Nothing is cached; every call re-reads the store.
type statementService struct {
	BaseService
	ledgerReader
}

// NewStatementService creates a new statement engine.
func NewStatementService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader) portssvc.StatementSvc {
	return &statementService{ledgerReader: ledgerReader{accountRepo: accountRepo, journalRepo: journalRepo}}
}

var _ portssvc.StatementSvc = (*statementService)(nil)

// accountTotals accumulates debit and credit sums per account.
type accountTotals struct {
	debit, credit decimal.Decimal
}

func (s *statementService) totalsByAccount(ctx context.Context, period domain.DateRange) (map[string]domain.Account, map[string]*accountTotals, error) {
	accounts, err := s.accountsByID(ctx)
	if err != nil {
		return nil, nil, err
	}
	totals := make(map[string]*accountTotals)
	err = s.eachLine(ctx, domain.LineFilter{Range: period}, func(line domain.PostedLine) error {
		t, ok := totals[line.AccountID]
		if !ok {
			t = &accountTotals{debit: decimal.Zero, credit: decimal.Zero}
			totals[line.AccountID] = t
		}
		t.debit = t.debit.Add(line.Debit)
		t.credit = t.credit.Add(line.Credit)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return accounts, totals, nil
}

// sortedByCode returns the ids of totals ordered by account code.
func sortedByCode(accounts map[string]domain.Account, totals map[string]*accountTotals) []string {
	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		return cmp.Or(cmp.Compare(accounts[a].Code, accounts[b].Code), cmp.Compare(a, b))
	})
	return ids
}

func (s *statementService) LedgerForAccount(ctx context.Context, accountID string) (*domain.AccountLedger, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load account for ledger", slog.String("account_id", accountID))
		}
		return nil, err
	}

	ledger := &domain.AccountLedger{Account: *account, Rows: []domain.LedgerRow{}, Balance: decimal.Zero}
	err = s.eachLine(ctx, domain.LineFilter{AccountID: accountID}, func(line domain.PostedLine) error {
		ledger.Balance = ledger.Balance.Add(line.Debit).Sub(line.Credit)
		ledger.Rows = append(ledger.Rows, domain.LedgerRow{
			EntryID:        line.EntryID,
			Date:           line.EntryDate,
			Description:    line.Description,
			Debit:          line.Debit,
			Credit:         line.Credit,
			RunningBalance: ledger.Balance,
		})
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to build account ledger", slog.String("account_id", accountID))
		return nil, err
	}
	metrics.StatementsComputed.WithLabelValues("ledger").Inc()
	return ledger, nil
}

func (s *statementService) TrialBalance(ctx context.Context, period domain.DateRange) (*domain.TrialBalance, error) {
	accounts, totals, err := s.totalsByAccount(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute trial balance")
		return nil, err
	}

	tb := &domain.TrialBalance{Rows: []domain.TrialBalanceRow{}, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for _, id := range sortedByCode(accounts, totals) {
		account, ok := accounts[id]
		if !ok {
			return nil, fmt.Errorf("trial balance: line references missing account %s", id)
		}
		t := totals[id]
		tb.Rows = append(tb.Rows, domain.TrialBalanceRow{
			Account:     account,
			DebitTotal:  t.debit,
			CreditTotal: t.credit,
			Balance:     t.debit.Sub(t.credit),
		})
		tb.TotalDebit = tb.TotalDebit.Add(t.debit)
		tb.TotalCredit = tb.TotalCredit.Add(t.credit)
	}
	metrics.StatementsComputed.WithLabelValues("trial_balance").Inc()
	return tb, nil
}

func incomeStatementFrom(accounts map[string]domain.Account, totals map[string]*accountTotals) *domain.IncomeStatement {
	is := &domain.IncomeStatement{
		Income:       []domain.AccountAmount{},
		Expenses:     []domain.AccountAmount{},
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, id := range sortedByCode(accounts, totals) {
		account, t := accounts[id], totals[id]
		switch account.AccountType {
		case domain.Income:
			amount := accounting.NaturalAmount(domain.Income, t.debit, t.credit)
			is.Income = append(is.Income, domain.AccountAmount{AccountID: id, Label: account.Label(), Amount: amount})
			is.TotalIncome = is.TotalIncome.Add(amount)
		case domain.Expense:
			amount := accounting.NaturalAmount(domain.Expense, t.debit, t.credit)
			is.Expenses = append(is.Expenses, domain.AccountAmount{AccountID: id, Label: account.Label(), Amount: amount})
			is.TotalExpense = is.TotalExpense.Add(amount)
		}
	}
	is.NetIncome = is.TotalIncome.Sub(is.TotalExpense)
	return is
}

func (s *statementService) IncomeStatement(ctx context.Context, period domain.DateRange) (*domain.IncomeStatement, error) {
	accounts, totals, err := s.totalsByAccount(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute income statement")
		return nil, err
	}
	metrics.StatementsComputed.WithLabelValues("income_statement").Inc()
	return incomeStatementFrom(accounts, totals), nil
}

// BalanceSheet classifies each account by the first matching rule: asset,
// then liability, then equity (by type or by the equity flag).
func (s *statementService) BalanceSheet(ctx context.Context, period domain.DateRange) (*domain.BalanceSheet, error) {
	accounts, totals, err := s.totalsByAccount(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute balance sheet")
		return nil, err
	}

	bs := &domain.BalanceSheet{
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		AssetsTotal:      decimal.Zero,
		LiabilitiesTotal: decimal.Zero,
		EquityTotal:      decimal.Zero,
		CashBalance:      decimal.Zero,
	}
	for _, id := range sortedByCode(accounts, totals) {
		account, t := accounts[id], totals[id]
		switch {
		case account.AccountType == domain.Asset:
			amount := accounting.NaturalAmount(domain.Asset, t.debit, t.credit)
			bs.Assets = append(bs.Assets, domain.AccountAmount{AccountID: id, Label: account.Label(), Amount: amount})
			bs.AssetsTotal = bs.AssetsTotal.Add(amount)
			if account.IsCash {
				bs.CashBalance = bs.CashBalance.Add(amount)
			}
		case account.AccountType == domain.Liability:
			amount := accounting.NaturalAmount(domain.Liability, t.debit, t.credit)
			bs.Liabilities = append(bs.Liabilities, domain.AccountAmount{AccountID: id, Label: account.Label(), Amount: amount})
			bs.LiabilitiesTotal = bs.LiabilitiesTotal.Add(amount)
		case account.AccountType == domain.Equity || account.IsEquity:
			amount := accounting.NaturalAmount(domain.Equity, t.debit, t.credit)
			bs.Equity = append(bs.Equity, domain.AccountAmount{AccountID: id, Label: account.Label(), Amount: amount})
			bs.EquityTotal = bs.EquityTotal.Add(amount)
		}
	}

	bs.NetIncome = incomeStatementFrom(accounts, totals).NetIncome
	bs.Discrepancy = bs.AssetsTotal.Sub(bs.LiabilitiesTotal.Add(bs.EquityTotal).Add(bs.NetIncome))
	if !bs.Balanced() {
		s.LogDebug(ctx, "Balance sheet does not balance",
			slog.String("discrepancy", bs.Discrepancy.StringFixed(2)))
	}
	metrics.StatementsComputed.WithLabelValues("balance_sheet").Inc()
	return bs, nil
}
