package dto

import (
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils"
)

// LedgerRowResponse is one movement of an account ledger.
type LedgerRowResponse struct {
	EntryID        string         `json:"entryID"`
	Date           string         `json:"date"`
	Description    string         `json:"description"`
	Debit          AmountResponse `json:"debit"`
	Credit         AmountResponse `json:"credit"`
	RunningBalance AmountResponse `json:"runningBalance"`
}

// LedgerResponse is the libro mayor of one account.
type LedgerResponse struct {
	Account AccountResponse     `json:"account"`
	Rows    []LedgerRowResponse `json:"rows"`
	Balance AmountResponse      `json:"balance"`
}

func ToLedgerResponse(l *domain.AccountLedger) LedgerResponse {
	rows := make([]LedgerRowResponse, len(l.Rows))
	for i, r := range l.Rows {
		rows[i] = LedgerRowResponse{
			EntryID:        r.EntryID,
			Date:           utils.FormatDate(r.Date),
			Description:    r.Description,
			Debit:          amount(r.Debit),
			Credit:         amount(r.Credit),
			RunningBalance: amount(r.RunningBalance),
		}
	}
	return LedgerResponse{Account: ToAccountResponse(&l.Account), Rows: rows, Balance: amount(l.Balance)}
}

// TrialBalanceRowResponse is one account line of the trial balance.
type TrialBalanceRowResponse struct {
	AccountID   string             `json:"accountID"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	DebitTotal  AmountResponse     `json:"debitTotal"`
	CreditTotal AmountResponse     `json:"creditTotal"`
	Balance     AmountResponse     `json:"balance"`
}

// TrialBalanceResponse is the sumas y saldos report.
type TrialBalanceResponse struct {
	Rows        []TrialBalanceRowResponse `json:"rows"`
	TotalDebit  AmountResponse            `json:"totalDebit"`
	TotalCredit AmountResponse            `json:"totalCredit"`
}

func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(tb.Rows))
	for i, r := range tb.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountID:   r.Account.AccountID,
			Code:        r.Account.Code,
			Name:        r.Account.Name,
			AccountType: r.Account.AccountType,
			DebitTotal:  amount(r.DebitTotal),
			CreditTotal: amount(r.CreditTotal),
			Balance:     amount(r.Balance),
		}
	}
	return TrialBalanceResponse{Rows: rows, TotalDebit: amount(tb.TotalDebit), TotalCredit: amount(tb.TotalCredit)}
}

// AccountAmountResponse is a labelled per-account figure.
type AccountAmountResponse struct {
	AccountID string         `json:"accountID"`
	Label     string         `json:"label"`
	Amount    AmountResponse `json:"amount"`
}

func toAccountAmounts(items []domain.AccountAmount) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(items))
	for i, it := range items {
		out[i] = AccountAmountResponse{AccountID: it.AccountID, Label: it.Label, Amount: amount(it.Amount)}
	}
	return out
}

// IncomeStatementResponse is the profit and loss report.
type IncomeStatementResponse struct {
	Income       []AccountAmountResponse `json:"income"`
	Expenses     []AccountAmountResponse `json:"expenses"`
	TotalIncome  AmountResponse          `json:"totalIncome"`
	TotalExpense AmountResponse          `json:"totalExpense"`
	NetIncome    AmountResponse          `json:"netIncome"`
}

func ToIncomeStatementResponse(is *domain.IncomeStatement) IncomeStatementResponse {
	return IncomeStatementResponse{
		Income:       toAccountAmounts(is.Income),
		Expenses:     toAccountAmounts(is.Expenses),
		TotalIncome:  amount(is.TotalIncome),
		TotalExpense: amount(is.TotalExpense),
		NetIncome:    amount(is.NetIncome),
	}
}

// BalanceSheetResponse is the statement of financial position.
type BalanceSheetResponse struct {
	Assets           []AccountAmountResponse `json:"assets"`
	Liabilities      []AccountAmountResponse `json:"liabilities"`
	Equity           []AccountAmountResponse `json:"equity"`
	AssetsTotal      AmountResponse          `json:"assetsTotal"`
	LiabilitiesTotal AmountResponse          `json:"liabilitiesTotal"`
	EquityTotal      AmountResponse          `json:"equityTotal"`
	CashBalance      AmountResponse          `json:"cashBalance"`
	NetIncome        AmountResponse          `json:"netIncome"`
	Discrepancy      AmountResponse          `json:"discrepancy"`
	Balanced         bool                    `json:"balanced"`
}

func ToBalanceSheetResponse(bs *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		Assets:           toAccountAmounts(bs.Assets),
		Liabilities:      toAccountAmounts(bs.Liabilities),
		Equity:           toAccountAmounts(bs.Equity),
		AssetsTotal:      amount(bs.AssetsTotal),
		LiabilitiesTotal: amount(bs.LiabilitiesTotal),
		EquityTotal:      amount(bs.EquityTotal),
		CashBalance:      amount(bs.CashBalance),
		NetIncome:        amount(bs.NetIncome),
		Discrepancy:      amount(bs.Discrepancy),
		Balanced:         bs.Balanced(),
	}
}

// LiquidityResponse carries burn and runway. RunwayMonths is null when burn is not positive.
type LiquidityResponse struct {
	CashBalance  AmountResponse        `json:"cashBalance"`
	BurnRate     AmountResponse        `json:"burnRate"`
	BurnMonths   []MonthAmountResponse `json:"burnMonths"`
	RunwayMonths *AmountResponse       `json:"runwayMonths"`
}

func ToLiquidityResponse(r *domain.LiquidityReport) LiquidityResponse {
	return LiquidityResponse{
		CashBalance:  amount(r.CashBalance),
		BurnRate:     amount(r.BurnRate),
		BurnMonths:   toMonthAmounts(r.BurnMonths),
		RunwayMonths: nullableAmount(r.RunwayMonths),
	}
}
