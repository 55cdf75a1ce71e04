package domain

import "strings"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Income    AccountType = "income"
	Expense   AccountType = "expense"
)

// DefaultScheme is the accounting standard assumed when none is given.
const DefaultScheme = "ES"

// AccountTypes lists every valid account type.
var AccountTypes = []AccountType{Asset, Liability, Equity, Income, Expense}

// Valid reports whether t is one of the fixed account types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// ParseAccountType normalizes s into an AccountType. The result may be invalid.
func ParseAccountType(s string) AccountType {
	return AccountType(strings.ToLower(strings.TrimSpace(s)))
}

// Account represents a ledger account in the chart of accounts.
// Accounts are immutable once created.
type Account struct {
	AccountID   string      `json:"accountID"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Scheme      string      `json:"scheme"`
	IsCash      bool        `json:"isCash"`
	IsEquity    bool        `json:"isEquity"`
	AuditFields
}

// Label renders the account the way statements show it.
func (a Account) Label() string {
	return a.Code + " - " + a.Name
}

// CreateAccountInput carries the values needed to register an account.
type CreateAccountInput struct {
	Code        string
	Name        string
	AccountType AccountType
	Scheme      string
	IsCash      bool
	IsEquity    bool
}
