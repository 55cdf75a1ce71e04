package models

// Account is the persisted row of the accounts table.
type Account struct {
	AccountID   string `db:"account_id"`
	Code        string `db:"code"`
	Name        string `db:"name"`
	AccountType string `db:"account_type"`
	Scheme      string `db:"scheme"`
	IsCash      bool   `db:"is_cash"`
	IsEquity    bool   `db:"is_equity"`
	AuditFields
}
