package models

import "github.com/shopspring/decimal"

// Investor is the persisted row of the investors table.
type Investor struct {
	InvestorID       string          `db:"investor_id"`
	Name             string          `db:"name"`
	OwnershipPercent decimal.Decimal `db:"ownership_percent"`
	InvestedAmount   decimal.Decimal `db:"invested_amount"`
	Notes            *string         `db:"notes"`
	AuditFields
}
