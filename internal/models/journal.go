package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the persisted row of the journal_entries table.
type JournalEntry struct {
	EntryID     string    `db:"entry_id"`
	EntryDate   time.Time `db:"entry_date"`
	Description string    `db:"description"`
	Journal     string    `db:"journal"`
	Scheme      string    `db:"scheme"`
	AuditFields
}

// JournalLine is the persisted row of the journal_lines table.
type JournalLine struct {
	LineID    string          `db:"line_id"`
	EntryID   string          `db:"entry_id"`
	AccountID string          `db:"account_id"`
	Position  int             `db:"position"`
	Debit     decimal.Decimal `db:"debit"`
	Credit    decimal.Decimal `db:"credit"`
}

// PostedLine is a journal_lines row joined with its entry header.
type PostedLine struct {
	JournalLine
	EntryDate   time.Time `db:"entry_date"`
	Description string    `db:"description"`
}
