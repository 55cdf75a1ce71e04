package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultJournal is the book an entry is posted to when none is named.
const DefaultJournal = "GENERAL"

// JournalEntry is the header of a double-entry posting. It owns its lines.
type JournalEntry struct {
	EntryID     string        `json:"entryID"`
	EntryDate   time.Time     `json:"entryDate"`
	Description string        `json:"description"`
	Journal     string        `json:"journal"`
	Scheme      string        `json:"scheme"`
	Lines       []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// TotalDebit sums the debit side of the entry.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of the entry.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// JournalLine is one debit or credit leg of an entry.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Position  int             `json:"position"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// Net returns debit minus credit.
func (l JournalLine) Net() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}

// PostedLine is a journal line joined with the header fields of its entry.
type PostedLine struct {
	JournalLine
	EntryDate   time.Time
	Description string
}

// LineFilter narrows a line iteration. Empty fields do not filter.
type LineFilter struct {
	AccountID string
	Range     DateRange
}

// PostEntryInput carries the values needed to post an entry.
type PostEntryInput struct {
	Date        time.Time
	Description string
	Journal     string
	Scheme      string
	Lines       []LineInput
}

// LineInput is a single requested line of an entry.
type LineInput struct {
	AccountID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}
