package mapping

import (
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/models"
)

// ToModelJournalEntry converts a domain entry header to its row.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		EntryDate:   d.EntryDate,
		Description: d.Description,
		Journal:     d.Journal,
		Scheme:      d.Scheme,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts an entry row to a domain entry without lines.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryDate:   m.EntryDate,
		Description: m.Description,
		Journal:     m.Journal,
		Scheme:      m.Scheme,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain line to its row.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:    d.LineID,
		EntryID:   d.EntryID,
		AccountID: d.AccountID,
		Position:  d.Position,
		Debit:     d.Debit,
		Credit:    d.Credit,
	}
}

// ToDomainJournalLine converts a line row to a domain line.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:    m.LineID,
		EntryID:   m.EntryID,
		AccountID: m.AccountID,
		Position:  m.Position,
		Debit:     m.Debit,
		Credit:    m.Credit,
	}
}

// ToDomainPostedLine converts a joined line row to a domain posted line.
func ToDomainPostedLine(m models.PostedLine) domain.PostedLine {
	return domain.PostedLine{
		JournalLine: ToDomainJournalLine(m.JournalLine),
		EntryDate:   m.EntryDate,
		Description: m.Description,
	}
}
