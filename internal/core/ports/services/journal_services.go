package services

import (
	"context"
	"iter"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
)

// JournalReaderSvc defines read operations for the journal book
type JournalReaderSvc interface {
	// GetEntryByID retrieves an entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries pages through entry headers newest first.
	ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// IterateLines returns a lazy, restartable sequence of posted lines
	// ordered by (date, entry id, position).
	IterateLines(ctx context.Context, filter domain.LineFilter) iter.Seq2[domain.PostedLine, error]
}

// JournalWriterSvc defines write operations for the journal book
type JournalWriterSvc interface {
	// PostEntry validates and atomically persists a balanced entry.
	PostEntry(ctx context.Context, input domain.PostEntryInput, actor string) (*domain.JournalEntry, error)

	// DeleteEntry removes an entry and all of its lines.
	DeleteEntry(ctx context.Context, entryID string, actor string) error
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
