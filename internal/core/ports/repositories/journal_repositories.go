package repositories

import (
	"context"
	"iter"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
)

// JournalReader defines read operations for journal entries and lines.
type JournalReader interface {
	// FindEntryByID retrieves an entry together with its lines ordered by position.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries returns entry headers newest first, starting after the cursor when nextToken is set.
	ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// IterateLines streams posted lines ordered by (entry date, entry id, position).
	// Each range over the returned sequence runs a fresh query.
	IterateLines(ctx context.Context, filter domain.LineFilter) iter.Seq2[domain.PostedLine, error]
}

// JournalWriter defines write operations for journal entries.
type JournalWriter interface {
	// SaveEntry persists the entry header and all lines atomically.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// DeleteEntry removes the entry and its lines atomically.
	DeleteEntry(ctx context.Context, entryID string) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
