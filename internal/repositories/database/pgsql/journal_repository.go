package pgsql

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/models"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils/mapping"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = "entry_id, entry_date, description, journal, scheme, created_at, created_by"

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and lines.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(&m.EntryID, &m.EntryDate, &m.Description, &m.Journal, &m.Scheme, &m.CreatedAt, &m.CreatedBy)
	return m, err
}

// SaveEntry inserts the entry header and queues every line in one batch, all
// inside a single transaction.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	_, err = tx.Exec(ctx, `INSERT INTO journal_entries (`+entryColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		m.EntryID, m.EntryDate, m.Description, m.Journal, m.Scheme, m.CreatedAt, m.CreatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `INSERT INTO journal_lines (line_id, entry_id, account_id, position, debit, credit) VALUES ($1, $2, $3, $4, $5, $6);`
	for _, line := range entry.Lines {
		lm := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery, lm.LineID, lm.EntryID, lm.AccountID, lm.Position, lm.Debit, lm.Credit)
	}
	results := tx.SendBatch(ctx, batch)
	for range entry.Lines {
		if _, err := results.Exec(); err != nil {
			results.Close()
			if pgErrorCode(err) == pgForeignKeyViolation {
				return fmt.Errorf("%w: referenced by entry %s", apperrors.ErrUnknownAccount, m.EntryID)
			}
			return apperrors.NewAppError(500, "failed to insert journal line", err)
		}
	}
	if err := results.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close line batch", err)
	}

	return r.Commit(ctx, tx)
}

// DeleteEntry removes an entry; its lines go with it through ON DELETE CASCADE.
func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal entry", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves an entry with its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	m, err := scanEntry(r.Pool.QueryRow(ctx, `SELECT `+entryColumns+` FROM journal_entries WHERE entry_id = $1;`, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry", err)
	}
	entry := mapping.ToDomainJournalEntry(m)

	rows, err := r.Pool.Query(ctx, `SELECT line_id, entry_id, account_id, position, debit, credit
		FROM journal_lines WHERE entry_id = $1 ORDER BY position ASC;`, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal lines", err)
	}
	defer rows.Close()
	for rows.Next() {
		var lm models.JournalLine
		if err := rows.Scan(&lm.LineID, &lm.EntryID, &lm.AccountID, &lm.Position, &lm.Debit, &lm.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line", err)
		}
		entry.Lines = append(entry.Lines, mapping.ToDomainJournalLine(lm))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate journal lines", err)
	}
	return &entry, nil
}

// ListEntries returns entry headers newest first using a (date, id) keyset cursor.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := []any{}
	where := ""
	if nextToken != nil && *nextToken != "" {
		cursorDate, cursorID, err := pagination.DecodeEntryCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		where = "WHERE (entry_date, entry_id) < ($1, $2)"
		args = append(args, cursorDate, cursorID)
	}
	args = append(args, limit+1)
	query := fmt.Sprintf(`SELECT %s FROM journal_entries %s ORDER BY entry_date DESC, entry_id DESC LIMIT $%d;`,
		entryColumns, where, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list journal entries", err)
	}
	defer rows.Close()
	var entries []domain.JournalEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate journal entries", err)
	}

	var next *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeEntryCursor(last.EntryDate, last.EntryID)
		next = &token
	}
	return entries, next, nil
}

// IterateLines streams lines joined with their entry, ordered by (date, entry id, position).
func (r *PgxJournalRepository) IterateLines(ctx context.Context, filter domain.LineFilter) iter.Seq2[domain.PostedLine, error] {
	var (
		conds []string
		args  []any
	)
	if filter.AccountID != "" {
		args = append(args, filter.AccountID)
		conds = append(conds, fmt.Sprintf("l.account_id = $%d", len(args)))
	}
	if !filter.Range.From.IsZero() {
		args = append(args, filter.Range.From)
		conds = append(conds, fmt.Sprintf("e.entry_date >= $%d", len(args)))
	}
	if !filter.Range.To.IsZero() {
		args = append(args, filter.Range.To)
		conds = append(conds, fmt.Sprintf("e.entry_date <= $%d", len(args)))
	}
	query := `SELECT l.line_id, l.entry_id, l.account_id, l.position, l.debit, l.credit, e.entry_date, e.description
		FROM journal_lines l JOIN journal_entries e ON e.entry_id = l.entry_id`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY e.entry_date ASC, e.entry_id ASC, l.position ASC;"

	return func(yield func(domain.PostedLine, error) bool) {
		rows, err := r.Pool.Query(ctx, query, args...)
		if err != nil {
			yield(domain.PostedLine{}, apperrors.NewAppError(500, "failed to query journal lines", err))
			return
		}
		defer rows.Close()
		for rows.Next() {
			var m models.PostedLine
			if err := rows.Scan(&m.LineID, &m.EntryID, &m.AccountID, &m.Position, &m.Debit, &m.Credit, &m.EntryDate, &m.Description); err != nil {
				yield(domain.PostedLine{}, apperrors.NewAppError(500, "failed to scan journal line", err))
				return
			}
			if !yield(mapping.ToDomainPostedLine(m), nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.PostedLine{}, apperrors.NewAppError(500, "failed to iterate journal lines", err))
		}
	}
}
