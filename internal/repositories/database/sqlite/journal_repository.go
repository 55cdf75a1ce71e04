package sqlite

import (
	"context"
	"database/sql"
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
)

const entryColumns = "entry_id, entry_date, description, journal, scheme, created_at, created_by"

type SQLiteJournalRepository struct {
	BaseRepository
}

func newSQLiteJournalRepository(db *sql.DB) portsrepo.JournalRepositoryFacade {
	return &SQLiteJournalRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.JournalRepositoryFacade = (*SQLiteJournalRepository)(nil)

func scanEntry(row rowScanner) (models.JournalEntry, error) {
	var (
		m                    models.JournalEntry
		entryDate, createdAt string
	)
	if err := row.Scan(&m.EntryID, &entryDate, &m.Description, &m.Journal, &m.Scheme, &createdAt, &m.CreatedBy); err != nil {
		return m, err
	}
	var err error
	if m.EntryDate, err = parseDate(entryDate); err != nil {
		return m, fmt.Errorf("entry %s date: %w", m.EntryID, err)
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return m, fmt.Errorf("entry %s created_at: %w", m.EntryID, err)
	}
	return m, nil
}

// SaveEntry inserts the header and its lines in one transaction.
func (r *SQLiteJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(tx)

	m := mapping.ToModelJournalEntry(entry)
	_, err = tx.ExecContext(ctx, `INSERT INTO journal_entries (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?);`,
		m.EntryID, formatDate(m.EntryDate), m.Description, m.Journal, m.Scheme, formatTime(m.CreatedAt), m.CreatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO journal_lines (line_id, entry_id, account_id, position, debit, credit) VALUES (?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return apperrors.NewAppError(500, "failed to prepare journal line insert", err)
	}
	defer stmt.Close()
	for _, line := range entry.Lines {
		lm := mapping.ToModelJournalLine(line)
		if _, err := stmt.ExecContext(ctx, lm.LineID, lm.EntryID, lm.AccountID, lm.Position, lm.Debit, lm.Credit); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, lm.AccountID)
			}
			return apperrors.NewAppError(500, "failed to insert journal line", err)
		}
	}

	return r.Commit(tx)
}

// DeleteEntry removes an entry; ON DELETE CASCADE removes its lines.
func (r *SQLiteJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(tx)

	res, err := tx.ExecContext(ctx, `DELETE FROM journal_entries WHERE entry_id = ?;`, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete journal entry", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewAppError(500, "failed to read affected rows", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(tx)
}

func (r *SQLiteJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	m, err := scanEntry(r.DB.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM journal_entries WHERE entry_id = ?;`, entryID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry", err)
	}
	entry := mapping.ToDomainJournalEntry(m)

	rows, err := r.DB.QueryContext(ctx, `SELECT line_id, entry_id, account_id, position, debit, credit
		FROM journal_lines WHERE entry_id = ? ORDER BY position ASC;`, entryID)
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

func (r *SQLiteJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	var args []any
	if nextToken != nil && *nextToken != "" {
		cursorDate, cursorID, err := pagination.DecodeEntryCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` WHERE (entry_date, entry_id) < (?, ?)`
		args = append(args, formatDate(cursorDate), cursorID)
	}
	query += ` ORDER BY entry_date DESC, entry_id DESC LIMIT ?;`
	args = append(args, limit+1)

	rows, err := r.DB.QueryContext(ctx, query, args...)
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

func (r *SQLiteJournalRepository) IterateLines(ctx context.Context, filter domain.LineFilter) iter.Seq2[domain.PostedLine, error] {
	var (
		conds []string
		args  []any
	)
	if filter.AccountID != "" {
		conds = append(conds, "l.account_id = ?")
		args = append(args, filter.AccountID)
	}
	if !filter.Range.From.IsZero() {
		conds = append(conds, "e.entry_date >= ?")
		args = append(args, formatDate(filter.Range.From))
	}
	if !filter.Range.To.IsZero() {
		conds = append(conds, "e.entry_date <= ?")
		args = append(args, formatDate(filter.Range.To))
	}
	query := `SELECT l.line_id, l.entry_id, l.account_id, l.position, l.debit, l.credit, e.entry_date, e.description
		FROM journal_lines l JOIN journal_entries e ON e.entry_id = l.entry_id`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY e.entry_date ASC, e.entry_id ASC, l.position ASC;"

	return func(yield func(domain.PostedLine, error) bool) {
		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			yield(domain.PostedLine{}, apperrors.NewAppError(500, "failed to query journal lines", err))
			return
		}
		defer rows.Close()
		for rows.Next() {
			var (
				m         models.PostedLine
				entryDate string
			)
			if err := rows.Scan(&m.LineID, &m.EntryID, &m.AccountID, &m.Position, &m.Debit, &m.Credit, &entryDate, &m.Description); err != nil {
				yield(domain.PostedLine{}, apperrors.NewAppError(500, "failed to scan journal line", err))
				return
			}
			if m.EntryDate, err = parseDate(entryDate); err != nil {
				yield(domain.PostedLine{}, apperrors.NewAppError(500, "failed to parse entry date", err))
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
