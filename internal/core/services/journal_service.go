package services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/platform/metrics"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils/accounting"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils/pagination"
)

// journalService posts and reads double-entry journal entries.
type journalService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.JournalSvcFacade {
	return &journalService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// rejectionReason labels a validation failure for the rejected-entries counter.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrUnknownAccount):
		return "unknown_account"
	case errors.Is(err, apperrors.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, apperrors.ErrUnbalancedEntry):
		return "unbalanced"
	}
	return "validation"
}

// validateEntry applies every posting rule. It performs no writes.
func (s *journalService) validateEntry(ctx context.Context, input domain.PostEntryInput, actor string) error {
	if input.Date.IsZero() {
		return fmt.Errorf("%w: entry date is required", apperrors.ErrValidation)
	}
	if err := requireActor(actor); err != nil {
		return err
	}
	if len(input.Lines) < 2 {
		return fmt.Errorf("%w: an entry needs at least two lines, got %d", apperrors.ErrValidation, len(input.Lines))
	}

	ids := make([]string, 0, len(input.Lines))
	seen := make(map[string]struct{}, len(input.Lines))
	for _, l := range input.Lines {
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, ok := accounts[id]; !ok {
			return fmt.Errorf("%w: %q", apperrors.ErrUnknownAccount, id)
		}
	}

	for i, l := range input.Lines {
		if err := accounting.CheckAmount(l.Debit); err != nil {
			return fmt.Errorf("line %d debit: %w", i+1, err)
		}
		if err := accounting.CheckAmount(l.Credit); err != nil {
			return fmt.Errorf("line %d credit: %w", i+1, err)
		}
	}

	for i, l := range input.Lines {
		if l.Debit.IsZero() == l.Credit.IsZero() {
			return fmt.Errorf("%w: line %d must carry exactly one of debit or credit", apperrors.ErrValidation, i+1)
		}
	}

	if err := accounting.CheckBalanced(input.Lines); err != nil {
		return err
	}

	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: entry description is required", apperrors.ErrValidation)
	}
	return nil
}

// PostEntry validates the entry in full and persists it with its lines atomically.
func (s *journalService) PostEntry(ctx context.Context, input domain.PostEntryInput, actor string) (*domain.JournalEntry, error) {
	if err := s.validateEntry(ctx, input, actor); err != nil {
		if errors.Is(err, apperrors.ErrStorage) {
			s.LogError(ctx, err, "Failed to load accounts for entry validation")
			return nil, err
		}
		metrics.EntriesRejected.WithLabelValues(rejectionReason(err)).Inc()
		s.LogDebug(ctx, "Journal entry rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	entryID, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to generate entry ID", err)
	}
	journal := strings.ToUpper(strings.TrimSpace(input.Journal))
	if journal == "" {
		journal = domain.DefaultJournal
	}
	scheme := strings.ToUpper(strings.TrimSpace(input.Scheme))
	if scheme == "" {
		scheme = domain.DefaultScheme
	}

	entry := domain.JournalEntry{
		EntryID:     entryID.String(),
		EntryDate:   input.Date,
		Description: strings.TrimSpace(input.Description),
		Journal:     journal,
		Scheme:      scheme,
		Lines:       make([]domain.JournalLine, 0, len(input.Lines)),
		AuditFields: domain.AuditFields{CreatedAt: time.Now().UTC(), CreatedBy: actor},
	}
	for i, l := range input.Lines {
		lineID, err := uuid.NewV7()
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to generate line ID", err)
		}
		entry.Lines = append(entry.Lines, domain.JournalLine{
			LineID:    lineID.String(),
			EntryID:   entry.EntryID,
			AccountID: l.AccountID,
			Position:  i,
			Debit:     l.Debit,
			Credit:    l.Credit,
		})
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrUnknownAccount) {
			// an account vanished between validation and insert
			metrics.EntriesRejected.WithLabelValues(rejectionReason(err)).Inc()
			return nil, err
		}
		s.LogError(ctx, err, "Failed to persist journal entry", slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	metrics.EntriesPosted.Inc()
	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("date", entry.EntryDate.Format(time.DateOnly)),
		slog.Int("lines", len(entry.Lines)),
		slog.String("amount", entry.TotalDebit().StringFixed(2)),
		slog.String("actor", actor))
	return &entry, nil
}

func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	entries, next, err := s.journalRepo.ListEntries(ctx, pagination.ClampLimit(limit), nextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list journal entries")
		}
		return nil, nil, err
	}
	return entries, next, nil
}

func (s *journalService) IterateLines(ctx context.Context, filter domain.LineFilter) iter.Seq2[domain.PostedLine, error] {
	return s.journalRepo.IterateLines(ctx, filter)
}

func (s *journalService) DeleteEntry(ctx context.Context, entryID string, actor string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if err := s.journalRepo.DeleteEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete journal entry", slog.String("entry_id", entryID))
		}
		return err
	}
	s.LogInfo(ctx, "Journal entry deleted", slog.String("entry_id", entryID), slog.String("actor", actor))
	return nil
}
