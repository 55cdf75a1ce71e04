package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portsrepo "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/repositories"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/middleware"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/platform/metrics"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// requireActor rejects mutations without an acting identity.
func requireActor(actor string) error {
	if strings.TrimSpace(actor) == "" {
		return fmt.Errorf("%w: actor is required", apperrors.ErrValidation)
	}
	return nil
}

// ledgerReader gives the derived-report services a read view of the books.
type ledgerReader struct {
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalReader
}

func (r ledgerReader) accountsByID(ctx context.Context) (map[string]domain.Account, error) {
	accounts, err := r.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.AccountID] = a
	}
	return byID, nil
}

// eachLine feeds every line matching filter to fn and stops at the first error.
func (r ledgerReader) eachLine(ctx context.Context, filter domain.LineFilter, fn func(domain.PostedLine) error) error {
	scanned := 0
	defer func() { metrics.LinesScanned.Add(float64(scanned)) }()
	for line, err := range r.journalRepo.IterateLines(ctx, filter) {
		if err != nil {
			return err
		}
		scanned++
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}
