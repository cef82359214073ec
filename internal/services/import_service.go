package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"municipal-budget/internal/models"
	"municipal-budget/internal/repositories"
)

type importService struct {
	budgetRepo repositories.BudgetRepositoryInterface
	notifier   ImportNotifierInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
	now        func() time.Time
}

func NewImportService(
	budgetRepo repositories.BudgetRepositoryInterface,
	notifier ImportNotifierInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ImportServiceInterface {
	if notifier == nil {
		notifier = NewNoopImportNotifier()
	}

	return &importService{
		budgetRepo: budgetRepo,
		notifier:   notifier,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *importService) ImportCSV(ctx context.Context, content string) (int, error) {
	start := s.now()
	parsed := ParseBudgetCSV(content)

	s.metrics.AddCounter("import_rows", float64(len(parsed.Records)), map[string]string{"outcome": "accepted"})
	s.metrics.AddCounter("import_rows", float64(parsed.Rejected), map[string]string{"outcome": "rejected"})

	if len(parsed.Records) == 0 {
		s.logger.WarnContext(ctx, "csv import produced no valid records", "rejected_rows", parsed.Rejected)
		s.metrics.IncrementCounter("import_requests", map[string]string{"status": "empty"})
		return 0, ErrEmptyImport
	}

	if err := s.budgetRepo.CreateBatch(ctx, parsed.Records); err != nil {
		detail := storeErrorDetail(err)
		s.logger.ErrorContext(ctx, "failed to write imported budget records",
			"records", len(parsed.Records),
			"error", err,
		)
		s.metrics.IncrementCounter("import_requests", map[string]string{"status": "store_error"})
		return 0, &StoreWriteError{Detail: detail, Err: err}
	}

	imported := len(parsed.Records)
	s.logger.InfoContext(ctx, "csv import completed",
		"imported", imported,
		"rejected_rows", parsed.Rejected,
		"duration_ms", s.now().Sub(start).Milliseconds(),
	)
	s.metrics.IncrementCounter("import_requests", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("import", s.now().Sub(start))

	event := models.BudgetImportedEvent{
		Imported:   imported,
		Accounts:   distinctAccounts(parsed.Records),
		ImportedAt: s.now().UTC(),
	}
	if err := s.notifier.PublishBudgetImported(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish budget imported event", "error", err)
		s.metrics.IncrementCounter("import_events", map[string]string{"status": "failed"})
	} else {
		s.metrics.IncrementCounter("import_events", map[string]string{"status": "published"})
	}

	return imported, nil
}

func distinctAccounts(records []models.BudgetRecord) []string {
	seen := make(map[string]struct{}, len(records))
	accounts := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Account]; ok {
			continue
		}
		seen[r.Account] = struct{}{}
		accounts = append(accounts, r.Account)
	}
	sort.Strings(accounts)
	return accounts
}
