package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"municipal-budget/internal/dto"
	"municipal-budget/internal/models"
	"municipal-budget/internal/repositories"
)

// wardAll is the selector value meaning no ward filter.
const wardAll = "all"

const zoneMarker = "ZONE"

type budgetService struct {
	budgetRepo repositories.BudgetRepositoryInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo: budgetRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// GetDepartmentBudget returns the valid record set for a department in
// descending used-amount order, with its summary. Ward and year are accepted
// but do not filter: the store has no ward column.
func (s *budgetService) GetDepartmentBudget(ctx context.Context, req dto.BudgetRequest) (*dto.BudgetResponse, error) {
	department := strings.TrimSpace(req.Department)
	if department == "" {
		s.metrics.IncrementCounter("budget_requests", map[string]string{"status": "invalid"})
		return nil, ErrMissingDepartment
	}

	if ward := normalizeWard(req.Ward); ward != "" {
		s.logger.InfoContext(ctx, "ward filter requested, store has no ward column; returning department data",
			"department", department,
			"ward", ward,
		)
	}

	start := time.Now()
	rows, err := s.budgetRepo.FindByAccount(ctx, department)
	s.metrics.RecordProcessingTime("budget_query", time.Since(start))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch budget data",
			"department", department,
			"error", err,
		)
		s.metrics.IncrementCounter("budget_requests", map[string]string{"status": "store_error"})
		return nil, &StoreQueryError{Err: err}
	}

	records := make([]models.BudgetRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, SanitizeRow(row))
	}
	valid := FilterValid(records)

	s.logger.DebugContext(ctx, "budget data retrieved",
		"department", department,
		"year", req.Year,
		"rows", len(rows),
		"valid", len(valid),
	)
	s.metrics.IncrementCounter("budget_requests", map[string]string{"status": "success"})

	return &dto.BudgetResponse{
		BudgetData: valid,
		Summary:    Summarize(valid),
	}, nil
}

// ListDepartments returns the distinct accounts in the store, optionally only zones.
func (s *budgetService) ListDepartments(ctx context.Context, zonesOnly bool) ([]string, error) {
	accounts, err := s.budgetRepo.ListAccounts(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list departments", "error", err)
		return nil, &StoreQueryError{Err: err}
	}

	departments := make([]string, 0, len(accounts))
	for _, account := range accounts {
		if zonesOnly && !strings.Contains(strings.ToUpper(account), zoneMarker) {
			continue
		}
		departments = append(departments, account)
	}
	return departments, nil
}

func normalizeWard(ward string) string {
	ward = strings.TrimSpace(ward)
	if strings.EqualFold(ward, wardAll) {
		return ""
	}
	return ward
}
