package services

import (
	"context"
	"time"

	"municipal-budget/internal/dto"
	"municipal-budget/internal/models"
)

// ImportServiceInterface drives CSV content into the Budget Store
type ImportServiceInterface interface {
	// ImportCSV writes every acceptable row of content in one bulk write and
	// returns the number of records written.
	ImportCSV(ctx context.Context, content string) (int, error)
}

// BudgetServiceInterface serves the read path of the pipeline
type BudgetServiceInterface interface {
	GetDepartmentBudget(ctx context.Context, req dto.BudgetRequest) (*dto.BudgetResponse, error)
	ListDepartments(ctx context.Context, zonesOnly bool) ([]string, error)
}

// InsightServiceInterface produces a narrative for a department's budget lines
type InsightServiceInterface interface {
	GenerateInsights(ctx context.Context, department string, items []dto.InsightBudgetItem) (string, error)
}

// GenerationClientInterface calls the external text-generation service.
// A non-2xx status is reported in the response, not as an error.
type GenerationClientInterface interface {
	GenerateContent(ctx context.Context, prompt string) (*dto.GenerationResponse, error)
}

// ImportNotifierInterface announces completed imports to downstream consumers
type ImportNotifierInterface interface {
	PublishBudgetImported(ctx context.Context, event models.BudgetImportedEvent) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	// AddCounter adds value to a monotonic counter. Non-positive values are ignored.
	AddCounter(name string, value float64, tags map[string]string)
}
