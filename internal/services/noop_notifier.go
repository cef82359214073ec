package services

import (
	"context"

	"municipal-budget/internal/models"
)

// NoopImportNotifier is used when no message broker is configured.
type NoopImportNotifier struct{}

func NewNoopImportNotifier() ImportNotifierInterface {
	return NoopImportNotifier{}
}

func (NoopImportNotifier) PublishBudgetImported(context.Context, models.BudgetImportedEvent) error {
	return nil
}
