package repositories

import (
	"context"

	"municipal-budget/internal/models"
)

// BudgetRepositoryInterface is the narrow read/write contract of the Budget Store.
type BudgetRepositoryInterface interface {
	// FindByAccount returns every row whose account equals the given value,
	// ordered by used amount descending. Rows are unsanitized.
	FindByAccount(ctx context.Context, account string) ([]models.BudgetRow, error)

	// CreateBatch writes all records as one all-or-nothing bulk insert.
	CreateBatch(ctx context.Context, records []models.BudgetRecord) error

	// ListAccounts returns the distinct non-empty account values in ascending order.
	ListAccounts(ctx context.Context) ([]string, error)
}
