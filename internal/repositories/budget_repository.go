package repositories

import (
	"context"
	"fmt"

	"municipal-budget/internal/models"

	"gorm.io/gorm"
)

// insertBatchSize keeps each INSERT below the Postgres bind parameter limit.
const insertBatchSize = 1000

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

func (r *budgetRepository) FindByAccount(ctx context.Context, account string) ([]models.BudgetRow, error) {
	var rows []models.BudgetRow
	err := r.db.WithContext(ctx).
		Table(models.BudgetTableName).
		Where("account = ?", account).
		Order("used_amt DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query budget records: %w", err)
	}
	return rows, nil
}

func (r *budgetRepository) CreateBatch(ctx context.Context, records []models.BudgetRecord) error {
	if len(records) == 0 {
		return nil
	}

	// CreateInBatches wraps multi-batch inserts in a single transaction.
	if err := r.db.WithContext(ctx).CreateInBatches(&records, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to create budget records: %w", err)
	}
	return nil
}

func (r *budgetRepository) ListAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	err := r.db.WithContext(ctx).
		Model(&models.BudgetRecord{}).
		Distinct("account").
		Where("account <> ''").
		Order("account ASC").
		Pluck("account", &accounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
