package database

import (
	"testing"

	"municipal-budget/internal/config"
	"municipal-budget/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite store with the budget schema applied.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Each pooled connection would get its own :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestBudgetRecord(t *testing.T, db *DB, account, category string, used string) *models.BudgetRecord {
	t.Helper()

	record := &models.BudgetRecord{
		Account:       account,
		GLCode:        "2024",
		CategoryLabel: category,
		UsedAmount:    decimal.RequireFromString(used),
	}

	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test budget record: %v", err)
	}

	return record
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM " + models.BudgetTableName).Error; err != nil {
		t.Logf("failed to cleanup table %s: %v", models.BudgetTableName, err)
	}
}
