package database

import (
	"context"
	"testing"

	"municipal-budget/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_CreatesBudgetTable(t *testing.T) {
	db := SetupTestDB(t)

	assert.True(t, db.Migrator().HasTable(models.BudgetTableName))
	assert.True(t, db.Migrator().HasColumn(&models.BudgetRecord{}, "account_budget_a"))
	assert.True(t, db.Migrator().HasColumn(&models.BudgetRecord{}, "used_amt"))
	assert.True(t, db.Migrator().HasColumn(&models.BudgetRecord{}, "budget_a"))
}

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)

	assert.NoError(t, db.HealthCheck(context.Background()))
}

func TestHealthCheck_ClosedStore(t *testing.T) {
	db := SetupTestDB(t)
	require.NoError(t, db.Close())

	assert.Error(t, db.HealthCheck(context.Background()))
}

func TestCreateIndexes(t *testing.T) {
	db := SetupTestDB(t)

	require.NoError(t, db.CreateIndexes())
	assert.True(t, db.Migrator().HasIndex(&models.BudgetRecord{}, "idx_municipal_budget_account_used_amt"))
}

func TestCleanupTestDB(t *testing.T) {
	db := SetupTestDB(t)
	CreateTestBudgetRecord(t, db, "ZONE 1", "Roads", "100")

	CleanupTestDB(t, db)

	var count int64
	require.NoError(t, db.Model(&models.BudgetRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}
