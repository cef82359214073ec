package models

import "database/sql"

// BudgetRow is a budget table row as the store returns it, before sanitization.
// Numeric columns are read as text so unparseable values can be coerced instead of failing the scan.
type BudgetRow struct {
	ID              string         `gorm:"column:id"`
	Account         sql.NullString `gorm:"column:account"`
	GLCode          sql.NullString `gorm:"column:glcode"`
	CategoryLabel   sql.NullString `gorm:"column:account_budget_a"`
	UsedAmount      sql.NullString `gorm:"column:used_amt"`
	RemainingAmount sql.NullString `gorm:"column:remaining_amt"`
	AllocatedAmount sql.NullString `gorm:"column:budget_a"`
	CreatedAt       sql.NullTime   `gorm:"column:created_at"`
}
