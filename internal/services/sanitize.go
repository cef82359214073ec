package services

import (
	"database/sql"
	"strings"

	"municipal-budget/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SanitizeRow coerces a raw store row into a budget record. Unparseable used and
// remaining amounts become 0; an absent or unparseable allocation becomes null.
func SanitizeRow(row models.BudgetRow) models.BudgetRecord {
	record := models.BudgetRecord{
		Account:         row.Account.String,
		GLCode:          row.GLCode.String,
		CategoryLabel:   row.CategoryLabel.String,
		UsedAmount:      amountOrZero(row.UsedAmount),
		RemainingAmount: amountOrZero(row.RemainingAmount),
		AllocatedAmount: nullableAmount(row.AllocatedAmount),
	}

	if id, err := uuid.Parse(row.ID); err == nil {
		record.ID = id
	}

	if row.CreatedAt.Valid {
		createdAt := row.CreatedAt.Time
		record.CreatedAt = &createdAt
	}

	return record
}

// FilterValid keeps records with a positive used amount and a category label, in order.
func FilterValid(records []models.BudgetRecord) []models.BudgetRecord {
	valid := make([]models.BudgetRecord, 0, len(records))
	for _, r := range records {
		if r.IsValid() {
			valid = append(valid, r)
		}
	}
	return valid
}

func amountOrZero(value sql.NullString) decimal.Decimal {
	if !value.Valid {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(value.String))
	if err != nil {
		return decimal.Zero
	}
	return amount
}

func nullableAmount(value sql.NullString) decimal.NullDecimal {
	if !value.Valid || strings.TrimSpace(value.String) == "" {
		return decimal.NullDecimal{}
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(value.String))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(amount)
}
