package services

import (
	"municipal-budget/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summarize reduces a valid record set. The set is expected to be ordered by used
// amount descending already; the first record is reported as the largest category.
func Summarize(records []models.BudgetRecord) models.BudgetSummary {
	summary := models.BudgetSummary{
		TotalUsed:          totalUsed(records),
		YearOverYearChange: 0,
	}

	if len(records) > 0 {
		summary.LargestCategory = &models.LargestCategory{
			Category: records[0].CategoryLabel,
			Amount:   records[0].UsedAmount,
		}
	}

	return summary
}

// CategoryShares annotates each record with its percentage of the set's total.
func CategoryShares(records []models.BudgetRecord) []models.CategoryShare {
	total := totalUsed(records)

	shares := make([]models.CategoryShare, 0, len(records))
	for _, r := range records {
		shares = append(shares, models.CategoryShare{
			Category:   r.CategoryLabel,
			Amount:     r.UsedAmount,
			Percentage: FormatPercentage(r.UsedAmount, total),
		})
	}
	return shares
}

// FormatPercentage returns part/total*100 with one decimal place, or "0.0" when total is zero.
func FormatPercentage(part, total decimal.Decimal) string {
	if total.IsZero() {
		return "0.0"
	}
	return part.Div(total).Mul(hundred).StringFixed(1)
}

func totalUsed(records []models.BudgetRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.UsedAmount)
	}
	return total
}
