package services

import (
	"testing"

	"municipal-budget/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budgetRecords(amounts ...string) []models.BudgetRecord {
	records := make([]models.BudgetRecord, 0, len(amounts))
	for i, a := range amounts {
		records = append(records, models.BudgetRecord{
			Account:       "FIRE DEPARTMENT (D)",
			CategoryLabel: []string{"Salaries", "Equipment", "Training", "Fuel", "Rent"}[i%5],
			UsedAmount:    decimal.RequireFromString(a),
		})
	}
	return records
}

func TestSummarize(t *testing.T) {
	summary := Summarize(budgetRecords("500", "300", "200"))

	assert.True(t, decimal.NewFromInt(1000).Equal(summary.TotalUsed))
	require.NotNil(t, summary.LargestCategory)
	assert.Equal(t, "Salaries", summary.LargestCategory.Category)
	assert.True(t, decimal.NewFromInt(500).Equal(summary.LargestCategory.Amount))
	assert.Zero(t, summary.YearOverYearChange)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.True(t, summary.TotalUsed.IsZero())
	assert.Nil(t, summary.LargestCategory)
	assert.Zero(t, summary.YearOverYearChange)
}

func TestSummarize_TrustsUpstreamOrder(t *testing.T) {
	summary := Summarize(budgetRecords("100", "900"))

	require.NotNil(t, summary.LargestCategory)
	assert.Equal(t, "Salaries", summary.LargestCategory.Category)
	assert.True(t, decimal.NewFromInt(100).Equal(summary.LargestCategory.Amount))
}

func TestSummarize_Idempotent(t *testing.T) {
	records := budgetRecords("500", "300", "200")

	first := Summarize(records)
	second := Summarize(records)

	assert.True(t, first.TotalUsed.Equal(second.TotalUsed))
	assert.Equal(t, first.LargestCategory, second.LargestCategory)
}

func TestCategoryShares(t *testing.T) {
	shares := CategoryShares(budgetRecords("500", "300", "200"))

	require.Len(t, shares, 3)
	assert.Equal(t, []string{"50.0", "30.0", "20.0"}, []string{shares[0].Percentage, shares[1].Percentage, shares[2].Percentage})
	assert.Equal(t, "Salaries", shares[0].Category)
}

func TestCategoryShares_ZeroTotal(t *testing.T) {
	shares := CategoryShares(budgetRecords("0", "0"))

	for _, share := range shares {
		assert.Equal(t, "0.0", share.Percentage)
	}
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		part, total string
		want        string
	}{
		{"1", "3", "33.3"},
		{"2", "3", "66.7"},
		{"1", "8", "12.5"},
		{"5", "0", "0.0"},
		{"1", "1", "100.0"},
	}

	for _, tt := range tests {
		t.Run(tt.part+"/"+tt.total, func(t *testing.T) {
			got := FormatPercentage(decimal.RequireFromString(tt.part), decimal.RequireFromString(tt.total))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryShares_SumToHundred(t *testing.T) {
	faker := gofakeit.New(42)

	for run := 0; run < 50; run++ {
		n := faker.IntRange(1, 12)
		amounts := make([]string, n)
		for i := range amounts {
			amounts[i] = decimal.NewFromFloat(faker.Float64Range(0.01, 1_000_000)).StringFixed(2)
		}

		shares := CategoryShares(budgetRecords(amounts...))

		sum := decimal.Zero
		for _, share := range shares {
			sum = sum.Add(decimal.RequireFromString(share.Percentage))
		}
		tolerance := decimal.NewFromFloat(0.05).Mul(decimal.NewFromInt(int64(n)))
		assert.True(t, sum.Sub(decimal.NewFromInt(100)).Abs().LessThanOrEqual(tolerance),
			"run %d: shares sum to %s", run, sum)
	}
}
