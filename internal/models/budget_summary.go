package models

import "github.com/shopspring/decimal"

// LargestCategory is the top entry of a department's valid record set.
type LargestCategory struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// BudgetSummary is derived per retrieval and never persisted.
type BudgetSummary struct {
	TotalUsed          decimal.Decimal  `json:"totalBudget"`
	LargestCategory    *LargestCategory `json:"largestCategory"`
	YearOverYearChange int              `json:"yearOverYearChange"`
}

// CategoryShare is one category's spend and its share of the department total.
// Percentage is formatted with one decimal place.
type CategoryShare struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage string          `json:"percentage"`
}
