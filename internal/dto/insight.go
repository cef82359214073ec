package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// InsightRequest asks for a narrative over a department's budget lines.
// BudgetData is nil when the field is absent or null.
type InsightRequest struct {
	BudgetData []InsightBudgetItem `json:"budgetData"`
	Department string              `json:"department"`
}

// InsightBudgetItem accepts both the store's column names and the short
// chart names, since callers post back whatever shape they rendered.
type InsightBudgetItem struct {
	UsedAmount    *LooseNumber `json:"used_amt"`
	Amount        *LooseNumber `json:"amount"`
	CategoryLabel *string      `json:"account_budget_a"`
	Category      *string      `json:"category"`
}

// ResolvedAmount prefers used_amt and falls back to amount. Absent values are zero.
func (i InsightBudgetItem) ResolvedAmount() decimal.Decimal {
	switch {
	case i.UsedAmount != nil:
		return i.UsedAmount.Decimal
	case i.Amount != nil:
		return i.Amount.Decimal
	default:
		return decimal.Zero
	}
}

// ResolvedCategory prefers account_budget_a and falls back to category.
func (i InsightBudgetItem) ResolvedCategory() string {
	switch {
	case i.CategoryLabel != nil:
		return *i.CategoryLabel
	case i.Category != nil:
		return *i.Category
	default:
		return ""
	}
}

// LooseNumber decodes a JSON number or numeric string. Anything else decodes to zero.
type LooseNumber struct {
	decimal.Decimal
}

func (n *LooseNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(data)), `"`))

	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		n.Decimal = decimal.Zero
		return nil
	}

	n.Decimal = parsed
	return nil
}

type InsightResponse struct {
	Insights string `json:"insights"`
}

// GenerationResponse is the last response received from the generation service.
type GenerationResponse struct {
	StatusCode int
	Body       []byte
	Attempts   int
}
