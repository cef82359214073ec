package services

import (
	"strings"

	"municipal-budget/internal/models"

	"github.com/shopspring/decimal"
)

// Recognized CSV headers, matched case-insensitively.
const (
	headerWard     = "ward"
	headerYear     = "year"
	headerCategory = "category"
	headerAmount   = "amount"
)

// amountDecoration is stripped from amount cells before parsing.
const amountDecoration = ",$"

// CSVHeader is the column layout of one import file.
type CSVHeader struct {
	size    int
	columns map[string]int
}

// utf8BOM is written at the start of files saved as "CSV UTF-8" by spreadsheet tools.
const utf8BOM = "\ufeff"

// NewCSVHeader indexes the recognized columns. When a header repeats, the last one wins.
func NewCSVHeader(names []string) CSVHeader {
	columns := make(map[string]int, len(names))
	for i, name := range names {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return CSVHeader{size: len(names), columns: columns}
}

func (h CSVHeader) Len() int {
	return h.size
}

// index returns the position of a recognized column, or -1.
func (h CSVHeader) index(name string) int {
	if i, ok := h.columns[name]; ok {
		return i
	}
	return -1
}

func (h CSVHeader) value(cells []string, name string) string {
	i := h.index(name)
	if i < 0 || i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

// NormalizeRow turns one CSV row into a budget record. It reports false when the
// row's cell count differs from the header, when ward, year or category is
// missing, or when the amount is not a finite number.
func NormalizeRow(header CSVHeader, cells []string) (models.BudgetRecord, bool) {
	if len(cells) != header.Len() {
		return models.BudgetRecord{}, false
	}

	account := header.value(cells, headerWard)
	glcode := header.value(cells, headerYear)
	category := header.value(cells, headerCategory)
	if account == "" || glcode == "" || category == "" {
		return models.BudgetRecord{}, false
	}

	used, ok := ParseAmount(header.value(cells, headerAmount))
	if !ok {
		return models.BudgetRecord{}, false
	}

	return models.BudgetRecord{
		Account:         account,
		GLCode:          glcode,
		CategoryLabel:   category,
		UsedAmount:      used,
		RemainingAmount: decimal.Zero,
	}, true
}

// ParseAmount strips currency decoration and parses the remainder as a decimal.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(amountDecoration, r) {
			return -1
		}
		return r
	}, raw)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}
