package models

import "time"

// BudgetImportedEvent is published after a CSV import has been written to the store.
type BudgetImportedEvent struct {
	Imported   int       `json:"imported"`
	Accounts   []string  `json:"accounts"`
	ImportedAt time.Time `json:"imported_at"`
}
