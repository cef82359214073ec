package messaging

import (
	"encoding/json"

	"municipal-budget/internal/models"
)

// EncodeBudgetImported converts the event to the JSON message body
func EncodeBudgetImported(event models.BudgetImportedEvent) ([]byte, error) {
	return json.Marshal(event)
}

// DecodeBudgetImported reads a message body produced by EncodeBudgetImported
func DecodeBudgetImported(data []byte) (*models.BudgetImportedEvent, error) {
	var event models.BudgetImportedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
