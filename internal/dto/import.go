package dto

// ImportResponse reports how many records a CSV import actually wrote.
type ImportResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
}
