package services

import (
	"encoding/csv"
	"regexp"
	"strings"

	"municipal-budget/internal/models"
)

var (
	// leadingAmountGroup matches an amount cell that may continue into the next cell,
	// e.g. "$1" or "$1,200" from an unquoted "$1,200,000".
	leadingAmountGroup = regexp.MustCompile(`^-?\$?\s*-?\d{1,3}(,\d{3})*$`)
	thousandsGroup     = regexp.MustCompile(`^\d{3}(\.\d+)?$`)
)

// ParsedCSV is the outcome of reading one import file.
type ParsedCSV struct {
	Records  []models.BudgetRecord
	Rejected int
}

// ParseBudgetCSV reads content with the first non-blank line as header and
// normalizes every following line independently. Each line is tokenized on its
// own, so a malformed line (an unterminated quote, say) only rejects itself.
func ParseBudgetCSV(content string) ParsedCSV {
	var result ParsedCSV

	lines := splitLines(content)
	if len(lines) == 0 {
		return result
	}

	names, err := tokenizeLine(lines[0])
	if err != nil {
		return result
	}
	header := NewCSVHeader(names)
	amountIdx := header.index(headerAmount)

	for _, line := range lines[1:] {
		cells, err := tokenizeLine(line)
		if err != nil {
			result.Rejected++
			continue
		}

		cells = rejoinAmountGroups(cells, header.Len(), amountIdx)

		record, ok := NormalizeRow(header, cells)
		if !ok {
			result.Rejected++
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result
}

// splitLines returns the non-blank physical lines of content with any trailing \r removed.
func splitLines(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// tokenizeLine splits one physical line into cells, honoring quotes within the line.
func tokenizeLine(line string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	return reader.Read()
}

// rejoinAmountGroups merges an unquoted thousands-grouped amount that the comma
// split across cells, only while the row has more cells than the header.
func rejoinAmountGroups(cells []string, headerLen, amountIdx int) []string {
	for amountIdx >= 0 && len(cells) > headerLen && amountIdx+1 < len(cells) &&
		leadingAmountGroup.MatchString(strings.TrimSpace(cells[amountIdx])) &&
		thousandsGroup.MatchString(strings.TrimSpace(cells[amountIdx+1])) {

		merged := make([]string, 0, len(cells)-1)
		merged = append(merged, cells[:amountIdx]...)
		merged = append(merged, strings.TrimSpace(cells[amountIdx])+","+strings.TrimSpace(cells[amountIdx+1]))
		merged = append(merged, cells[amountIdx+2:]...)
		cells = merged
	}
	return cells
}
