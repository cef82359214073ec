package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrMissingDepartment    = errors.New("department is required")
	ErrEmptyImport          = errors.New("no valid budget data found")
	ErrNoValidData          = errors.New("no valid budget data to analyze")
	ErrMissingBudgetData    = errors.New("budget data and department are required")
	ErrInsightNotConfigured = errors.New("insight service API key not configured")
)

// StoreQueryError is returned when reading from the Budget Store fails.
type StoreQueryError struct {
	Err error
}

func (e *StoreQueryError) Error() string {
	return fmt.Sprintf("budget store query failed: %v", e.Err)
}

func (e *StoreQueryError) Unwrap() error {
	return e.Err
}

// StoreWriteError is returned when the bulk import write is rejected.
// Detail is the store's own description of the failure.
type StoreWriteError struct {
	Detail string
	Err    error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("budget store write failed: %s", e.Detail)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}

// UpstreamError carries a non-2xx response from the generation service.
type UpstreamError struct {
	StatusCode int
	Body       string
	Attempts   int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation service returned %d after %d attempt(s): %s", e.StatusCode, e.Attempts, e.Body)
}

// RateLimited reports whether the retry budget was exhausted on 429 responses.
func (e *UpstreamError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// storeErrorDetail extracts the most specific message available for a store failure.
func storeErrorDetail(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Detail != "" {
			return fmt.Sprintf("%s: %s (SQLSTATE %s)", pgErr.Message, pgErr.Detail, pgErr.Code)
		}
		return fmt.Sprintf("%s (SQLSTATE %s)", pgErr.Message, pgErr.Code)
	}

	root := err
	for {
		next := errors.Unwrap(root)
		if next == nil {
			return root.Error()
		}
		root = next
	}
}
