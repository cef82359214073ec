package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Message string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
	TraceID string `json:"trace_id,omitempty"`

	status int
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails sets the details field. Multiple values are joined with "; ".
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Details = strings.Join(details, "; ")
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Message = message
	}
}

// WithStatus overrides the HTTP status derived from the code. Used to pass an
// upstream status through to the caller.
func WithStatus(status int) ErrorOption {
	return func(er *ErrorResponse) {
		er.status = status
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Message: GetErrorMessage(code),
		Code:    string(code),
		TraceID: traceID,
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a validation error response with field-specific error details.
// Fields are reported in name order so the details string is stable.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
	}

	return NewValidationErrorFromList(details, traceID)
}

// NewValidationErrorFromList creates a validation error from a list of detail messages
func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError wraps an internal error with a generic system error message.
// The internal error is returned separately for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapDatabaseError wraps a database error with a generic system error message
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDatabaseError, traceID), err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request - missing or malformed input, nothing to process
	case ValidationGeneral, ValidationMissingDepartment, ValidationMalformedBody,
		ValidationMissingBudgetData, ImportNoFile, ImportNoValidData,
		ImportUnreadableFile, InsightNoValidData:
		return http.StatusBadRequest

	case SystemRouteNotFound:
		return http.StatusNotFound

	case ImportFileTooLarge:
		return http.StatusRequestEntityTooLarge

	// 429 Too Many Requests - inbound throttling or exhausted upstream retries
	case SystemRateLimitExceeded, InsightRateLimited:
		return http.StatusTooManyRequests

	// 502 Bad Gateway - generation service failed
	case InsightUpstreamFailed:
		return http.StatusBadGateway

	// 503 Service Unavailable - Service temporarily unavailable
	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	// 500 Internal Server Error - store and system errors
	case BudgetQueryFailed, BudgetDepartmentsFailed, ImportWriteFailed,
		SystemInternalError, SystemDatabaseError, SystemConfigurationError,
		SystemUnexpectedError:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status for the response, honoring WithStatus.
func (er *ErrorResponse) GetHTTPStatus() int {
	if er.status != 0 {
		return er.status
	}
	return GetHTTPStatus(ErrorCode(er.Code))
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Code, er.Message, er.TraceID)
}
