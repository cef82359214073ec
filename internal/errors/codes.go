package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral           ErrorCode = "VALIDATION_001"
	ValidationMissingDepartment ErrorCode = "VALIDATION_002"
	ValidationMalformedBody     ErrorCode = "VALIDATION_003"
	ValidationMissingBudgetData ErrorCode = "VALIDATION_004"
)

// Budget retrieval error codes (BUDGET_*)
const (
	BudgetQueryFailed       ErrorCode = "BUDGET_001"
	BudgetDepartmentsFailed ErrorCode = "BUDGET_002"
)

// Import error codes (IMPORT_*)
const (
	ImportNoFile         ErrorCode = "IMPORT_001"
	ImportNoValidData    ErrorCode = "IMPORT_002"
	ImportWriteFailed    ErrorCode = "IMPORT_003"
	ImportUnreadableFile ErrorCode = "IMPORT_004"
	ImportFileTooLarge   ErrorCode = "IMPORT_005"
)

// Insight error codes (INSIGHT_*)
const (
	InsightNoValidData    ErrorCode = "INSIGHT_001"
	InsightRateLimited    ErrorCode = "INSIGHT_002"
	InsightUpstreamFailed ErrorCode = "INSIGHT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:           "Validation failed",
	ValidationMissingDepartment: "Department is required",
	ValidationMalformedBody:     "Malformed request body",
	ValidationMissingBudgetData: "Budget data and department are required",

	BudgetQueryFailed:       "Failed to fetch budget data",
	BudgetDepartmentsFailed: "Failed to fetch departments",

	ImportNoFile:         "No CSV file provided",
	ImportNoValidData:    "No valid budget data found",
	ImportWriteFailed:    "Failed to import budget data",
	ImportUnreadableFile: "Unable to read CSV file",
	ImportFileTooLarge:   "CSV file exceeds the upload size limit",

	InsightNoValidData:    "No valid budget data to analyze",
	InsightRateLimited:    "Insight service rate limit exceeded. Please try again later",
	InsightUpstreamFailed: "Insight service request failed",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
