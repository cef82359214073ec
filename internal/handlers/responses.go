package handlers

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"municipal-budget/internal/errors"
	"municipal-budget/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// Handlers report failures through the helpers below so every error body has
// the same {error, code, details?, trace_id?} shape.
//
// 1. SendError - a known error code, optionally with details
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Missing input: SendError(c, errors.ValidationMissingDepartment)
//
// 2. SendServiceError - an error returned by a service; maps sentinel and typed
//    service errors to codes and falls back to the given code
//
// 3. SendSystemError - anything unexpected; the client sees a generic message
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "unhandled error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", internal,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError maps a service-layer error to its response. Errors the
// services package does not classify are reported with fallback.
func SendServiceError(c echo.Context, err error, fallback errors.ErrorCode) error {
	var (
		writeErr    *services.StoreWriteError
		queryErr    *services.StoreQueryError
		upstreamErr *services.UpstreamError
	)

	switch {
	case stderrors.Is(err, services.ErrMissingDepartment):
		return SendError(c, errors.ValidationMissingDepartment)
	case stderrors.Is(err, services.ErrMissingBudgetData):
		return SendError(c, errors.ValidationMissingBudgetData)
	case stderrors.Is(err, services.ErrEmptyImport):
		return SendError(c, errors.ImportNoValidData)
	case stderrors.Is(err, services.ErrNoValidData):
		return SendError(c, errors.InsightNoValidData)
	case stderrors.Is(err, services.ErrInsightNotConfigured):
		return SendError(c, errors.SystemConfigurationError, errors.WithMessage("Insight service API key not configured"))
	case stderrors.As(err, &writeErr):
		return SendError(c, errors.ImportWriteFailed, errors.WithDetails(writeErr.Detail))
	case stderrors.As(err, &queryErr):
		// Store detail stays in the logs.
		return SendError(c, fallback)
	case stderrors.As(err, &upstreamErr):
		details := errors.WithDetails(fmt.Sprintf("upstream status %d", upstreamErr.StatusCode), upstreamErr.Body)
		if upstreamErr.RateLimited() {
			return SendError(c, errors.InsightRateLimited, details)
		}
		return SendError(c, errors.InsightUpstreamFailed, details)
	}

	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", getTraceID(c),
		"path", c.Request().URL.Path,
		"error", err,
	)
	return SendError(c, fallback)
}
