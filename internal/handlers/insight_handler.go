package handlers

import (
	"net/http"

	"municipal-budget/internal/dto"
	"municipal-budget/internal/errors"
	"municipal-budget/internal/services"

	"github.com/labstack/echo/v4"
)

// InsightHandler produces narrative budget insights
type InsightHandler struct {
	insightService services.InsightServiceInterface
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService services.InsightServiceInterface) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GenerateInsights asks the generation service to summarize a department's budget lines
// @Summary Generate budget insights
// @Tags Insights
// @Accept json
// @Produce json
// @Param request body dto.InsightRequest true "Budget lines and department"
// @Success 200 {object} dto.InsightResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Budget data and department are required / INSIGHT_001 - No valid budget data"
// @Failure 429 {object} errors.ErrorResponse "INSIGHT_002 - Insight service rate limit exceeded"
// @Failure 502 {object} errors.ErrorResponse "INSIGHT_003 - Insight service request failed"
// @Router /api/v1/budget/insights [post]
func (h *InsightHandler) GenerateInsights(c echo.Context) error {
	var req dto.InsightRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationMalformedBody, errors.WithDetails("Invalid request body"))
	}

	insights, err := h.insightService.GenerateInsights(c.Request().Context(), req.Department, req.BudgetData)
	if err != nil {
		return SendServiceError(c, err, errors.InsightUpstreamFailed)
	}

	return c.JSON(http.StatusOK, dto.InsightResponse{Insights: insights})
}
