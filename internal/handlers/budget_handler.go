package handlers

import (
	"net/http"

	"municipal-budget/internal/dto"
	"municipal-budget/internal/errors"
	"municipal-budget/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler serves department budget data
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// GetBudget returns the valid record set and summary for one department
// @Summary Get department budget
// @Description Budget lines with a positive used amount and a category, largest first, plus a summary
// @Tags Budget
// @Accept json
// @Produce json
// @Param request body dto.BudgetRequest false "Department selector (POST)"
// @Param department query string false "Department (GET)"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Department is required"
// @Failure 500 {object} errors.ErrorResponse "BUDGET_001 - Failed to fetch budget data"
// @Router /api/v1/budget [post]
// @Router /api/v1/budget [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	var req dto.BudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationMalformedBody, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetails(err)...))
	}

	resp, err := h.budgetService.GetDepartmentBudget(c.Request().Context(), req)
	if err != nil {
		return SendServiceError(c, err, errors.BudgetQueryFailed)
	}

	return c.JSON(http.StatusOK, resp)
}

// ListDepartments returns the distinct departments present in the store
// @Summary List departments
// @Tags Budget
// @Produce json
// @Param zonesOnly query bool false "Only accounts naming a zone"
// @Success 200 {object} dto.DepartmentsResponse
// @Failure 500 {object} errors.ErrorResponse "BUDGET_002 - Failed to fetch departments"
// @Router /api/v1/departments [get]
func (h *BudgetHandler) ListDepartments(c echo.Context) error {
	var req dto.DepartmentsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("zonesOnly must be a boolean"))
	}

	departments, err := h.budgetService.ListDepartments(c.Request().Context(), req.ZonesOnly)
	if err != nil {
		return SendServiceError(c, err, errors.BudgetDepartmentsFailed)
	}

	return c.JSON(http.StatusOK, dto.DepartmentsResponse{Departments: departments})
}
