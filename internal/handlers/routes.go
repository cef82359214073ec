package handlers

import "github.com/labstack/echo/v4"

// Handlers groups every HTTP handler the API exposes.
type Handlers struct {
	Budget  *BudgetHandler
	Import  *ImportHandler
	Insight *InsightHandler
	Health  *HealthCheckHandler
}

// RegisterRoutes mounts the API on e.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.HealthCheck)

	v1 := e.Group("/api/v1")

	v1.POST("/budget", h.Budget.GetBudget)
	v1.GET("/budget", h.Budget.GetBudget)
	v1.POST("/budget/import", h.Import.ImportCSV)
	v1.POST("/budget/insights", h.Insight.GenerateInsights)

	v1.GET("/departments", h.Budget.ListDepartments)
}
