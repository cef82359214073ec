package dto

import "municipal-budget/internal/models"

// BudgetRequest is accepted as a JSON body (POST) or as query parameters (GET).
type BudgetRequest struct {
	Department string `json:"department" query:"department"`
	Ward       string `json:"ward,omitempty" query:"ward" validate:"omitempty,max=255"`
	Year       string `json:"year,omitempty" query:"year" validate:"omitempty,max=32"`
}

// BudgetResponse carries the valid record set for a department and its summary.
type BudgetResponse struct {
	BudgetData []models.BudgetRecord `json:"budgetData"`
	Summary    models.BudgetSummary  `json:"summary"`
}

// DepartmentsRequest filters the department listing.
type DepartmentsRequest struct {
	ZonesOnly bool `query:"zonesOnly"`
}

type DepartmentsResponse struct {
	Departments []string `json:"departments"`
}
