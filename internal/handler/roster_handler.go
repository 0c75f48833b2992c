package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"hrgate/internal/errors"
	"hrgate/internal/service"
)

// RosterHandler handles employee roster endpoints.
type RosterHandler struct {
	rosterService service.RosterService
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(rosterService service.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

// EmployeeRequest represents an employee create/update payload.
type EmployeeRequest struct {
	Name       string          `json:"name" validate:"required"`
	Email      string          `json:"email" validate:"required,email"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Department string          `json:"department"`
	BirthDate  string          `json:"birth_date"`
	Address    string          `json:"address"`
}

// ScanPayloadResponse carries the string to render into a QR badge.
type ScanPayloadResponse struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Payload    string    `json:"payload"`
}

func (r *EmployeeRequest) toInput() service.EmployeeInput {
	return service.EmployeeInput{
		Name:       r.Name,
		Email:      r.Email,
		HourlyRate: r.HourlyRate,
		Department: r.Department,
		BirthDate:  r.BirthDate,
		Address:    r.Address,
	}
}

// List godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Employee
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees [get]
func (h *RosterHandler) List(c echo.Context) error {
	employees, err := h.rosterService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, employees)
}

// Create godoc
// @Summary Create an employee and provision its identity
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EmployeeRequest true "Employee data"
// @Success 201 {object} model.Employee
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees [post]
func (h *RosterHandler) Create(c echo.Context) error {
	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.rosterService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, employee)
}

// Update godoc
// @Summary Update an employee's descriptive attributes
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param request body EmployeeRequest true "Employee data"
// @Success 200 {object} model.Employee
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees/{id} [put]
func (h *RosterHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid employee ID",
			Code:  "INVALID_UUID",
		})
	}

	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.rosterService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, employee)
}

// Delete godoc
// @Summary Delete an employee, retaining identity and attendance history
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees/{id} [delete]
func (h *RosterHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid employee ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.rosterService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "employee deleted",
	})
}

// ScanPayload godoc
// @Summary Get the QR payload for an employee badge
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} ScanPayloadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees/{id}/scan-payload [get]
func (h *RosterHandler) ScanPayload(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid employee ID",
			Code:  "INVALID_UUID",
		})
	}

	payload, err := h.rosterService.ScanPayload(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ScanPayloadResponse{
		EmployeeID: id,
		Payload:    payload,
	})
}

// Orphans godoc
// @Summary List identities with no roster record
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Identity
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/orphans [get]
func (h *RosterHandler) Orphans(c echo.Context) error {
	orphans, err := h.rosterService.Orphans(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, orphans)
}
