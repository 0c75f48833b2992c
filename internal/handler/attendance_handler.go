package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hrgate/internal/errors"
	"hrgate/internal/model"
	"hrgate/internal/service"
)

// AttendanceHandler handles check-in/check-out endpoints.
type AttendanceHandler struct {
	attendanceService service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler.
func NewAttendanceHandler(attendanceService service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// ScanRequest carries a decoded QR payload or a manually entered token.
type ScanRequest struct {
	Token string `json:"token"`
}

// ScanResponse is the resolution outcome plus the reloaded attendance list,
// so the scanning station always renders read-your-writes state.
type ScanResponse struct {
	Outcome    service.ResolveOutcome   `json:"outcome"`
	Record     *model.AttendanceRecord  `json:"record"`
	Attendance []model.AttendanceRecord `json:"attendance"`
}

// Scan godoc
// @Summary Resolve a scanned identity token into a check-in or check-out
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ScanRequest true "Decoded token"
// @Success 200 {object} ScanResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /attendance/scan [post]
func (h *AttendanceHandler) Scan(c echo.Context) error {
	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	result, err := h.attendanceService.Resolve(ctx, req.Token)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	records, err := h.attendanceService.List(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ScanResponse{
		Outcome:    result.Outcome,
		Record:     result.Record,
		Attendance: records,
	})
}

// List godoc
// @Summary List attendance records, most recent check-in first
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AttendanceRecord
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /attendance [get]
func (h *AttendanceHandler) List(c echo.Context) error {
	records, err := h.attendanceService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, records)
}
