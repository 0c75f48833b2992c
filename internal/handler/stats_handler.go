package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hrgate/internal/errors"
	"hrgate/internal/service"
)

// StatsHandler handles dashboard stats endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Summary godoc
// @Summary Dashboard headline counts
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.StatsSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stats/summary [get]
func (h *StatsHandler) Summary(c echo.Context) error {
	summary, err := h.statsService.Summary(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, summary)
}
