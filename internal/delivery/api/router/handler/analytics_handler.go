package handler

import (
	"net/http"

	"places/internal/delivery/api/response"
	"places/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
}

// AnalyticsHandler serves dashboards and single charts.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: params.AnalyticsUC}
}

// Dashboard returns every metric and the charts that have data.
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.analyticsUC.Dashboard(c.Request().Context()))
}

// Chart returns one chart. A known chart without data yields 204.
func (h *AnalyticsHandler) Chart(c echo.Context) error {
	spec, err := h.analyticsUC.Chart(c.Request().Context(), c.Param("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if spec == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return response.Success(c, http.StatusOK, spec)
}
