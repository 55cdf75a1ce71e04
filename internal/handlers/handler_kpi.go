package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/dto"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/middleware"
)

type kpiHandler struct {
	kpiService portssvc.KPISvcFacade
}

func registerKPIRoutes(rg *gin.RouterGroup, mutate gin.HandlerFunc, kpiService portssvc.KPISvcFacade) {
	h := &kpiHandler{kpiService: kpiService}

	kpis := rg.Group("/kpis")
	{
		kpis.GET("", h.listKPIs)
		kpis.GET("/:year/:month", h.getKPI)
		kpis.POST("/:year/:month", mutate, h.recalculateKPI)
	}
}

// monthParams reads :year and :month path parameters.
func monthParams(c *gin.Context) (int, int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: year %q is not a number", apperrors.ErrValidation, c.Param("year"))
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month %q is not a number", apperrors.ErrValidation, c.Param("month"))
	}
	return year, month, nil
}

// recalculateKPI godoc
// @Summary Recalculate a monthly KPI
// @Description Derives burn rate, runway and recurring revenue from posted lines through the month end and stores the snapshot
// @Tags kpis
// @Accept  json
// @Produce  json
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Param   body body dto.RecalculateKPIRequest false "Optional notes"
// @Success 200 {object} dto.KPIResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid month"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /kpis/{year}/{month} [post]
func (h *kpiHandler) recalculateKPI(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, err := monthParams(c)
	if err != nil {
		respondError(c, logger, err, "Invalid month")
		return
	}
	var req dto.RecalculateKPIRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, logger, err)
			return
		}
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}
	kpi, err := h.kpiService.Recalculate(c.Request.Context(), year, month, req.Notes, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to recalculate KPI")
		return
	}
	logger.Info("KPI recalculated", slog.Int("year", year), slog.Int("month", month))
	c.JSON(http.StatusOK, dto.ToKPIResponse(kpi))
}

// getKPI godoc
// @Summary Get a stored monthly KPI
// @Tags kpis
// @Produce  json
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Success 200 {object} dto.KPIResponse
// @Failure 404 {object} dto.ErrorResponse "No snapshot for that month"
// @Security BearerAuth
// @Router /kpis/{year}/{month} [get]
func (h *kpiHandler) getKPI(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, err := monthParams(c)
	if err != nil {
		respondError(c, logger, err, "Invalid month")
		return
	}
	kpi, err := h.kpiService.GetKPI(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("No KPI snapshot", slog.Int("year", year), slog.Int("month", month))
		}
		respondError(c, logger, err, "Failed to retrieve KPI")
		return
	}
	c.JSON(http.StatusOK, dto.ToKPIResponse(kpi))
}

// listKPIs godoc
// @Summary List stored KPI snapshots
// @Tags kpis
// @Produce  json
// @Success 200 {object} dto.ListKPIsResponse
// @Security BearerAuth
// @Router /kpis [get]
func (h *kpiHandler) listKPIs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kpis, err := h.kpiService.ListKPIs(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list KPIs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListKPIsResponse(kpis))
}
