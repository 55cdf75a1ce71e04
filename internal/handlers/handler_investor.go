package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/dto"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/middleware"
)

type investorHandler struct {
	equityService portssvc.EquitySvcFacade
}

func registerInvestorRoutes(rg *gin.RouterGroup, mutate gin.HandlerFunc, equityService portssvc.EquitySvcFacade) {
	h := &investorHandler{equityService: equityService}

	investors := rg.Group("/investors")
	{
		investors.POST("", mutate, h.createInvestor)
		investors.GET("", h.listInvestors)
		investors.GET("/summary", h.getCapTable)
		investors.GET("/:id", h.getInvestor)
		investors.DELETE("/:id", mutate, h.deleteInvestor)
	}
}

// createInvestor godoc
// @Summary Register an investor
// @Tags investors
// @Accept  json
// @Produce  json
// @Param   investor body dto.CreateInvestorRequest true "Investor details"
// @Success 201 {object} dto.InvestorResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /investors [post]
func (h *investorHandler) createInvestor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}
	input, err := req.ToInput()
	if err != nil {
		respondError(c, logger, err, "Failed to parse investor")
		return
	}
	investor, err := h.equityService.CreateInvestor(c.Request.Context(), input, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to create investor")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvestorResponse(investor))
}

// listInvestors godoc
// @Summary List investors
// @Tags investors
// @Produce  json
// @Success 200 {object} dto.ListInvestorsResponse
// @Security BearerAuth
// @Router /investors [get]
func (h *investorHandler) listInvestors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	investors, err := h.equityService.ListInvestors(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list investors")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvestorsResponse(investors))
}

// getCapTable godoc
// @Summary Capitalization table
// @Description Investors with implied valuation, totals and an over-allocation flag
// @Tags investors
// @Produce  json
// @Success 200 {object} dto.CapTableResponse
// @Security BearerAuth
// @Router /investors/summary [get]
func (h *investorHandler) getCapTable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	table, err := h.equityService.CapTable(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to build cap table")
		return
	}
	if table.OwnershipExceeded {
		logger.Warn("Total ownership exceeds 100%", slog.String("total", table.TotalOwnership.String()))
	}
	c.JSON(http.StatusOK, dto.ToCapTableResponse(table))
}

// getInvestor godoc
// @Summary Get an investor
// @Tags investors
// @Produce  json
// @Param   id path string true "Investor ID"
// @Success 200 {object} dto.InvestorResponse
// @Failure 404 {object} dto.ErrorResponse "Investor not found"
// @Security BearerAuth
// @Router /investors/{id} [get]
func (h *investorHandler) getInvestor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("investor_id", c.Param("id")))
	investor, err := h.equityService.GetInvestorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve investor")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvestorResponse(investor))
}

// deleteInvestor godoc
// @Summary Delete an investor
// @Tags investors
// @Param   id path string true "Investor ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Investor not found"
// @Security BearerAuth
// @Router /investors/{id} [delete]
func (h *investorHandler) deleteInvestor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("investor_id", c.Param("id")))
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}
	if err := h.equityService.DeleteInvestor(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondError(c, logger, err, "Failed to delete investor")
		return
	}
	c.Status(http.StatusNoContent)
}
