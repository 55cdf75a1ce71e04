package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/dto"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/middleware"
)

// budgetHandler handles budget CRUD and variance requests.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func registerBudgetRoutes(rg *gin.RouterGroup, mutate gin.HandlerFunc, budgetService portssvc.BudgetSvcFacade) {
	h := &budgetHandler{budgetService: budgetService}

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", mutate, h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.GET("/variance", h.listVariances)
		budgets.GET("/:id", h.getBudget)
		budgets.GET("/:id/variance", h.getVariance)
		budgets.DELETE("/:id", mutate, h.deleteBudget)
	}
}

// createBudget godoc
// @Summary Create a budget
// @Description Monthly when month is set, annual otherwise
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBudgetRequest
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
		respondError(c, logger, err, "Failed to parse budget")
		return
	}
	budget, err := h.budgetService.CreateBudget(c.Request.Context(), input, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to create budget")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// listBudgets godoc
// @Summary List budgets
// @Tags budgets
// @Produce  json
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgets, err := h.budgetService.ListBudgets(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBudgetsResponse(budgets))
}

// getBudget godoc
// @Summary Get a budget
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} dto.ErrorResponse "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("budget_id", c.Param("id")))
	budget, err := h.budgetService.GetBudgetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// getVariance godoc
// @Summary Budget variance
// @Description Actual expense over the budget period and target minus actual
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Success 200 {object} dto.BudgetVarianceResponse
// @Failure 404 {object} dto.ErrorResponse "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id}/variance [get]
func (h *budgetHandler) getVariance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("budget_id", c.Param("id")))
	variance, err := h.budgetService.EvaluateByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to evaluate budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetVarianceResponse(variance))
}

// listVariances godoc
// @Summary Variance of every budget
// @Tags budgets
// @Produce  json
// @Success 200 {object} dto.ListBudgetVariancesResponse
// @Security BearerAuth
// @Router /budgets/variance [get]
func (h *budgetHandler) listVariances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	variances, err := h.budgetService.EvaluateAll(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to evaluate budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBudgetVariancesResponse(variances))
}

// deleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Param   id path string true "Budget ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("budget_id", c.Param("id")))
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}
	if err := h.budgetService.DeleteBudget(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondError(c, logger, err, "Failed to delete budget")
		return
	}
	c.Status(http.StatusNoContent)
}
