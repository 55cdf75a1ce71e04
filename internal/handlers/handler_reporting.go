package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	portssvc "github.com/techcarewavehealth-wq/carewaveerp/internal/core/ports/services"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/dto"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/middleware"
)

// reportingHandler serves statements derived from posted journal lines.
type reportingHandler struct {
	statementService portssvc.StatementSvc
	liquidityService portssvc.LiquiditySvc
}

func registerReportingRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvc, liquidityService portssvc.LiquiditySvc) {
	h := &reportingHandler{statementService: statementService, liquidityService: liquidityService}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/liquidity", h.getLiquidity)
	}
}

// bindPeriod parses from/to query bounds, writing a 400 on failure.
func bindPeriod(c *gin.Context) (domain.DateRange, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return domain.DateRange{}, false
	}
	period, err := params.ToRange()
	if err != nil {
		respondError(c, logger, err, "Invalid period")
		return domain.DateRange{}, false
	}
	return period, true
}

// getTrialBalance godoc
// @Summary Trial balance
// @Description Debit and credit totals per account over an optional inclusive date range
// @Tags reports
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid period"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	period, ok := bindPeriod(c)
	if !ok {
		return
	}
	tb, err := h.statementService.TrialBalance(c.Request.Context(), period)
	if err != nil {
		respondError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to compute trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

// getIncomeStatement godoc
// @Summary Income statement
// @Description Income and expense per account with net income
// @Tags reports
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid period"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	period, ok := bindPeriod(c)
	if !ok {
		return
	}
	is, err := h.statementService.IncomeStatement(c.Request.Context(), period)
	if err != nil {
		respondError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to compute income statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(is))
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Assets, liabilities and equity with the accounting-equation discrepancy
// @Tags reports
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid period"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	period, ok := bindPeriod(c)
	if !ok {
		return
	}
	bs, err := h.statementService.BalanceSheet(c.Request.Context(), period)
	if err != nil {
		respondError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to compute balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(bs))
}

// getLiquidity godoc
// @Summary Cash, burn rate and runway
// @Description Only the upper bound of the range is used; runway is null when burn is not positive
// @Tags reports
// @Produce  json
// @Param   to query string false "As-of date (YYYY-MM-DD)"
// @Success 200 {object} dto.LiquidityResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid period"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /reports/liquidity [get]
func (h *reportingHandler) getLiquidity(c *gin.Context) {
	period, ok := bindPeriod(c)
	if !ok {
		return
	}
	report, err := h.liquidityService.Report(c.Request.Context(), period)
	if err != nil {
		respondError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "Failed to compute liquidity")
		return
	}
	c.JSON(http.StatusOK, dto.ToLiquidityResponse(report))
}
