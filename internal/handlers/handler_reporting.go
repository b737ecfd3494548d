package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports and categories
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/net-worth", h.getNetWorth)
		reports.GET("/expenses-by-category", h.getExpensesByCategory)
		reports.GET("/cash-flow", h.getCashFlow)
		reports.GET("/monthly", h.getMonthly)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/income-statement", h.getIncomeStatement)
	}
	rg.GET("/categories", h.listCategories)
}

// bindReportParams binds the shared report query, answering 400 itself on failure.
func bindReportParams(c *gin.Context, logger *slog.Logger, action string) (dto.ReportParams, bool) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, action)
		return params, false
	}
	return params, true
}

// getDashboard godoc
// @Summary Dashboard
// @Description Summary figures, recent transactions, expenses by category, portfolio and monthly trend
// @Tags reports
// @Produce json
// @Param fy query string false "Financial year, e.g. 2024-25"
// @Param month query string false "Month for the monthly figures (YYYY-MM)"
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindReportParams(c, logger, "Dashboard")
	if !ok {
		return
	}

	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dashboard, ""))
}

// getNetWorth godoc
// @Summary Net worth
// @Tags reports
// @Produce json
// @Param fy query string false "Financial year, e.g. 2024-25"
// @Success 200 {object} dto.APIResponse{data=accounting.NetWorth}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /reports/net-worth [get]
func (h *reportingHandler) getNetWorth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindReportParams(c, logger, "NetWorth")
	if !ok {
		return
	}

	netWorth, err := h.reportingService.NetWorth(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute net worth")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(netWorth, ""))
}

// getExpensesByCategory godoc
// @Summary Expenses by category
// @Tags reports
// @Produce json
// @Param fy query string false "Financial year, e.g. 2024-25"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]domain.CategoryAmount}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /reports/expenses-by-category [get]
func (h *reportingHandler) getExpensesByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindReportParams(c, logger, "ExpensesByCategory")
	if !ok {
		return
	}

	categories, err := h.reportingService.ExpensesByCategory(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute expenses by category")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(categories, ""))
}

// getCashFlow godoc
// @Summary Cash flow
// @Tags reports
// @Produce json
// @Param fy query string false "Financial year, e.g. 2024-25"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=accounting.CashFlow}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindReportParams(c, logger, "CashFlow")
	if !ok {
		return
	}

	flow, err := h.reportingService.CashFlow(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute cash flow")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(flow, ""))
}

// getMonthly godoc
// @Summary Monthly income and expenses
// @Tags reports
// @Produce json
// @Param month query string false "Month (YYYY-MM), the current month by default"
// @Success 200 {object} dto.APIResponse{data=dto.MonthlyReportResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthly(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindReportParams(c, logger, "Monthly")
	if !ok {
		return
	}

	monthly, err := h.reportingService.Monthly(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute monthly report")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(monthly, ""))
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Tags reports
// @Produce json
// @Param fy query string false "Financial year, e.g. 2024-25"
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.APIResponse{data=domain.BalanceSheet}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindReportParams(c, logger, "BalanceSheet")
	if !ok {
		return
	}

	sheet, err := h.reportingService.BalanceSheet(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate balance sheet")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(sheet, ""))
}

// getIncomeStatement godoc
// @Summary Income statement
// @Description Income and expenses per account over a period, the whole financial year by default
// @Tags reports
// @Produce json
// @Param fy query string false "Financial year, e.g. 2024-25"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=domain.IncomeStatement}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindReportParams(c, logger, "IncomeStatement")
	if !ok {
		return
	}

	statement, err := h.reportingService.IncomeStatement(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate income statement")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(statement, ""))
}

// listCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]domain.Category}
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *reportingHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.reportingService.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(categories, ""))
}
