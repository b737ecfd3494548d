package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// investmentHandler handles HTTP requests for investment positions.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func newInvestmentHandler(is portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{investmentService: is}
}

func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)

	investments := rg.Group("/investments")
	{
		investments.GET("", h.listInvestments)
		investments.POST("", h.createInvestment)
		investments.GET("/portfolio", h.getPortfolio)
		investments.PATCH("/:id/price", h.updatePrice)
	}
}

// listInvestments godoc
// @Summary List investments
// @Tags investments
// @Produce json
// @Param fy query string false "Financial year, e.g. 2024-25"
// @Success 200 {object} dto.APIResponse{data=[]domain.Investment}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.FinancialYearQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, logger, err, "ListInvestments")
		return
	}

	investments, err := h.investmentService.ListInvestments(c.Request.Context(), query.FinancialYear)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list investments")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(investments, ""))
}

// createInvestment godoc
// @Summary Open an investment position
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body dto.CreateInvestmentRequest true "Investment"
// @Success 201 {object} dto.APIResponse{data=domain.Investment}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "CreateInvestment")
		return
	}

	inv, err := h.investmentService.CreateInvestment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create investment")
		return
	}

	logger.Info("Investment created", slog.String("investment_id", inv.ID), slog.String("symbol", inv.Symbol))
	c.JSON(http.StatusCreated, dto.SuccessResponse(inv, "Investment created successfully"))
}

// updatePrice godoc
// @Summary Update the market price of a position
// @Description Stores the new price and recomputes value and gain/loss
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Param price body dto.UpdateInvestmentPriceRequest true "New price"
// @Success 200 {object} dto.APIResponse{data=domain.Investment}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /investments/{id}/price [patch]
func (h *investmentHandler) updatePrice(c *gin.Context) {
	investmentID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("investment_id", investmentID))

	var req dto.UpdateInvestmentPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "UpdateInvestmentPrice")
		return
	}

	inv, err := h.investmentService.UpdateInvestmentPrice(c.Request.Context(), investmentID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update investment price")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(inv, "Price updated"))
}

// getPortfolio godoc
// @Summary Portfolio value
// @Description Aggregates cost, market value and gain/loss of every position in the year
// @Tags investments
// @Produce json
// @Param fy query string false "Financial year, e.g. 2024-25"
// @Success 200 {object} dto.APIResponse{data=dto.PortfolioResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /investments/portfolio [get]
func (h *investmentHandler) getPortfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.FinancialYearQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, logger, err, "Portfolio")
		return
	}

	portfolio, err := h.investmentService.Portfolio(c.Request.Context(), query.FinancialYear)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute portfolio")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(portfolio, ""))
}
