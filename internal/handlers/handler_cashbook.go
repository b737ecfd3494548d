package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type cashbookHandler struct {
	cashbookService portssvc.CashbookSvcFacade
}

// registerCashbookRoutes registers the bank cashbook routes.
func registerCashbookRoutes(rg *gin.RouterGroup, cashbookService portssvc.CashbookSvcFacade) {
	h := &cashbookHandler{cashbookService: cashbookService}

	cashbook := rg.Group("/cashbook")
	{
		cashbook.GET("", h.listEntries)
		cashbook.POST("", h.createEntry)
		cashbook.GET("/cash-flow", h.cashFlow)
	}
}

// listEntries godoc
// @Summary List cashbook entries
// @Description Lists bank movements in date order with their running balance
// @Tags cashbook
// @Produce json
// @Param fy query string false "Financial year, e.g. 2024-25"
// @Param bankAccount query string false "Only this bank account"
// @Param startingBalance query number false "Balance before the first entry (with bankAccount)"
// @Success 200 {object} dto.APIResponse{data=[]domain.CashbookEntry}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /cashbook [get]
func (h *cashbookHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCashbookParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "ListCashbookEntries")
		return
	}

	entries, err := h.cashbookService.ListCashbookEntries(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list cashbook entries")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(entries, ""))
}

// createEntry godoc
// @Summary Record a bank movement
// @Tags cashbook
// @Accept json
// @Produce json
// @Param entry body dto.CreateCashbookEntryRequest true "Cashbook entry"
// @Success 201 {object} dto.APIResponse{data=domain.CashbookEntry}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /cashbook [post]
func (h *cashbookHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCashbookEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "CreateCashbookEntry")
		return
	}

	entry, err := h.cashbookService.CreateCashbookEntry(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create cashbook entry")
		return
	}

	logger.Info("Cashbook entry created", slog.String("entry_id", entry.ID), slog.String("bank_account", entry.BankAccount))
	c.JSON(http.StatusCreated, dto.SuccessResponse(entry, "Cashbook entry created successfully"))
}

// cashFlow godoc
// @Summary Cash flow of the cashbook
// @Tags cashbook
// @Produce json
// @Param fy query string false "Financial year, e.g. 2024-25"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=accounting.CashFlow}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /cashbook/cash-flow [get]
func (h *cashbookHandler) cashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.CashFlowParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "CashFlow")
		return
	}

	flow, err := h.cashbookService.CashFlow(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute cash flow")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(flow, ""))
}
