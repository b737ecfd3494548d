package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type financialYearHandler struct {
	financialYearService portssvc.FinancialYearSvc
}

func registerFinancialYearRoutes(rg *gin.RouterGroup, fys portssvc.FinancialYearSvc) {
	h := &financialYearHandler{financialYearService: fys}

	fy := rg.Group("/financial-year")
	{
		fy.GET("", h.listFinancialYears)
		fy.PUT("/selected", h.selectFinancialYear)
	}
}

func (h *financialYearHandler) response(c *gin.Context) dto.FinancialYearsResponse {
	return dto.FinancialYearsResponse{
		Selected: h.financialYearService.SelectedFinancialYear(),
		Current:  h.financialYearService.CurrentFinancialYear(),
		Years:    h.financialYearService.ListFinancialYears(c.Request.Context()),
	}
}

// listFinancialYears godoc
// @Summary Selectable financial years
// @Tags financial-year
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.FinancialYearsResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /financial-year [get]
func (h *financialYearHandler) listFinancialYears(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SuccessResponse(h.response(c), ""))
}

// selectFinancialYear godoc
// @Summary Select the working financial year
// @Description Requests without an explicit fy use the selected year
// @Tags financial-year
// @Accept json
// @Produce json
// @Param request body dto.SelectFinancialYearRequest true "Year label, e.g. 2024-25"
// @Success 200 {object} dto.APIResponse{data=dto.FinancialYearsResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /financial-year/selected [put]
func (h *financialYearHandler) selectFinancialYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SelectFinancialYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "SelectFinancialYear")
		return
	}

	if err := h.financialYearService.SelectFinancialYear(c.Request.Context(), req.Year); err != nil {
		respondServiceError(c, logger, err, "Failed to select financial year")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(h.response(c), "Financial year selected"))
}
