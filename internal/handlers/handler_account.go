package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.POST("/code", h.generateAccountCode)
		accounts.GET("/:id", h.getAccount)
		accounts.PATCH("/:id", h.updateAccount)
		accounts.GET("/:id/balance", h.getAccountBalance)
		accounts.POST("/:id/recalculate", h.recalculateAccountBalance)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the accounts of a financial year (the selected one by default)
// @Tags accounts
// @Produce json
// @Param fy query string false "Financial year, e.g. 2024-25"
// @Param type query string false "Account type"
// @Param activeOnly query bool false "Only active accounts"
// @Success 200 {object} dto.APIResponse{data=[]dto.AccountResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "ListAccounts")
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list accounts")
		return
	}

	logger.Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToListAccountResponse(accounts), ""))
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account; the code is generated from the type when no id is given
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.APIResponse{data=dto.AccountResponse}
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Account code already in use"
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "CreateAccount")
		return
	}

	logger.Info("Received request to create account", slog.String("account_name", req.Name), slog.String("account_type", string(req.Type)))

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", account.ID))
	c.JSON(http.StatusCreated, dto.SuccessResponse(dto.ToAccountResponse(account), "Account created successfully"))
}

// generateAccountCode godoc
// @Summary Propose an account code
// @Description Returns the next free code in the range of the account type
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.GenerateAccountCodeRequest true "Account type"
// @Success 200 {object} dto.APIResponse{data=dto.AccountCodeResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /accounts/code [post]
func (h *accountHandler) generateAccountCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GenerateAccountCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "GenerateAccountCode")
		return
	}

	code, err := h.accountService.GenerateAccountCode(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate account code")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.AccountCodeResponse{Code: code}, ""))
}

// getAccount godoc
// @Summary Get an account by code
// @Tags accounts
// @Produce json
// @Param id path string true "Account code"
// @Success 200 {object} dto.APIResponse{data=dto.AccountResponse}
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	accountID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_account_id", accountID))

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToAccountResponse(account), ""))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates the name, sub-type or active flag of an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account code"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.AccountResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /accounts/{id} [patch]
func (h *accountHandler) updateAccount(c *gin.Context) {
	accountID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_account_id", accountID))

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "UpdateAccount")
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), accountID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update account")
		return
	}

	logger.Info("Account updated successfully")
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToAccountResponse(account), "Account updated successfully"))
}

// getAccountBalance godoc
// @Summary Compare stored and computed balance
// @Description Recomputes the balance from the journal without storing it
// @Tags accounts
// @Produce json
// @Param id path string true "Account code"
// @Success 200 {object} dto.APIResponse{data=dto.AccountBalanceResponse}
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /accounts/{id}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	accountID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_account_id", accountID))

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to calculate balance")
		return
	}
	computed, err := h.accountService.CalculateAccountBalance(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to calculate balance")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.AccountBalanceResponse{
		AccountID: accountID,
		Stored:    account.Balance,
		Computed:  computed,
		InSync:    account.Balance.Equal(computed),
	}, ""))
}

// recalculateAccountBalance godoc
// @Summary Recalculate an account balance
// @Description Recomputes the balance from the journal and stores it
// @Tags accounts
// @Produce json
// @Param id path string true "Account code"
// @Success 200 {object} dto.APIResponse{data=dto.AccountResponse}
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /accounts/{id}/recalculate [post]
func (h *accountHandler) recalculateAccountBalance(c *gin.Context) {
	accountID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("target_account_id", accountID))

	account, err := h.accountService.RecalculateAccountBalance(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to recalculate balance")
		return
	}

	logger.Info("Account balance recalculated", slog.String("balance", account.Balance.String()))
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.ToAccountResponse(account), "Balance recalculated"))
}
