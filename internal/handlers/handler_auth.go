package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/SscSPs/sheets_ledger_app/internal/middleware"
	"github.com/SscSPs/sheets_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles session login, logout and inspection.
type AuthHandler struct {
	sessionService  portssvc.SessionSvc
	cookieName      string
	sessionDuration time.Duration
	secureCookie    bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ss portssvc.SessionSvc, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		sessionService:  ss,
		cookieName:      cfg.SessionCookieName,
		sessionDuration: cfg.SessionDuration,
		secureCookie:    cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the public session routes. Only login is rate limited.
func registerAuthRoutes(r *gin.Engine, h *AuthHandler, loginLimit gin.HandlerFunc) {
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", loginLimit, h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", h.Session)
	}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, value, maxAge, "/", "", h.secureCookie, true)
}

// Login godoc
// @Summary Log in
// @Description Checks the shared password and starts a session (cookie plus token)
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Password"
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 429 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "Login")
		return
	}

	token, session, err := h.sessionService.Login(c.Request.Context(), req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to log in")
		return
	}

	h.setSessionCookie(c, token, int(h.sessionDuration.Seconds()))
	logger.Info("Session started", slog.Time("expires_at", session.ExpiresAt))
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.SessionResponse{
		IsAuthenticated: true,
		Token:           token,
		ExpiresAt:       &session.ExpiresAt,
	}, "Login successful"))
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, dto.SuccessResponse(nil, "Logged out"))
}

// Session godoc
// @Summary Current session
// @Description Reports whether the request carries a valid session; never fails with 401
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse}
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	token := middleware.TokenFromRequest(c, h.cookieName)
	if token == "" {
		c.JSON(http.StatusOK, dto.SuccessResponse(dto.SessionResponse{IsAuthenticated: false}, ""))
		return
	}

	session, err := h.sessionService.VerifyToken(c.Request.Context(), token)
	if err != nil {
		logger.Debug("Session token rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.SuccessResponse(dto.SessionResponse{IsAuthenticated: false}, ""))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse(dto.SessionResponse{
		IsAuthenticated: session.IsAuthenticated,
		ExpiresAt:       &session.ExpiresAt,
	}, ""))
}
