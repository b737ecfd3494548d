package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	"github.com/SscSPs/sheets_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// SessionVerifier validates a session token and returns the session it carries.
type SessionVerifier interface {
	VerifyToken(ctx context.Context, token string) (*domain.Session, error)
}

// TokenFromRequest extracts a session token from the named cookie, falling back
// to an "Authorization: Bearer" header.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AuthMiddleware creates a Gin middleware handler that only lets requests
// carrying a valid session through.
func AuthMiddleware(verifier SessionVerifier, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := TokenFromRequest(c, cookieName)
		if tokenString == "" {
			logger.Warn("Session token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse("Unauthorized"))
			return
		}

		session, err := verifier.VerifyToken(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warn("Invalid session token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse("Unauthorized"))
			return
		}

		ctx := context.WithValue(c.Request.Context(), subjectKey, session.Subject)
		enrichedLogger := logger.With(slog.String("session_subject", session.Subject))
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))
		c.Set(string(subjectKey), session.Subject)
		c.Set(string(sessionExpiryKey), session.ExpiresAt)
		c.Set(string(loggerKey), enrichedLogger)

		c.Next()
	}
}
