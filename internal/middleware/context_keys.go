package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// subjectKey holds the subject of the validated session token.
	subjectKey = contextKey("sessionSubject")
	// sessionExpiryKey holds the expiry of the validated session token.
	sessionExpiryKey = contextKey("sessionExpiresAt")
)

// GetSubjectFromContext retrieves the authenticated session subject from the Gin context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	subjectVal, exists := c.Get(string(subjectKey))
	if !exists {
		// check in the request context as well
		if v, ok := c.Request.Context().Value(subjectKey).(string); ok {
			return v, true
		}
		return "", false
	}

	subject, ok := subjectVal.(string)
	if !ok {
		return "", false
	}
	return subject, true
}

// GetSessionExpiryFromContext returns the expiry of the session that authorized the request.
func GetSessionExpiryFromContext(c *gin.Context) (time.Time, bool) {
	v, exists := c.Get(string(sessionExpiryKey))
	if !exists {
		return time.Time{}, false
	}
	expiresAt, ok := v.(time.Time)
	return expiresAt, ok
}
