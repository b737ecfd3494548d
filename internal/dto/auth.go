package dto

import "time"

// LoginRequest carries the shared password.
type LoginRequest struct {
	Password string `json:"password"`
}

// SessionResponse describes the caller's session. Token is only set on login,
// for clients that send it as a bearer token instead of the cookie.
type SessionResponse struct {
	IsAuthenticated bool       `json:"isAuthenticated"`
	Token           string     `json:"token,omitempty"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
}
