package domain

import "time"

// Session is the payload carried by a signed session token.
type Session struct {
	Subject         string    `json:"subject,omitempty"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	ExpiresAt       time.Time `json:"expiresAt"`
}

// Valid reports whether the session is authenticated and unexpired at now.
func (s Session) Valid(now time.Time) bool {
	return s.IsAuthenticated && now.Before(s.ExpiresAt)
}
