package services

import (
	"context"

	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
)

// SessionSvc issues and verifies single-user session tokens.
type SessionSvc interface {
	// Login checks the shared password and returns a signed session token.
	Login(ctx context.Context, password string) (string, *domain.Session, error)

	// VerifyToken returns the session carried by a valid, unexpired token.
	VerifyToken(ctx context.Context, token string) (*domain.Session, error)
}
