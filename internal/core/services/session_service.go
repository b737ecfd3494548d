package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/apperrors"
	"github.com/SscSPs/sheets_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/sheets_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/sheets_ledger_app/internal/platform/config"
	"github.com/SscSPs/sheets_ledger_app/internal/utils"
)

// SessionSubject identifies the single owner of the ledger in session tokens.
const SessionSubject = "owner"

var (
	// ErrPasswordRequired is returned for a login without a password.
	ErrPasswordRequired = apperrors.NewValidationError("Password is required")
	// ErrInvalidPassword is returned when the password does not match.
	ErrInvalidPassword = apperrors.NewAppError("UNAUTHORIZED", "Invalid password", apperrors.ErrUnauthorized)
)

type sessionService struct {
	BaseService
	passwordHash string
	secret       string
	issuer       string
	duration     time.Duration
}

// NewSessionService hashes the configured password once. AUTH_PASSWORD may
// also hold a bcrypt hash. With no password configured every login fails.
func NewSessionService(cfg *config.Config, options ...ServiceOption) (portssvc.SessionSvc, error) {
	svc := &sessionService{
		secret:   cfg.SessionSecret,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
	}
	svc.apply(options)

	hash, err := utils.LoginPasswordHash(cfg.AuthPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash AUTH_PASSWORD: %w", err)
	}
	svc.passwordHash = hash
	return svc, nil
}

var _ portssvc.SessionSvc = (*sessionService)(nil)

func (s *sessionService) Login(ctx context.Context, password string) (string, *domain.Session, error) {
	if password == "" {
		return "", nil, ErrPasswordRequired
	}
	if !utils.PasswordMatches(password, s.passwordHash) {
		s.LogInfo(ctx, "Login rejected")
		return "", nil, ErrInvalidPassword
	}

	token, expiresAt, err := utils.GenerateSessionJWT(SessionSubject, s.secret, s.duration, s.issuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token")
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.LogInfo(ctx, "Login succeeded", slog.Time("expires_at", expiresAt))
	return token, &domain.Session{Subject: SessionSubject, IsAuthenticated: true, ExpiresAt: expiresAt}, nil
}

func (s *sessionService) VerifyToken(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := utils.ParseSessionJWT(token, s.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	session := &domain.Session{
		Subject:         claims.Subject,
		IsAuthenticated: claims.IsAuthenticated,
		ExpiresAt:       claims.ExpiresAt.Time.UTC(),
	}
	if !session.Valid(s.Now()) {
		return nil, fmt.Errorf("%w: session expired", apperrors.ErrUnauthorized)
	}
	return session, nil
}
