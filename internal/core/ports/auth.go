package ports

import (
	"context"
	"time"

	"github.com/99minutos/eld-logs/internal/core/domain"
)

// CredentialStore looks up API clients by id.
type CredentialStore interface {
	FindClient(ctx context.Context, clientID string) (*domain.Client, error)
}

// TokenResult is returned after a successful credential exchange.
type TokenResult struct {
	Token     string
	ExpiresAt time.Time
	Client    *domain.Client
}

type AuthService interface {
	IssueToken(ctx context.Context, clientID, secret string) (*TokenResult, error)
}
