package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/ports"
)

// AuthService exchanges client credentials for signed access tokens.
type AuthService struct {
	store     ports.CredentialStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(store ports.CredentialStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// IssueToken verifies the client secret against its bcrypt hash and returns
// an HS256 token. Unknown clients and wrong secrets are indistinguishable.
func (s *AuthService) IssueToken(ctx context.Context, clientID, secret string) (*ports.TokenResult, error) {
	if clientID == "" || secret == "" {
		return nil, domain.ErrInvalidCredentials
	}

	client, err := s.store.FindClient(ctx, clientID)
	if errors.Is(err, domain.ErrClientNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(client.SecretHash), []byte(secret)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	token, err := s.generateToken(client, expiresAt)
	if err != nil {
		return nil, err
	}

	return &ports.TokenResult{Token: token, ExpiresAt: expiresAt, Client: client}, nil
}

func (s *AuthService) generateToken(client *domain.Client, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"client_id": client.ID,
		"role":      client.Role,
		"exp":       expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
