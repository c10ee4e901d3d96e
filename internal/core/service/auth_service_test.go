package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/eld-logs/internal/core/domain"
)

type stubCredentialStore struct {
	clients map[string]*domain.Client
	err     error
}

func newStubCredentialStore(t *testing.T, id, secret, role string) *stubCredentialStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash secret: %v", err)
	}
	return &stubCredentialStore{clients: map[string]*domain.Client{
		id: {ID: id, SecretHash: string(hash), Role: role},
	}}
}

func (s *stubCredentialStore) FindClient(_ context.Context, id string) (*domain.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func TestAuthService_IssueToken_Success(t *testing.T) {
	store := newStubCredentialStore(t, "dispatch-ui", "s3cret", domain.RoleAdmin)
	svc := NewAuthService(store, "secret", time.Hour)

	res, err := svc.IssueToken(context.Background(), "dispatch-ui", "s3cret")
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if res.Client == nil || res.Client.ID != "dispatch-ui" {
		t.Fatalf("unexpected client: %+v", res.Client)
	}
	if d := time.Until(res.ExpiresAt); d <= 0 || d > time.Hour {
		t.Fatalf("unexpected expiry: %v", res.ExpiresAt)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(res.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["client_id"] != "dispatch-ui" {
		t.Fatalf("expected client_id claim, got %v", claims["client_id"])
	}
}

func TestAuthService_IssueToken_InvalidSecret(t *testing.T) {
	store := newStubCredentialStore(t, "dispatch-ui", "goodpass", domain.RoleClient)
	svc := NewAuthService(store, "secret", time.Hour)

	if _, err := svc.IssueToken(context.Background(), "dispatch-ui", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_IssueToken_UnknownClient(t *testing.T) {
	store := newStubCredentialStore(t, "dispatch-ui", "pass", domain.RoleClient)
	svc := NewAuthService(store, "secret", time.Hour)

	if _, err := svc.IssueToken(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown client, got %v", err)
	}
}

func TestAuthService_IssueToken_MissingFields(t *testing.T) {
	store := newStubCredentialStore(t, "dispatch-ui", "pass", domain.RoleClient)
	svc := NewAuthService(store, "secret", time.Hour)

	if _, err := svc.IssueToken(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.IssueToken(context.Background(), "dispatch-ui", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_IssueToken_StoreError(t *testing.T) {
	boom := errors.New("store down")
	store := &stubCredentialStore{err: boom}
	svc := NewAuthService(store, "secret", time.Hour)

	if _, err := svc.IssueToken(context.Background(), "dispatch-ui", "pass"); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}
