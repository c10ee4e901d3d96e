// Package credentials provides a CredentialStore backed by static
// configuration. Clients and their bcrypt hashes come from API_CLIENTS.
package credentials

import (
	"context"
	"fmt"
	"strings"

	"github.com/99minutos/eld-logs/internal/core/domain"
)

// Store is an immutable in-memory client registry.
type Store struct {
	clients map[string]domain.Client
}

// NewStore builds a Store from id→hash pairs. Ids listed in admins get the
// admin role, every other client gets the client role. An admin id without a
// hash is a configuration error.
func NewStore(hashes map[string]string, admins []string) (*Store, error) {
	clients := make(map[string]domain.Client, len(hashes))
	for id, hash := range hashes {
		id = strings.TrimSpace(id)
		if id == "" || hash == "" {
			return nil, fmt.Errorf("credentials: client %q has no id or hash", id)
		}
		clients[id] = domain.Client{ID: id, SecretHash: hash, Role: domain.RoleClient}
	}

	for _, id := range admins {
		id = strings.TrimSpace(id)
		c, ok := clients[id]
		if !ok {
			return nil, fmt.Errorf("credentials: admin %q is not a configured client", id)
		}
		c.Role = domain.RoleAdmin
		clients[id] = c
	}

	return &Store{clients: clients}, nil
}

func (s *Store) FindClient(_ context.Context, clientID string) (*domain.Client, error) {
	c, ok := s.clients[clientID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return &c, nil
}

// Len reports how many clients are registered.
func (s *Store) Len() int { return len(s.clients) }
