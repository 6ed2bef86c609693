// Package client provides client account persistence.
package client

import (
	"context"
	"strings"
	"sync"

	"contractease/internal/account/models"
	id "contractease/pkg/domain"
	"contractease/pkg/platform/sentinel"
)

// InMemory stores clients in memory with a case-insensitive email index
// enforcing the unique-email rule.
type InMemory struct {
	mu       sync.RWMutex
	clients  map[string]*models.Client
	emailIdx map[string]string
}

// NewInMemory creates an in-memory client store.
func NewInMemory() *InMemory {
	return &InMemory{
		clients:  make(map[string]*models.Client),
		emailIdx: make(map[string]string),
	}
}

// Create inserts a new client. A duplicate ID or email reports
// sentinel.ErrConflict.
func (s *InMemory) Create(_ context.Context, client *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := client.ID.String()
	emailKey := strings.ToLower(client.Email)
	if _, exists := s.clients[key]; exists {
		return sentinel.ErrConflict
	}
	if _, exists := s.emailIdx[emailKey]; exists {
		return sentinel.ErrConflict
	}
	s.clients[key] = client.Clone()
	s.emailIdx[emailKey] = key
	return nil
}

// FindByID retrieves a client by ID.
func (s *InMemory) FindByID(_ context.Context, clientID id.ClientID) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.clients[clientID.String()]; ok {
		return c.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

// FindByEmail retrieves a client by email, case-insensitively.
func (s *InMemory) FindByEmail(_ context.Context, email string) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if key, ok := s.emailIdx[strings.ToLower(email)]; ok {
		return s.clients[key].Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

// Exists reports whether a client with the given ID exists.
func (s *InMemory) Exists(_ context.Context, clientID id.ClientID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.clients[clientID.String()]
	return ok, nil
}
