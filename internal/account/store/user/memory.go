// Package user provides user account persistence.
package user

import (
	"context"
	"strings"
	"sync"

	"contractease/internal/account/models"
	id "contractease/pkg/domain"
	"contractease/pkg/platform/sentinel"
)

// InMemory stores users in memory with a case-insensitive email index
// enforcing the unique-email rule.
type InMemory struct {
	mu       sync.RWMutex
	users    map[string]*models.User
	emailIdx map[string]string
}

// NewInMemory creates an in-memory user store.
func NewInMemory() *InMemory {
	return &InMemory{
		users:    make(map[string]*models.User),
		emailIdx: make(map[string]string),
	}
}

// Create inserts a new user. A duplicate ID or email reports
// sentinel.ErrConflict.
func (s *InMemory) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := user.ID.String()
	emailKey := strings.ToLower(user.Email)
	if _, exists := s.users[key]; exists {
		return sentinel.ErrConflict
	}
	if _, exists := s.emailIdx[emailKey]; exists {
		return sentinel.ErrConflict
	}
	s.users[key] = user.Clone()
	s.emailIdx[emailKey] = key
	return nil
}

// FindByID retrieves a user by ID.
func (s *InMemory) FindByID(_ context.Context, userID id.UserID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[userID.String()]; ok {
		return u.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

// FindByEmail retrieves a user by email, case-insensitively.
func (s *InMemory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if key, ok := s.emailIdx[strings.ToLower(email)]; ok {
		return s.users[key].Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

// Exists reports whether a user with the given ID exists.
func (s *InMemory) Exists(_ context.Context, userID id.UserID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID.String()]
	return ok, nil
}
