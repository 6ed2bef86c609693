// Package contract provides contract persistence. The in-memory variant backs
// development mode and tests; PostgreSQL backs production.
package contract

import (
	"context"
	"sort"
	"sync"
	"time"

	"contractease/internal/contract/models"
	id "contractease/pkg/domain"
	"contractease/pkg/platform/sentinel"
)

// ErrNotFound is returned when a contract is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores contracts in memory. All methods return deep copies so
// callers never share mutable state with the store.
type InMemory struct {
	mu        sync.RWMutex
	contracts map[string]*models.Contract
}

// NewInMemory creates an in-memory contract store.
func NewInMemory() *InMemory {
	return &InMemory{
		contracts: make(map[string]*models.Contract),
	}
}

// Create inserts a new contract.
func (s *InMemory) Create(_ context.Context, contract *models.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := contract.ID.String()
	if _, exists := s.contracts[key]; exists {
		return sentinel.ErrConflict
	}
	s.contracts[key] = contract.Clone()
	return nil
}

// FindByID retrieves a contract by its ID.
func (s *InMemory) FindByID(_ context.Context, contractID id.ContractID) (*models.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.contracts[contractID.String()]; ok {
		return c.Clone(), nil
	}
	return nil, ErrNotFound
}

// ListByUser returns contracts created by the user, most recent first.
func (s *InMemory) ListByUser(_ context.Context, userID id.UserID) ([]*models.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*models.Contract, 0)
	for _, c := range s.contracts {
		if c.UserID == userID {
			result = append(result, c.Clone())
		}
	}
	sortByCreatedDesc(result)
	return result, nil
}

// ListByClient returns contracts targeting the client, most recent first.
func (s *InMemory) ListByClient(_ context.Context, clientID id.ClientID) ([]*models.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*models.Contract, 0)
	for _, c := range s.contracts {
		if c.ClientID == clientID {
			result = append(result, c.Clone())
		}
	}
	sortByCreatedDesc(result)
	return result, nil
}

// UpdateStatusIf atomically sets the status (and signedAt) only if the
// contract currently holds the expected status. A miss reports
// sentinel.ErrNoMatch whether the contract is absent or in another status;
// callers disambiguate with a follow-up read.
func (s *InMemory) UpdateStatusIf(_ context.Context, contractID id.ContractID, from, to models.Status, signedAt *time.Time) (*models.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contracts[contractID.String()]
	if !ok || c.Status != from {
		return nil, sentinel.ErrNoMatch
	}
	c.Status = to
	// A nil signedAt leaves the stored timestamp alone.
	if signedAt != nil {
		t := *signedAt
		c.SignedAt = &t
	}
	return c.Clone(), nil
}

func sortByCreatedDesc(contracts []*models.Contract) {
	sort.SliceStable(contracts, func(i, j int) bool {
		return contracts[i].CreatedAt.After(contracts[j].CreatedAt)
	})
}
