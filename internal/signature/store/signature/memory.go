// Package signature provides signature persistence. The in-memory variant
// backs development mode and tests; PostgreSQL backs production.
package signature

import (
	"context"
	"sync"

	"contractease/internal/signature/models"
	id "contractease/pkg/domain"
	"contractease/pkg/platform/sentinel"
)

// ErrNotFound is returned when a signature is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores signatures in memory, keyed by contract so the one
// signature per contract rule holds here exactly as it does under the unique
// index in PostgreSQL.
type InMemory struct {
	mu         sync.RWMutex
	byContract map[string]*models.Signature
}

// NewInMemory creates an in-memory signature store.
func NewInMemory() *InMemory {
	return &InMemory{
		byContract: make(map[string]*models.Signature),
	}
}

// Create inserts a signature. A second signature for the same contract
// reports sentinel.ErrConflict.
func (s *InMemory) Create(_ context.Context, signature *models.Signature) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := signature.ContractID.String()
	if _, exists := s.byContract[key]; exists {
		return sentinel.ErrConflict
	}
	s.byContract[key] = signature.Clone()
	return nil
}

// FindByContract retrieves the signature attached to a contract.
func (s *InMemory) FindByContract(_ context.Context, contractID id.ContractID) (*models.Signature, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sig, ok := s.byContract[contractID.String()]; ok {
		return sig.Clone(), nil
	}
	return nil, ErrNotFound
}
