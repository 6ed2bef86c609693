package service

import (
	"context"
	"time"

	"contractease/internal/contract/models"
	id "contractease/pkg/domain"
)

//go:generate mockgen -source=contracts.go -destination=mocks/mocks.go -package=mocks ContractStore,UserDirectory,ClientDirectory

// ContractStore persists contracts. Implementations must make UpdateStatusIf
// atomic with respect to its filter: the document changes only if it currently
// holds the expected status, and "no document matched" is reported as
// sentinel.ErrNoMatch whether the contract is absent or in another status.
type ContractStore interface {
	Create(ctx context.Context, contract *models.Contract) error
	FindByID(ctx context.Context, contractID id.ContractID) (*models.Contract, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*models.Contract, error)
	ListByClient(ctx context.Context, clientID id.ClientID) ([]*models.Contract, error)
	// UpdateStatusIf sets status to `to` (and signedAt, which may be nil) only
	// if the contract currently holds status `from`, in a single atomic
	// operation. It returns the post-update document.
	UpdateStatusIf(ctx context.Context, contractID id.ContractID, from, to models.Status, signedAt *time.Time) (*models.Contract, error)
}

// UserDirectory resolves user references at contract-creation time.
type UserDirectory interface {
	UserExists(ctx context.Context, userID id.UserID) (bool, error)
}

// ClientDirectory resolves client references at contract-creation time.
type ClientDirectory interface {
	ClientExists(ctx context.Context, clientID id.ClientID) (bool, error)
}
