package service

import (
	"context"
	"time"

	contractmodels "contractease/internal/contract/models"
	"contractease/internal/signature/models"
	id "contractease/pkg/domain"
)

//go:generate mockgen -source=signatures.go -destination=mocks/mocks.go -package=mocks SignatureStore,ContractFinalizer

// SignatureStore persists signature records. A contract carries at most one
// signature; a second insert for the same contract reports
// sentinel.ErrConflict.
type SignatureStore interface {
	Create(ctx context.Context, signature *models.Signature) error
	FindByContract(ctx context.Context, contractID id.ContractID) (*models.Signature, error)
}

// ContractFinalizer is the slice of the contract store that the signing flow
// needs: the atomic conditional status update that decides the race, and the
// read used to diagnose a miss.
type ContractFinalizer interface {
	FindByID(ctx context.Context, contractID id.ContractID) (*contractmodels.Contract, error)
	UpdateStatusIf(ctx context.Context, contractID id.ContractID, from, to contractmodels.Status, signedAt *time.Time) (*contractmodels.Contract, error)
}
