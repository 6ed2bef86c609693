// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "contractease/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing a UserID where a ClientID is expected.
type (
	UserID      uuid.UUID
	ClientID    uuid.UUID
	ContractID  uuid.UUID
	SignatureID uuid.UUID
)

// New functions - generate fresh identifiers at creation sites.

func NewUserID() UserID           { return UserID(uuid.New()) }
func NewClientID() ClientID       { return ClientID(uuid.New()) }
func NewContractID() ContractID   { return ContractID(uuid.New()) }
func NewSignatureID() SignatureID { return SignatureID(uuid.New()) }

// Parse functions - use at trust boundaries (handlers, API inputs).
// A malformed identifier fails here, before any store access.

func ParseUserID(s string) (UserID, error) {
	id, err := parseUUID(s, "user ID")
	return UserID(id), err
}

func ParseClientID(s string) (ClientID, error) {
	id, err := parseUUID(s, "client ID")
	return ClientID(id), err
}

func ParseContractID(s string) (ContractID, error) {
	id, err := parseUUID(s, "contract ID")
	return ContractID(id), err
}

// String methods - for logging and serialization.

func (id UserID) String() string      { return uuid.UUID(id).String() }
func (id ClientID) String() string    { return uuid.UUID(id).String() }
func (id ContractID) String() string  { return uuid.UUID(id).String() }
func (id SignatureID) String() string { return uuid.UUID(id).String() }

// IsNil checks - used for service-layer validation.

func (id UserID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id ClientID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id ContractID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id SignatureID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// parseUUID is the shared validation logic.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	return id, nil
}
