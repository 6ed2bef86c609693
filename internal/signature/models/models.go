// Package models defines the signature record attached to a signed contract.
package models

import (
	"time"

	id "contractease/pkg/domain"
	dErrors "contractease/pkg/domain-errors"
)

// Signature is the immutable proof that a contract was signed. Exactly one
// signature exists per signed contract, and none for contracts in any other
// status.
type Signature struct {
	ID             id.SignatureID
	ContractID     id.ContractID
	SignerName     string
	SignerEmail    string
	SignatureImage string
	SignerDevice   string
	SignedAt       time.Time
}

// NewSignature builds a signature record for a contract.
func NewSignature(signatureID id.SignatureID, contractID id.ContractID, signerName, signerEmail, signatureImage, signerDevice string, signedAt time.Time) (*Signature, error) {
	if contractID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "contract ID is required")
	}
	if signerName == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "signer name is required")
	}
	if signatureImage == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "signature image is required")
	}
	return &Signature{
		ID:             signatureID,
		ContractID:     contractID,
		SignerName:     signerName,
		SignerEmail:    signerEmail,
		SignatureImage: signatureImage,
		SignerDevice:   signerDevice,
		SignedAt:       signedAt,
	}, nil
}

// Clone returns a deep copy.
func (s *Signature) Clone() *Signature {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}
