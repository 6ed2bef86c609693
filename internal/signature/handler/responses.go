package handler

import (
	"time"

	"contractease/internal/signature/models"
)

type SignatureResponse struct {
	ID             string    `json:"id"`
	ContractID     string    `json:"contractId"`
	SignerName     string    `json:"signerName"`
	SignerEmail    string    `json:"signerEmail,omitempty"`
	SignatureImage string    `json:"signatureImage"`
	SignerDevice   string    `json:"signerDevice,omitempty"`
	SignedAt       time.Time `json:"signedAt"`
}

func toSignatureResponse(s *models.Signature) SignatureResponse {
	return SignatureResponse{
		ID:             s.ID.String(),
		ContractID:     s.ContractID.String(),
		SignerName:     s.SignerName,
		SignerEmail:    s.SignerEmail,
		SignatureImage: s.SignatureImage,
		SignerDevice:   s.SignerDevice,
		SignedAt:       s.SignedAt,
	}
}
