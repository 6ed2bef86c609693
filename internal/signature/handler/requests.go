package handler

import (
	"strings"

	dErrors "contractease/pkg/domain-errors"
	"contractease/pkg/platform/validation"
)

type SignContractRequest struct {
	SignerName     string `json:"signerName"`
	SignerEmail    string `json:"signerEmail"`
	SignatureImage string `json:"signatureImage"`
}

func (r *SignContractRequest) Normalize() {
	if r == nil {
		return
	}
	r.SignerName = strings.TrimSpace(r.SignerName)
	r.SignerEmail = strings.ToLower(strings.TrimSpace(r.SignerEmail))
	r.SignatureImage = strings.TrimSpace(r.SignatureImage)
}

func (r *SignContractRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := validation.CheckRequired("signerName", r.SignerName); err != nil {
		return err
	}
	if err := validation.CheckMaxLength("signerName", r.SignerName, validation.MaxNameLength); err != nil {
		return err
	}
	if err := validation.CheckMaxLength("signerEmail", r.SignerEmail, validation.MaxEmailLength); err != nil {
		return err
	}
	if err := validation.CheckRequired("signatureImage", r.SignatureImage); err != nil {
		return err
	}
	if err := validation.CheckMaxLength("signatureImage", r.SignatureImage, validation.MaxSignatureImageLength); err != nil {
		return err
	}
	return nil
}
