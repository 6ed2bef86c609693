package handler

import (
	"strings"
	"time"

	"contractease/internal/contract/models"
	dErrors "contractease/pkg/domain-errors"
	"contractease/pkg/platform/validation"
)

// HTTP Request DTOs - contain JSON tags for API serialization.
// These are converted to service commands before processing.

// ClausesPayload mirrors the clause toggle switches in the contract form.
// Fields are pointers so an omitted toggle falls back to its own default
// independently of the others.
type ClausesPayload struct {
	Payment         *bool `json:"payment"`
	Liability       *bool `json:"liability"`
	Confidentiality *bool `json:"confidentiality"`
	Termination     *bool `json:"termination"`
}

func (p *ClausesPayload) toModel() models.Clauses {
	clauses := models.DefaultClauses()
	if p.Payment != nil {
		clauses.Payment = *p.Payment
	}
	if p.Liability != nil {
		clauses.Liability = *p.Liability
	}
	if p.Confidentiality != nil {
		clauses.Confidentiality = *p.Confidentiality
	}
	if p.Termination != nil {
		clauses.Termination = *p.Termination
	}
	return clauses
}

type CreateContractRequest struct {
	Title       string          `json:"title"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	DueDate     time.Time       `json:"dueDate"`
	Clauses     *ClausesPayload `json:"clauses"`
	UserID      string          `json:"userId"`
	ClientID    string          `json:"clientId"`
}

func (r *CreateContractRequest) Normalize() {
	if r == nil {
		return
	}
	r.Title = strings.TrimSpace(r.Title)
	r.Type = strings.TrimSpace(r.Type)
	r.Description = strings.TrimSpace(r.Description)
	r.UserID = strings.TrimSpace(r.UserID)
	r.ClientID = strings.TrimSpace(r.ClientID)
}

func (r *CreateContractRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := validation.CheckRequired("title", r.Title); err != nil {
		return err
	}
	if err := validation.CheckMaxLength("title", r.Title, validation.MaxTitleLength); err != nil {
		return err
	}
	if err := validation.CheckRequired("type", r.Type); err != nil {
		return err
	}
	if err := validation.CheckMaxLength("type", r.Type, validation.MaxTypeLength); err != nil {
		return err
	}
	if err := validation.CheckMaxLength("description", r.Description, validation.MaxDescriptionLength); err != nil {
		return err
	}
	if r.Amount < 0 {
		return dErrors.New(dErrors.CodeValidation, "amount must be non-negative")
	}
	if r.DueDate.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "dueDate is required")
	}
	if err := validation.CheckRequired("userId", r.UserID); err != nil {
		return err
	}
	if err := validation.CheckRequired("clientId", r.ClientID); err != nil {
		return err
	}
	return nil
}

// ContractClauses resolves the requested clause toggles against the defaults.
// Each toggle the payload omits keeps its own default.
func (r *CreateContractRequest) ContractClauses() models.Clauses {
	if r.Clauses == nil {
		return models.DefaultClauses()
	}
	return r.Clauses.toModel()
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Normalize() {
	if r == nil {
		return
	}
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

func (r *UpdateStatusRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := validation.CheckRequired("status", r.Status); err != nil {
		return err
	}
	if _, err := models.ParseStatus(r.Status); err != nil {
		return err
	}
	return nil
}
