package handler

import (
	"time"

	"contractease/internal/contract/models"
)

// ClausesResponse carries the resolved clause toggles of a stored contract.
type ClausesResponse struct {
	Payment         bool `json:"payment"`
	Liability       bool `json:"liability"`
	Confidentiality bool `json:"confidentiality"`
	Termination     bool `json:"termination"`
}

// ContractResponse is the full contract document returned by the API.
type ContractResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Type        string          `json:"type"`
	Description string          `json:"description,omitempty"`
	Amount      float64         `json:"amount"`
	DueDate     time.Time       `json:"dueDate"`
	Clauses     ClausesResponse `json:"clauses"`
	Status      string          `json:"status"`
	UserID      string          `json:"userId"`
	ClientID    string          `json:"clientId"`
	CreatedAt   time.Time       `json:"createdAt"`
	SignedAt    *time.Time      `json:"signedAt,omitempty"`
}

func toContractResponse(c *models.Contract) ContractResponse {
	return ContractResponse{
		ID:          c.ID.String(),
		Title:       c.Title,
		Type:        c.Type,
		Description: c.Description,
		Amount:      c.Amount,
		DueDate:     c.DueDate,
		Clauses: ClausesResponse{
			Payment:         c.Clauses.Payment,
			Liability:       c.Clauses.Liability,
			Confidentiality: c.Clauses.Confidentiality,
			Termination:     c.Clauses.Termination,
		},
		Status:    string(c.Status),
		UserID:    c.UserID.String(),
		ClientID:  c.ClientID.String(),
		CreatedAt: c.CreatedAt,
		SignedAt:  c.SignedAt,
	}
}

func toContractListResponse(contracts []*models.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, toContractResponse(c))
	}
	return out
}
