package service

import (
	"time"

	"contractease/internal/contract/models"
	id "contractease/pkg/domain"
)

// CreateContractCommand carries validated input for contract creation.
// Handlers build it from the HTTP DTO after normalization.
type CreateContractCommand struct {
	Title       string
	Type        string
	Description string
	Amount      float64
	DueDate     time.Time
	Clauses     models.Clauses
	UserID      id.UserID
	ClientID    id.ClientID
}
