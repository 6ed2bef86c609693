// Package models defines contract domain objects and the status state machine.
package models

import (
	"fmt"
	"time"

	id "contractease/pkg/domain"
	dErrors "contractease/pkg/domain-errors"
	"contractease/pkg/platform/validation"
)

// Status is a contract workflow state.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusPending  Status = "pending"
	StatusSigned   Status = "signed"
	StatusDeclined Status = "declined"
)

// Transitions is the allowed-transition table. Terminal states have no entry.
// Adding a state or an edge is a one-line change here; everything else
// (guards, diagnostics, tests) derives from this map.
var Transitions = map[Status][]Status{
	StatusDraft:   {StatusSent, StatusPending},
	StatusSent:    {StatusSigned, StatusDeclined},
	StatusPending: {StatusSigned, StatusDeclined},
}

// ParseStatus validates a status string from an API input.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusSent, StatusPending, StatusSigned, StatusDeclined:
		return Status(s), nil
	}
	return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown contract status %q", s))
}

// Terminal reports whether the status has no outgoing transitions.
func (s Status) Terminal() bool {
	return len(Transitions[s]) == 0
}

// CanTransition reports whether from → to is an allowed edge.
func CanTransition(from, to Status) bool {
	for _, allowed := range Transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Clauses is the fixed set of toggleable contract clauses. Defaults mirror
// the toggle switches presented to contract authors.
type Clauses struct {
	Payment         bool
	Liability       bool
	Confidentiality bool
	Termination     bool
}

// DefaultClauses returns the clause toggles a fresh contract starts with.
func DefaultClauses() Clauses {
	return Clauses{
		Payment:         true,
		Liability:       false,
		Confidentiality: true,
		Termination:     false,
	}
}

// Contract is a drafted agreement between a user (author) and a client (signer).
// UserID and ClientID are weak references: existence is checked at creation
// time and not enforced afterward. SignedAt is non-nil iff Status is signed.
type Contract struct {
	ID          id.ContractID
	Title       string
	Type        string
	Description string
	Amount      float64
	DueDate     time.Time
	Clauses     Clauses
	Status      Status
	UserID      id.UserID
	ClientID    id.ClientID
	CreatedAt   time.Time
	SignedAt    *time.Time
}

// NewContract constructs a draft contract, enforcing model-level invariants.
func NewContract(contractID id.ContractID, title, contractType, description string, amount float64, dueDate time.Time, clauses Clauses, userID id.UserID, clientID id.ClientID, now time.Time) (*Contract, error) {
	if err := validation.CheckRequired("title", title); err != nil {
		return nil, err
	}
	if err := validation.CheckMaxLength("title", title, validation.MaxTitleLength); err != nil {
		return nil, err
	}
	if err := validation.CheckRequired("type", contractType); err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "amount must be non-negative")
	}
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "user ID is required")
	}
	if clientID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "client ID is required")
	}

	return &Contract{
		ID:          contractID,
		Title:       title,
		Type:        contractType,
		Description: description,
		Amount:      amount,
		DueDate:     dueDate,
		Clauses:     clauses,
		Status:      StatusDraft,
		UserID:      userID,
		ClientID:    clientID,
		CreatedAt:   now,
	}, nil
}

// Clone returns a deep copy so callers cannot observe later store mutations.
func (c *Contract) Clone() *Contract {
	if c == nil {
		return nil
	}
	cp := *c
	if c.SignedAt != nil {
		signedAt := *c.SignedAt
		cp.SignedAt = &signedAt
	}
	return &cp
}
