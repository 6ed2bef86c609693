// Package service implements the contract lifecycle engine: creation with
// reference validation, reads, and atomic race-free status transitions.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	contractmetrics "contractease/internal/contract/metrics"
	"contractease/internal/contract/models"
	"contractease/internal/platform/tracer"
	id "contractease/pkg/domain"
	dErrors "contractease/pkg/domain-errors"
	"contractease/pkg/platform/sentinel"
	"contractease/pkg/requestcontext"
)

// ContractService orchestrates the contract lifecycle.
type ContractService struct {
	contracts ContractStore
	users     UserDirectory
	clients   ClientDirectory
	logger    *slog.Logger
	metrics   *contractmetrics.Metrics
	tracer    tracer.Tracer
}

// New constructs the lifecycle engine.
func New(contracts ContractStore, users UserDirectory, clients ClientDirectory, opts ...Option) *ContractService {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.tracer == nil {
		cfg.tracer = tracer.Noop()
	}
	return &ContractService{
		contracts: contracts,
		users:     users,
		clients:   clients,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
		tracer:    cfg.tracer,
	}
}

// Create validates the referenced user and client exist, then inserts a new
// draft contract. The only side effect is the single insert: a failed
// reference check inserts nothing.
func (s *ContractService) Create(ctx context.Context, cmd *CreateContractCommand) (*models.Contract, error) {
	if cmd == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "command is required")
	}
	if cmd.UserID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "user ID is required")
	}
	if cmd.ClientID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "client ID is required")
	}

	exists, err := s.users.UserExists(ctx, cmd.UserID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "user lookup failed")
	}
	if !exists {
		return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
	}

	exists, err = s.clients.ClientExists(ctx, cmd.ClientID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "client lookup failed")
	}
	if !exists {
		return nil, dErrors.New(dErrors.CodeNotFound, "client not found")
	}

	contract, err := models.NewContract(id.NewContractID(), cmd.Title, cmd.Type, cmd.Description,
		cmd.Amount, cmd.DueDate, cmd.Clauses, cmd.UserID, cmd.ClientID, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}

	if err := s.contracts.Create(ctx, contract); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to create contract")
	}

	if s.metrics != nil {
		s.metrics.IncrementContractsCreated()
	}
	return contract, nil
}

// GetByID retrieves a single contract.
func (s *ContractService) GetByID(ctx context.Context, contractID id.ContractID) (*models.Contract, error) {
	if contractID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "contract ID is required")
	}
	contract, err := s.contracts.FindByID(ctx, contractID)
	if err != nil {
		return nil, wrapContractErr(err)
	}
	return contract, nil
}

// ListByUser returns all contracts created by the user, most recent first.
func (s *ContractService) ListByUser(ctx context.Context, userID id.UserID) ([]*models.Contract, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "user ID is required")
	}
	contracts, err := s.contracts.ListByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to list contracts")
	}
	return contracts, nil
}

// ListByClient returns all contracts targeting the client, most recent first.
func (s *ContractService) ListByClient(ctx context.Context, clientID id.ClientID) ([]*models.Contract, error) {
	if clientID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "client ID is required")
	}
	contracts, err := s.contracts.ListByClient(ctx, clientID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to list contracts")
	}
	return contracts, nil
}

// UpdateStatus advances a contract along the transition table via a single
// conditional atomic update. The signed status is not reachable here: signing
// goes through the signature endpoint so a signed contract always carries a
// signature record.
func (s *ContractService) UpdateStatus(ctx context.Context, contractID id.ContractID, target models.Status) (*models.Contract, error) {
	ctx, span := s.tracer.Start(ctx, "contract.update_status",
		tracer.Attribute{Key: "contract.id", Value: contractID.String()},
		tracer.Attribute{Key: "contract.target_status", Value: string(target)},
	)
	var err error
	defer func() { span.End(err) }()

	if contractID.IsNil() {
		err = dErrors.New(dErrors.CodeInvalidInput, "contract ID is required")
		return nil, err
	}
	if target == models.StatusSigned {
		err = dErrors.New(dErrors.CodeValidation, "contracts are signed via the sign endpoint, not a status update")
		return nil, err
	}

	current, err := s.contracts.FindByID(ctx, contractID)
	if err != nil {
		err = wrapContractErr(err)
		return nil, err
	}

	if !models.CanTransition(current.Status, target) {
		err = invalidTransition(current.Status, target)
		return nil, err
	}

	updated, err := s.contracts.UpdateStatusIf(ctx, contractID, current.Status, target, nil)
	if err != nil {
		err = s.diagnoseNoMatch(ctx, contractID, err, target)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementTransition(string(current.Status), string(target))
	}
	return updated, nil
}

// Send marks a draft contract as sent. The happy path is a single round trip:
// the conditional update runs first, and only a miss triggers the follow-up
// read that distinguishes "not found" from "wrong status".
func (s *ContractService) Send(ctx context.Context, contractID id.ContractID) (*models.Contract, error) {
	ctx, span := s.tracer.Start(ctx, "contract.send",
		tracer.Attribute{Key: "contract.id", Value: contractID.String()},
	)
	var err error
	defer func() { span.End(err) }()

	if contractID.IsNil() {
		err = dErrors.New(dErrors.CodeInvalidInput, "contract ID is required")
		return nil, err
	}

	updated, err := s.contracts.UpdateStatusIf(ctx, contractID, models.StatusDraft, models.StatusSent, nil)
	if err != nil {
		if errors.Is(err, sentinel.ErrNoMatch) {
			current, findErr := s.contracts.FindByID(ctx, contractID)
			if findErr != nil {
				err = wrapContractErr(findErr)
				return nil, err
			}
			if s.metrics != nil {
				s.metrics.IncrementTransitionConflict()
			}
			err = dErrors.New(dErrors.CodeInvalidTransition,
				fmt.Sprintf("cannot send: contract status is %q (must be %q)", current.Status, models.StatusDraft))
			return nil, err
		}
		err = dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to send contract")
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementTransition(string(models.StatusDraft), string(models.StatusSent))
	}
	return updated, nil
}

// diagnoseNoMatch translates a conditional-update miss into the precise domain
// error: the contract either disappeared or changed status concurrently. The
// re-read reports the status the contract actually holds now.
func (s *ContractService) diagnoseNoMatch(ctx context.Context, contractID id.ContractID, err error, target models.Status) error {
	if !errors.Is(err, sentinel.ErrNoMatch) {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to update contract status")
	}
	if s.metrics != nil {
		s.metrics.IncrementTransitionConflict()
	}
	current, findErr := s.contracts.FindByID(ctx, contractID)
	if findErr != nil {
		return wrapContractErr(findErr)
	}
	s.logger.InfoContext(ctx, "contract status changed concurrently",
		"contract_id", contractID,
		"current_status", current.Status,
		"target_status", target,
	)
	return invalidTransition(current.Status, target)
}

func invalidTransition(from, to models.Status) error {
	return dErrors.New(dErrors.CodeInvalidTransition,
		fmt.Sprintf("cannot transition contract from %q to %q", from, to))
}

// wrapContractErr translates store sentinel errors into domain errors exactly once.
func wrapContractErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "contract not found")
	}
	return dErrors.Wrap(err, dErrors.CodeUnavailable, "contract store unavailable")
}
