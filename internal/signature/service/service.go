// Package service implements the signature finalizer: the coupled
// sent → signed transition and signature record creation. The conditional
// update decides the race, so concurrent sign attempts produce exactly one
// signature.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	contractmodels "contractease/internal/contract/models"
	"contractease/internal/platform/tracer"
	signaturemetrics "contractease/internal/signature/metrics"
	"contractease/internal/signature/models"
	id "contractease/pkg/domain"
	dErrors "contractease/pkg/domain-errors"
	"contractease/pkg/platform/sentinel"
	"contractease/pkg/requestcontext"
)

// SignResult bundles the outcome of a successful signing.
type SignResult struct {
	Contract  *contractmodels.Contract
	Signature *models.Signature
}

// SignatureService finalizes contracts.
type SignatureService struct {
	signatures SignatureStore
	contracts  ContractFinalizer
	logger     *slog.Logger
	metrics    *signaturemetrics.Metrics
	tracer     tracer.Tracer
}

// New constructs the finalizer.
func New(signatures SignatureStore, contracts ContractFinalizer, opts ...Option) *SignatureService {
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
	return &SignatureService{
		signatures: signatures,
		contracts:  contracts,
		logger:     cfg.logger,
		metrics:    cfg.metrics,
		tracer:     cfg.tracer,
	}
}

// Sign flips the contract from sent to signed and records the signature. The
// status flip is the gate: only the request that wins the conditional update
// inserts a signature, so a lost race creates nothing.
func (s *SignatureService) Sign(ctx context.Context, contractID id.ContractID, cmd *SignContractCommand) (*SignResult, error) {
	ctx, span := s.tracer.Start(ctx, "signature.sign",
		tracer.Attribute{Key: "contract.id", Value: contractID.String()},
	)
	var err error
	defer func() { span.End(err) }()

	if contractID.IsNil() {
		err = dErrors.New(dErrors.CodeInvalidInput, "contract ID is required")
		return nil, err
	}
	if cmd == nil {
		err = dErrors.New(dErrors.CodeBadRequest, "command is required")
		return nil, err
	}

	signedAt := requestcontext.Now(ctx)
	signature, err := models.NewSignature(id.NewSignatureID(), contractID,
		cmd.SignerName, cmd.SignerEmail, cmd.SignatureImage, cmd.SignerDevice, signedAt)
	if err != nil {
		return nil, err
	}

	contract, err := s.contracts.UpdateStatusIf(ctx, contractID,
		contractmodels.StatusSent, contractmodels.StatusSigned, &signedAt)
	if err != nil {
		err = s.diagnoseSignMiss(ctx, contractID, err)
		return nil, err
	}

	if err = s.signatures.Create(ctx, signature); err != nil {
		// The contract is already marked signed. A concurrent winner cannot
		// reach this branch (the status flip admits one request), so a failed
		// insert here means the store broke between the two writes.
		s.logger.ErrorContext(ctx, "contract marked signed but signature insert failed",
			"contract_id", contractID,
			"error", err,
		)
		if s.metrics != nil {
			s.metrics.IncrementOrphanedSigning()
		}
		if errors.Is(err, sentinel.ErrConflict) {
			err = dErrors.New(dErrors.CodeConflict, "contract already has a signature")
			return nil, err
		}
		err = dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to record signature")
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementSignaturesRecorded()
	}
	s.logger.InfoContext(ctx, "contract signed",
		"contract_id", contractID,
		"signature_id", signature.ID,
	)
	return &SignResult{Contract: contract, Signature: signature}, nil
}

// GetByContract returns the signature attached to a contract.
func (s *SignatureService) GetByContract(ctx context.Context, contractID id.ContractID) (*models.Signature, error) {
	if contractID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "contract ID is required")
	}
	signature, err := s.signatures.FindByContract(ctx, contractID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "signature not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "signature store unavailable")
	}
	return signature, nil
}

// diagnoseSignMiss translates a conditional-update miss into the precise
// domain error, reporting the status the contract actually holds.
func (s *SignatureService) diagnoseSignMiss(ctx context.Context, contractID id.ContractID, err error) error {
	if !errors.Is(err, sentinel.ErrNoMatch) {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to sign contract")
	}
	if s.metrics != nil {
		s.metrics.IncrementSignRaceLoss()
	}
	current, findErr := s.contracts.FindByID(ctx, contractID)
	if findErr != nil {
		if errors.Is(findErr, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "contract not found")
		}
		return dErrors.Wrap(findErr, dErrors.CodeUnavailable, "contract store unavailable")
	}
	s.logger.InfoContext(ctx, "sign attempt on contract not in sent status",
		"contract_id", contractID,
		"current_status", current.Status,
	)
	return dErrors.New(dErrors.CodeInvalidTransition,
		fmt.Sprintf("cannot sign: contract status is %q (must be %q)", current.Status, contractmodels.StatusSent))
}
