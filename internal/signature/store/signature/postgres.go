package signature

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"contractease/internal/signature/models"
	id "contractease/pkg/domain"
	"contractease/pkg/platform/sentinel"
)

const signatureColumns = `id, contract_id, signer_name, signer_email,
	signature_image, signer_device, signed_at`

// PostgresStore persists signatures in PostgreSQL. The unique index on
// contract_id backs the one signature per contract rule.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed signature store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, signature *models.Signature) error {
	if signature == nil {
		return fmt.Errorf("signature is required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO signatures (`+signatureColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.UUID(signature.ID), uuid.UUID(signature.ContractID),
		signature.SignerName, signature.SignerEmail,
		signature.SignatureImage, signature.SignerDevice,
		signature.SignedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("signature already exists for contract: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create signature: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByContract(ctx context.Context, contractID id.ContractID) (*models.Signature, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+signatureColumns+`
		FROM signatures
		WHERE contract_id = $1`,
		uuid.UUID(contractID),
	)
	signature, err := scanSignature(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("signature not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find signature: %w", err)
	}
	return signature, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSignature(row scanner) (*models.Signature, error) {
	var (
		signature   models.Signature
		signatureID uuid.UUID
		contractID  uuid.UUID
	)
	err := row.Scan(
		&signatureID, &contractID, &signature.SignerName, &signature.SignerEmail,
		&signature.SignatureImage, &signature.SignerDevice, &signature.SignedAt,
	)
	if err != nil {
		return nil, err
	}
	signature.ID = id.SignatureID(signatureID)
	signature.ContractID = id.ContractID(contractID)
	return &signature, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
