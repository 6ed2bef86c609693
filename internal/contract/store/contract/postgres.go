package contract

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"contractease/internal/contract/models"
	id "contractease/pkg/domain"
	"contractease/pkg/platform/sentinel"
)

const contractColumns = `id, title, type, description, amount, due_date,
	clause_payment, clause_liability, clause_confidentiality, clause_termination,
	status, user_id, client_id, created_at, signed_at`

// PostgresStore persists contracts in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed contract store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, contract *models.Contract) error {
	if contract == nil {
		return fmt.Errorf("contract is required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contracts (`+contractColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		uuid.UUID(contract.ID), contract.Title, contract.Type, nullableString(contract.Description),
		contract.Amount, contract.DueDate,
		contract.Clauses.Payment, contract.Clauses.Liability,
		contract.Clauses.Confidentiality, contract.Clauses.Termination,
		string(contract.Status), uuid.UUID(contract.UserID), uuid.UUID(contract.ClientID),
		contract.CreatedAt, contract.SignedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("contract already exists: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create contract: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, contractID id.ContractID) (*models.Contract, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+contractColumns+`
		FROM contracts
		WHERE id = $1`,
		uuid.UUID(contractID),
	)
	contract, err := scanContract(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("contract not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find contract: %w", err)
	}
	return contract, nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID id.UserID) ([]*models.Contract, error) {
	return s.list(ctx, `
		SELECT `+contractColumns+`
		FROM contracts
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		uuid.UUID(userID),
	)
}

func (s *PostgresStore) ListByClient(ctx context.Context, clientID id.ClientID) ([]*models.Contract, error) {
	return s.list(ctx, `
		SELECT `+contractColumns+`
		FROM contracts
		WHERE client_id = $1
		ORDER BY created_at DESC`,
		uuid.UUID(clientID),
	)
}

// UpdateStatusIf is the compare-and-swap at the heart of the lifecycle engine:
// the status predicate lives inside the UPDATE, so the row changes only if it
// still holds the expected status. No row returned means no document matched.
func (s *PostgresStore) UpdateStatusIf(ctx context.Context, contractID id.ContractID, from, to models.Status, signedAt *time.Time) (*models.Contract, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE contracts
		SET status = $3, signed_at = COALESCE($4, signed_at)
		WHERE id = $1 AND status = $2
		RETURNING `+contractColumns,
		uuid.UUID(contractID), string(from), string(to), signedAt,
	)
	contract, err := scanContract(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("conditional status update: %w", sentinel.ErrNoMatch)
		}
		return nil, fmt.Errorf("update contract status: %w", err)
	}
	return contract, nil
}

func (s *PostgresStore) list(ctx context.Context, query string, arg any) ([]*models.Contract, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only rows

	result := make([]*models.Contract, 0)
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		result = append(result, contract)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContract(row scanner) (*models.Contract, error) {
	var (
		contract    models.Contract
		contractID  uuid.UUID
		userID      uuid.UUID
		clientID    uuid.UUID
		description sql.NullString
		status      string
		signedAt    sql.NullTime
	)
	err := row.Scan(
		&contractID, &contract.Title, &contract.Type, &description,
		&contract.Amount, &contract.DueDate,
		&contract.Clauses.Payment, &contract.Clauses.Liability,
		&contract.Clauses.Confidentiality, &contract.Clauses.Termination,
		&status, &userID, &clientID, &contract.CreatedAt, &signedAt,
	)
	if err != nil {
		return nil, err
	}
	contract.ID = id.ContractID(contractID)
	contract.UserID = id.UserID(userID)
	contract.ClientID = id.ClientID(clientID)
	contract.Description = description.String
	contract.Status = models.Status(status)
	if signedAt.Valid {
		t := signedAt.Time
		contract.SignedAt = &t
	}
	return &contract, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
