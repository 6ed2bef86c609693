package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"contractease/internal/account/models"
	id "contractease/pkg/domain"
	"contractease/pkg/platform/sentinel"
)

const clientColumns = `id, name, email, password_hash, created_at`

// PostgresStore persists clients in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed client store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, client *models.Client) error {
	if client == nil {
		return fmt.Errorf("client is required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO clients (`+clientColumns+`)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.UUID(client.ID), client.Name, client.Email, client.PasswordHash, client.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("client already exists: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, clientID id.ClientID) (*models.Client, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE id = $1`,
		uuid.UUID(clientID),
	)
	return scanClient(row)
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE lower(email) = lower($1)`,
		email,
	)
	return scanClient(row)
}

func (s *PostgresStore) Exists(ctx context.Context, clientID id.ClientID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`,
		uuid.UUID(clientID),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("client exists: %w", err)
	}
	return exists, nil
}

func scanClient(row *sql.Row) (*models.Client, error) {
	var (
		client   models.Client
		clientID uuid.UUID
	)
	err := row.Scan(&clientID, &client.Name, &client.Email, &client.PasswordHash, &client.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("client not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	client.ID = id.ClientID(clientID)
	return &client, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
