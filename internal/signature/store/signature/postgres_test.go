package signature

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractease/internal/signature/models"
	id "contractease/pkg/domain"
	"contractease/pkg/platform/sentinel"
)

var signatureRows = []string{
	"id", "contract_id", "signer_name", "signer_email",
	"signature_image", "signer_device", "signed_at",
}

var pgUniqueViolation = pgconn.PgError{Code: "23505"}

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	signatureID := uuid.New()
	contractID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectExec(`INSERT INTO signatures`).
		WithArgs(signatureID, contractID, "Jane Roe", "jane@example.com",
			"data:image/png;base64,abc", "Chrome 120.0 on Linux", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewPostgres(db)
	err = store.Create(context.Background(), &models.Signature{
		ID:             id.SignatureID(signatureID),
		ContractID:     id.ContractID(contractID),
		SignerName:     "Jane Roe",
		SignerEmail:    "jane@example.com",
		SignatureImage: "data:image/png;base64,abc",
		SignerDevice:   "Chrome 120.0 on Linux",
		SignedAt:       now,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_DuplicateContract(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO signatures`).
		WillReturnError(&pgUniqueViolation)

	store := NewPostgres(db)
	err = store.Create(context.Background(), &models.Signature{
		ID:             id.NewSignatureID(),
		ContractID:     id.NewContractID(),
		SignerName:     "Jane Roe",
		SignatureImage: "data:image/png;base64,abc",
		SignedAt:       time.Now().UTC(),
	})
	require.ErrorIs(t, err, sentinel.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindByContract(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	signatureID := uuid.New()
	contractID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM signatures`).
		WithArgs(contractID).
		WillReturnRows(sqlmock.NewRows(signatureRows).AddRow(
			signatureID, contractID, "Jane Roe", "jane@example.com",
			"data:image/png;base64,abc", "Chrome 120.0 on Linux", now,
		))

	store := NewPostgres(db)
	got, err := store.FindByContract(context.Background(), id.ContractID(contractID))
	require.NoError(t, err)
	assert.Equal(t, id.SignatureID(signatureID), got.ID)
	assert.Equal(t, "Jane Roe", got.SignerName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindByContract_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	contractID := uuid.New()
	mock.ExpectQuery(`FROM signatures`).
		WithArgs(contractID).
		WillReturnRows(sqlmock.NewRows(signatureRows))

	store := NewPostgres(db)
	_, err = store.FindByContract(context.Background(), id.ContractID(contractID))
	require.ErrorIs(t, err, sentinel.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
