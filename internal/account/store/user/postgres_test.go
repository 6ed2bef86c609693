package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "contractease/pkg/domain"
	"contractease/pkg/platform/sentinel"
)

var userRows = []string{"id", "name", "email", "password_hash", "created_at"}

func TestPostgresCreate_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	store := NewPostgres(db)
	err = store.Create(context.Background(), newTestUser("ada@example.com"))
	require.ErrorIs(t, err, sentinel.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	userID := uuid.New()
	mock.ExpectQuery(`FROM users`).
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows(userRows).AddRow(
			userID, "Ada Smith", "ada@example.com", "$2a$10$fakehash", time.Now().UTC(),
		))

	store := NewPostgres(db)
	got, err := store.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, id.UserID(userID), got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresExists_False(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	userID := uuid.New()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	store := NewPostgres(db)
	exists, err := store.Exists(context.Background(), id.UserID(userID))
	require.NoError(t, err)
	assert.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}
