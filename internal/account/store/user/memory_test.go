package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractease/internal/account/models"
	id "contractease/pkg/domain"
	"contractease/pkg/platform/sentinel"
)

func newTestUser(email string) *models.User {
	return &models.User{
		ID:           id.NewUserID(),
		Name:         "Ada Smith",
		Email:        email,
		PasswordHash: "$2a$10$fakehash",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestInMemoryCreateAndFind(t *testing.T) {
	store := NewInMemory()
	u := newTestUser("ada@example.com")

	require.NoError(t, store.Create(context.Background(), u))

	byID, err := store.FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, byID.Email)

	byEmail, err := store.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestInMemoryCreate_DuplicateEmailConflicts(t *testing.T) {
	store := NewInMemory()
	require.NoError(t, store.Create(context.Background(), newTestUser("ada@example.com")))

	err := store.Create(context.Background(), newTestUser("ADA@example.com"))
	require.ErrorIs(t, err, sentinel.ErrConflict)
}

func TestInMemoryFindByEmail_CaseInsensitive(t *testing.T) {
	store := NewInMemory()
	u := newTestUser("Ada@Example.com")
	require.NoError(t, store.Create(context.Background(), u))

	got, err := store.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestInMemoryExists(t *testing.T) {
	store := NewInMemory()
	u := newTestUser("ada@example.com")
	require.NoError(t, store.Create(context.Background(), u))

	exists, err := store.Exists(context.Background(), u.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Exists(context.Background(), id.NewUserID())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestInMemoryFindByID_NotFound(t *testing.T) {
	store := NewInMemory()

	_, err := store.FindByID(context.Background(), id.NewUserID())
	require.ErrorIs(t, err, sentinel.ErrNotFound)
}
