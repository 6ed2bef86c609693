package client

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

func newTestClient(email string) *models.Client {
	return &models.Client{
		ID:           id.NewClientID(),
		Name:         "Acme Corp",
		Email:        email,
		PasswordHash: "$2a$10$fakehash",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestInMemoryCreateAndFind(t *testing.T) {
	store := NewInMemory()
	c := newTestClient("billing@acme.test")

	require.NoError(t, store.Create(context.Background(), c))

	byEmail, err := store.FindByEmail(context.Background(), "billing@acme.test")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byEmail.ID)

	exists, err := store.Exists(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestInMemoryCreate_DuplicateEmailConflicts(t *testing.T) {
	store := NewInMemory()
	require.NoError(t, store.Create(context.Background(), newTestClient("billing@acme.test")))

	err := store.Create(context.Background(), newTestClient("Billing@acme.test"))
	require.ErrorIs(t, err, sentinel.ErrConflict)
}

func TestInMemoryFindByEmail_NotFound(t *testing.T) {
	store := NewInMemory()

	_, err := store.FindByEmail(context.Background(), "nobody@acme.test")
	require.ErrorIs(t, err, sentinel.ErrNotFound)
}
