package contract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractease/internal/contract/models"
	id "contractease/pkg/domain"
	"contractease/pkg/platform/sentinel"
	"contractease/pkg/testutil"
)

func newDraft(t *testing.T, createdAt time.Time) *models.Contract {
	t.Helper()
	c, err := models.NewContract(id.NewContractID(), "Web Development Services", "service", "",
		5000, createdAt.AddDate(0, 1, 0), models.DefaultClauses(), id.NewUserID(), id.NewClientID(), createdAt)
	require.NoError(t, err)
	return c
}

func TestCreateAndFindByID(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	c := newDraft(t, time.Now().UTC())
	require.NoError(t, store.Create(ctx, c))

	found, err := store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Title, found.Title)
	assert.Equal(t, models.StatusDraft, found.Status)
	assert.Nil(t, found.SignedAt)
}

func TestFindByID_NotFound(t *testing.T) {
	store := NewInMemory()

	_, err := store.FindByID(context.Background(), id.NewContractID())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFindByID_ReturnsCopy(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	c := newDraft(t, time.Now().UTC())
	require.NoError(t, store.Create(ctx, c))

	found, err := store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	found.Status = models.StatusDeclined

	again, err := store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, again.Status, "mutating a returned contract must not affect the store")
}

func TestListByUser_OrderedMostRecentFirst(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()
	userID := id.NewUserID()

	base := time.Now().UTC()
	var ids []id.ContractID
	for i := 0; i < 3; i++ {
		c := newDraft(t, base.Add(time.Duration(i)*time.Minute))
		c.UserID = userID
		require.NoError(t, store.Create(ctx, c))
		ids = append(ids, c.ID)
	}

	list, err := store.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, ids[1], list[1].ID)
	assert.Equal(t, ids[0], list[2].ID)
}

func TestListByUser_EmptyIsNotAnError(t *testing.T) {
	store := NewInMemory()

	list, err := store.ListByUser(context.Background(), id.NewUserID())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateStatusIf_Match(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	c := newDraft(t, time.Now().UTC())
	require.NoError(t, store.Create(ctx, c))

	updated, err := store.UpdateStatusIf(ctx, c.ID, models.StatusDraft, models.StatusSent, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSent, updated.Status)
	assert.Nil(t, updated.SignedAt)
}

func TestUpdateStatusIf_SetsSignedAt(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	c := newDraft(t, time.Now().UTC())
	require.NoError(t, store.Create(ctx, c))
	_, err := store.UpdateStatusIf(ctx, c.ID, models.StatusDraft, models.StatusSent, nil)
	require.NoError(t, err)

	signedAt := time.Now().UTC()
	updated, err := store.UpdateStatusIf(ctx, c.ID, models.StatusSent, models.StatusSigned, &signedAt)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSigned, updated.Status)
	require.NotNil(t, updated.SignedAt)
	assert.Equal(t, signedAt, *updated.SignedAt)
}

func TestUpdateStatusIf_NilSignedAtLeavesTimestamp(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	c := newDraft(t, time.Now().UTC())
	require.NoError(t, store.Create(ctx, c))
	_, err := store.UpdateStatusIf(ctx, c.ID, models.StatusDraft, models.StatusSent, nil)
	require.NoError(t, err)

	signedAt := time.Now().UTC()
	_, err = store.UpdateStatusIf(ctx, c.ID, models.StatusSent, models.StatusSigned, &signedAt)
	require.NoError(t, err)

	// A nil timestamp on a later transition must not clear the recorded one.
	updated, err := store.UpdateStatusIf(ctx, c.ID, models.StatusSigned, models.StatusSigned, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.SignedAt)
	assert.Equal(t, signedAt, *updated.SignedAt)
}

func TestUpdateStatusIf_WrongStatusReportsNoMatch(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	c := newDraft(t, time.Now().UTC())
	require.NoError(t, store.Create(ctx, c))

	_, err := store.UpdateStatusIf(ctx, c.ID, models.StatusSent, models.StatusSigned, nil)
	require.ErrorIs(t, err, sentinel.ErrNoMatch)

	// State must be unchanged after a miss.
	found, err := store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, found.Status)
}

func TestUpdateStatusIf_AbsentReportsNoMatch(t *testing.T) {
	store := NewInMemory()

	_, err := store.UpdateStatusIf(context.Background(), id.NewContractID(), models.StatusDraft, models.StatusSent, nil)
	require.ErrorIs(t, err, sentinel.ErrNoMatch)
}

func TestUpdateStatusIf_ConcurrentExactlyOneWins(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	c := newDraft(t, time.Now().UTC())
	require.NoError(t, store.Create(ctx, c))
	_, err := store.UpdateStatusIf(ctx, c.ID, models.StatusDraft, models.StatusSent, nil)
	require.NoError(t, err)

	signedAt := time.Now().UTC()
	result := testutil.RunConcurrent(16, func(int) error {
		_, err := store.UpdateStatusIf(ctx, c.ID, models.StatusSent, models.StatusSigned, &signedAt)
		return err
	})

	assert.Equal(t, int32(1), result.Successes, "exactly one conditional update may win")
	assert.Equal(t, int32(15), result.Errors, "losers observe no match")

	found, err := store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSigned, found.Status)
}
