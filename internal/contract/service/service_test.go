package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"contractease/internal/contract/models"
	contractstore "contractease/internal/contract/store/contract"
	id "contractease/pkg/domain"
	dErrors "contractease/pkg/domain-errors"
	"contractease/pkg/platform/sentinel"
	"contractease/pkg/requestcontext"
	"contractease/pkg/testutil"
)

func validCommand() *CreateContractCommand {
	return &CreateContractCommand{
		Title:    "Web Development Services",
		Type:     "service",
		Amount:   5000,
		DueDate:  time.Now().UTC().AddDate(0, 1, 0),
		Clauses:  models.DefaultClauses(),
		UserID:   id.NewUserID(),
		ClientID: id.NewClientID(),
	}
}

func (s *ServiceSuite) TestCreate_Success() {
	ctx := context.Background()
	cmd := validCommand()

	s.mockUsers.EXPECT().UserExists(ctx, cmd.UserID).Return(true, nil)
	s.mockClients.EXPECT().ClientExists(ctx, cmd.ClientID).Return(true, nil)
	s.mockStore.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	contract, err := s.service.Create(ctx, cmd)
	s.Require().NoError(err)
	s.Equal(models.StatusDraft, contract.Status)
	s.Nil(contract.SignedAt)
	s.False(contract.ID.IsNil())
	s.Equal(cmd.UserID, contract.UserID)
	s.Equal(cmd.ClientID, contract.ClientID)
}

func (s *ServiceSuite) TestCreate_UsesRequestClock() {
	now := time.Date(2026, 2, 18, 10, 30, 0, 0, time.UTC)
	ctx := requestcontext.WithNow(context.Background(), now)
	cmd := validCommand()

	s.mockUsers.EXPECT().UserExists(ctx, cmd.UserID).Return(true, nil)
	s.mockClients.EXPECT().ClientExists(ctx, cmd.ClientID).Return(true, nil)
	s.mockStore.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	contract, err := s.service.Create(ctx, cmd)
	s.Require().NoError(err)
	s.Equal(now, contract.CreatedAt)
}

func (s *ServiceSuite) TestCreate_UnknownUserInsertsNothing() {
	ctx := context.Background()
	cmd := validCommand()

	s.mockUsers.EXPECT().UserExists(ctx, cmd.UserID).Return(false, nil)
	// Create must not be called: no side effects on a failed reference check.

	_, err := s.service.Create(ctx, cmd)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestCreate_UnknownClientInsertsNothing() {
	ctx := context.Background()
	cmd := validCommand()

	s.mockUsers.EXPECT().UserExists(ctx, cmd.UserID).Return(true, nil)
	s.mockClients.EXPECT().ClientExists(ctx, cmd.ClientID).Return(false, nil)

	_, err := s.service.Create(ctx, cmd)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestCreate_NilReferences() {
	ctx := context.Background()

	cmd := validCommand()
	cmd.UserID = id.UserID{}
	_, err := s.service.Create(ctx, cmd)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))

	cmd = validCommand()
	cmd.ClientID = id.ClientID{}
	_, err = s.service.Create(ctx, cmd)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestGetByID_NotFound() {
	ctx := context.Background()
	contractID := id.NewContractID()

	s.mockStore.EXPECT().FindByID(ctx, contractID).Return(nil, sentinel.ErrNotFound)

	_, err := s.service.GetByID(ctx, contractID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestUpdateStatus_Success() {
	ctx := context.Background()
	contractID := id.NewContractID()
	current := &models.Contract{ID: contractID, Status: models.StatusDraft}
	updated := &models.Contract{ID: contractID, Status: models.StatusPending}

	s.mockStore.EXPECT().FindByID(ctx, contractID).Return(current, nil)
	s.mockStore.EXPECT().UpdateStatusIf(ctx, contractID, models.StatusDraft, models.StatusPending, nil).
		Return(updated, nil)

	got, err := s.service.UpdateStatus(ctx, contractID, models.StatusPending)
	s.Require().NoError(err)
	s.Equal(models.StatusPending, got.Status)
}

func (s *ServiceSuite) TestUpdateStatus_DisallowedTransitionNeverMutates() {
	ctx := context.Background()
	contractID := id.NewContractID()
	current := &models.Contract{ID: contractID, Status: models.StatusDraft}

	s.mockStore.EXPECT().FindByID(ctx, contractID).Return(current, nil)
	// UpdateStatusIf must not be called for a disallowed edge.

	_, err := s.service.UpdateStatus(ctx, contractID, models.StatusDeclined)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
	s.Contains(err.Error(), "draft")
	s.Contains(err.Error(), "declined")
}

func (s *ServiceSuite) TestUpdateStatus_TerminalStateHasNoTransitions() {
	ctx := context.Background()
	contractID := id.NewContractID()
	current := &models.Contract{ID: contractID, Status: models.StatusDeclined}

	s.mockStore.EXPECT().FindByID(ctx, contractID).Return(current, nil)

	_, err := s.service.UpdateStatus(ctx, contractID, models.StatusSent)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
}

func (s *ServiceSuite) TestUpdateStatus_SignedTargetRejected() {
	ctx := context.Background()

	_, err := s.service.UpdateStatus(ctx, id.NewContractID(), models.StatusSigned)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestUpdateStatus_RaceReportsActualStatus() {
	ctx := context.Background()
	contractID := id.NewContractID()
	current := &models.Contract{ID: contractID, Status: models.StatusSent}
	// Between the read and the conditional update another request declined the contract.
	raced := &models.Contract{ID: contractID, Status: models.StatusDeclined}

	s.mockStore.EXPECT().FindByID(ctx, contractID).Return(current, nil)
	s.mockStore.EXPECT().UpdateStatusIf(ctx, contractID, models.StatusSent, models.StatusDeclined, nil).
		Return(nil, sentinel.ErrNoMatch)
	s.mockStore.EXPECT().FindByID(ctx, contractID).Return(raced, nil)

	_, err := s.service.UpdateStatus(ctx, contractID, models.StatusDeclined)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
	s.Contains(err.Error(), "declined")
}

func (s *ServiceSuite) TestSend_AtomicUpdateFirst() {
	ctx := context.Background()
	contractID := id.NewContractID()
	updated := &models.Contract{ID: contractID, Status: models.StatusSent}

	// The happy path is a single round trip: no prior read.
	s.mockStore.EXPECT().UpdateStatusIf(ctx, contractID, models.StatusDraft, models.StatusSent, nil).
		Return(updated, nil)

	got, err := s.service.Send(ctx, contractID)
	s.Require().NoError(err)
	s.Equal(models.StatusSent, got.Status)
}

func (s *ServiceSuite) TestSend_AlreadySentNamesCurrentStatus() {
	ctx := context.Background()
	contractID := id.NewContractID()

	s.mockStore.EXPECT().UpdateStatusIf(ctx, contractID, models.StatusDraft, models.StatusSent, nil).
		Return(nil, sentinel.ErrNoMatch)
	s.mockStore.EXPECT().FindByID(ctx, contractID).
		Return(&models.Contract{ID: contractID, Status: models.StatusSent}, nil)

	_, err := s.service.Send(ctx, contractID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
	s.Contains(err.Error(), `"sent"`)
}

func (s *ServiceSuite) TestSend_MissingContract() {
	ctx := context.Background()
	contractID := id.NewContractID()

	s.mockStore.EXPECT().UpdateStatusIf(ctx, contractID, models.StatusDraft, models.StatusSent, nil).
		Return(nil, sentinel.ErrNoMatch)
	s.mockStore.EXPECT().FindByID(ctx, contractID).Return(nil, sentinel.ErrNotFound)

	_, err := s.service.Send(ctx, contractID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

// The tests below run against the real in-memory store to exercise the
// conditional update end to end.

type staticDirectory struct{}

func (staticDirectory) UserExists(context.Context, id.UserID) (bool, error)     { return true, nil }
func (staticDirectory) ClientExists(context.Context, id.ClientID) (bool, error) { return true, nil }

func TestSend_ConcurrentExactlyOneWins(t *testing.T) {
	store := contractstore.NewInMemory()
	svc := New(store, staticDirectory{}, staticDirectory{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validCommand())
	require.NoError(t, err)

	result := testutil.RunConcurrent(8, func(int) error {
		_, err := svc.Send(ctx, created.ID)
		return err
	})

	assert.Equal(t, int32(1), result.Successes)
	assert.Equal(t, int32(7), result.InvalidTransitions)

	final, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSent, final.Status)
}

func TestListByUser_Ordering(t *testing.T) {
	store := contractstore.NewInMemory()
	svc := New(store, staticDirectory{}, staticDirectory{})

	userID := id.NewUserID()
	base := time.Date(2026, 2, 18, 10, 0, 0, 0, time.UTC)

	var created []id.ContractID
	for i := 0; i < 3; i++ {
		ctx := requestcontext.WithNow(context.Background(), base.Add(time.Duration(i)*time.Hour))
		cmd := validCommand()
		cmd.UserID = userID
		c, err := svc.Create(ctx, cmd)
		require.NoError(t, err)
		created = append(created, c.ID)
	}

	list, err := svc.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, created[2], list[0].ID, "most recent first")
	assert.Equal(t, created[1], list[1].ID)
	assert.Equal(t, created[0], list[2].ID)
}

func TestGetByID_RoundTrip(t *testing.T) {
	store := contractstore.NewInMemory()
	svc := New(store, staticDirectory{}, staticDirectory{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validCommand())
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}
