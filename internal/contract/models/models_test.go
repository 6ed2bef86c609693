package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "contractease/pkg/domain"
	dErrors "contractease/pkg/domain-errors"
)

func TestTransitions_Table(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusDraft, StatusSent, true},
		{StatusDraft, StatusPending, true},
		{StatusDraft, StatusSigned, false},
		{StatusDraft, StatusDeclined, false},
		{StatusSent, StatusSigned, true},
		{StatusSent, StatusDeclined, true},
		{StatusSent, StatusDraft, false},
		{StatusSent, StatusPending, false},
		{StatusPending, StatusSigned, true},
		{StatusPending, StatusDeclined, true},
		{StatusPending, StatusSent, false},
		{StatusSigned, StatusDraft, false},
		{StatusSigned, StatusSent, false},
		{StatusSigned, StatusDeclined, false},
		{StatusDeclined, StatusDraft, false},
		{StatusDeclined, StatusSigned, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusDraft.Terminal())
	assert.False(t, StatusSent.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusSigned.Terminal())
	assert.True(t, StatusDeclined.Terminal())
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("sent")
	require.NoError(t, err)
	assert.Equal(t, StatusSent, status)

	_, err = ParseStatus("archived")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestDefaultClauses(t *testing.T) {
	clauses := DefaultClauses()
	assert.True(t, clauses.Payment)
	assert.False(t, clauses.Liability)
	assert.True(t, clauses.Confidentiality)
	assert.False(t, clauses.Termination)
}

func TestNewContract_StartsAsDraft(t *testing.T) {
	now := time.Now().UTC()

	c, err := NewContract(id.NewContractID(), "Web Development Services", "service", "Full-stack project",
		5000, now.AddDate(0, 1, 0), DefaultClauses(), id.NewUserID(), id.NewClientID(), now)
	require.NoError(t, err)

	assert.Equal(t, StatusDraft, c.Status)
	assert.Nil(t, c.SignedAt)
	assert.Equal(t, now, c.CreatedAt)
}

func TestNewContract_Validation(t *testing.T) {
	now := time.Now().UTC()
	due := now.AddDate(0, 1, 0)
	userID := id.NewUserID()
	clientID := id.NewClientID()

	cases := []struct {
		name string
		fn   func() error
	}{
		{"empty title", func() error {
			_, err := NewContract(id.NewContractID(), "", "service", "", 100, due, DefaultClauses(), userID, clientID, now)
			return err
		}},
		{"negative amount", func() error {
			_, err := NewContract(id.NewContractID(), "t", "service", "", -1, due, DefaultClauses(), userID, clientID, now)
			return err
		}},
		{"empty type", func() error {
			_, err := NewContract(id.NewContractID(), "t", "", "", 100, due, DefaultClauses(), userID, clientID, now)
			return err
		}},
		{"nil user reference", func() error {
			_, err := NewContract(id.NewContractID(), "t", "service", "", 100, due, DefaultClauses(), id.UserID{}, clientID, now)
			return err
		}},
		{"nil client reference", func() error {
			_, err := NewContract(id.NewContractID(), "t", "service", "", 100, due, DefaultClauses(), userID, id.ClientID{}, now)
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.fn())
		})
	}
}

func TestNewContract_ZeroAmountAllowed(t *testing.T) {
	now := time.Now().UTC()
	_, err := NewContract(id.NewContractID(), "Pro bono", "service", "", 0, now, DefaultClauses(), id.NewUserID(), id.NewClientID(), now)
	require.NoError(t, err)
}

func TestContract_Clone(t *testing.T) {
	now := time.Now().UTC()
	signedAt := now.Add(time.Hour)
	c := &Contract{ID: id.NewContractID(), Status: StatusSigned, SignedAt: &signedAt}

	cp := c.Clone()
	require.NotSame(t, c, cp)
	require.NotSame(t, c.SignedAt, cp.SignedAt)
	assert.Equal(t, *c.SignedAt, *cp.SignedAt)
}
