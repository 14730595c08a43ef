package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_Valid(t *testing.T) {
	for _, s := range []RequestStatus{StatusPending, StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}
	assert.False(t, RequestStatus("archived").Valid())
	assert.False(t, RequestStatus("").Valid())
}

func TestRequestStatus_CanTransition(t *testing.T) {
	assert.True(t, StatusPending.CanTransition(StatusAssigned))
	assert.True(t, StatusPending.CanTransition(StatusCancelled))
	assert.True(t, StatusAssigned.CanTransition(StatusInProgress))
	assert.True(t, StatusAssigned.CanTransition(StatusCancelled))
	assert.True(t, StatusInProgress.CanTransition(StatusCompleted))

	assert.False(t, StatusPending.CanTransition(StatusCompleted))
	assert.False(t, StatusPending.CanTransition(StatusInProgress))
	assert.False(t, StatusAssigned.CanTransition(StatusPending))
	assert.False(t, StatusCompleted.CanTransition(StatusPending))
	assert.False(t, StatusCancelled.CanTransition(StatusAssigned))
}

func TestRequestStatus_TerminalStatesHaveNoExits(t *testing.T) {
	for _, terminal := range []RequestStatus{StatusCompleted, StatusCancelled} {
		for _, next := range []RequestStatus{StatusPending, StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled} {
			assert.False(t, terminal.CanTransition(next), "%s must not move to %s", terminal, next)
		}
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("customer")
	assert.NoError(t, err)
	assert.Equal(t, RoleCustomer, role)

	role, err = ParseRole("provider")
	assert.NoError(t, err)
	assert.Equal(t, RoleProvider, role)

	_, err = ParseRole("admin")
	assert.Error(t, err)
}
