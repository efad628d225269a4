package handler

import (
	"errors"
	"testing"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{constants.StatusPending, constants.StatusApproved, true},
		{constants.StatusPending, constants.StatusRejected, true},
		{constants.StatusPending, constants.StatusCancelled, true},
		{constants.StatusApproved, constants.StatusCancelled, true},
		{constants.StatusApproved, constants.StatusPending, false},
		{constants.StatusApproved, constants.StatusRejected, false},
		{constants.StatusRejected, constants.StatusApproved, false},
		{constants.StatusCancelled, constants.StatusPending, false},
		{constants.StatusCancelled, constants.StatusApproved, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, bookingTransitionAllowed(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestEventTransitionAllowed(t *testing.T) {
	assert.True(t, eventTransitionAllowed(constants.StatusPending, constants.StatusApproved))
	assert.True(t, eventTransitionAllowed(constants.StatusApproved, constants.StatusCancelled))
	assert.False(t, eventTransitionAllowed(constants.StatusRejected, constants.StatusApproved))
	assert.False(t, eventTransitionAllowed(constants.StatusCancelled, constants.StatusApproved))
}

func TestIsUniqueViolation(t *testing.T) {
	dup := errors.New(`ERROR: duplicate key value violates unique constraint "uniq_active_booking_slot" (SQLSTATE 23505)`)
	assert.True(t, isUniqueViolation(dup))
	assert.False(t, isUniqueViolation(errors.New("driver: bad connection")))
	assert.False(t, isUniqueViolation(nil))
}

// Cancelling or rejecting an entity with no attached pre-order must not touch
// the ledger at all.
func TestDetachPreOrderWithoutLedgerIsNoOp(t *testing.T) {
	var booking model.Booking
	require.NoError(t, detachBookingPreOrder(nil, &booking))
	assert.Nil(t, booking.PreOrderID)

	var event model.Event
	require.NoError(t, detachEventPreOrder(nil, &event))
	assert.Nil(t, event.PreOrderID)
}
