package model

import (
	"testing"

	"restaurant_manager/constants"

	"github.com/stretchr/testify/assert"
)

func TestPreOrderParent(t *testing.T) {
	b := BookingParent(7)
	assert.Equal(t, constants.ParentTable, b.Kind)
	assert.Equal(t, uint(7), b.ID)
	assert.True(t, b.IsBooking())
	assert.False(t, b.IsEvent())

	e := EventParent(3)
	assert.Equal(t, constants.ParentEvent, e.Kind)
	assert.True(t, e.IsEvent())
	assert.False(t, e.IsBooking())
}

func TestTimeSlotValid(t *testing.T) {
	assert.True(t, SlotMorning.Valid())
	assert.True(t, SlotEvening.Valid())
	assert.False(t, TimeSlot("12:00-16:00").Valid())
	assert.False(t, TimeSlot("").Valid())
}
