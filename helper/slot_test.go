package helper

import (
	"testing"

	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("18:30")
	require.NoError(t, err)
	assert.Equal(t, 18, hour)
	assert.Equal(t, 30, minute)

	for _, bad := range []string{"", "18", "18:30:00", "25:00", "12:60", "ab:cd"} {
		_, _, err := ParseClock(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}

func TestSlotForTime(t *testing.T) {
	cases := []struct {
		time string
		slot model.TimeSlot
		ok   bool
	}{
		{"09:59", "", false},
		{"10:00", model.SlotMorning, true},
		{"13:59", model.SlotMorning, true},
		{"14:00", "", false},
		{"17:30", "", false},
		{"18:00", model.SlotEvening, true},
		{"21:59", model.SlotEvening, true},
		{"22:00", "", false},
	}
	for _, tc := range cases {
		slot, ok := SlotForTime(tc.time)
		assert.Equal(t, tc.ok, ok, tc.time)
		assert.Equal(t, tc.slot, slot, tc.time)
	}
}

func TestTimeInSlot(t *testing.T) {
	assert.True(t, TimeInSlot("11:00", model.SlotMorning))
	assert.False(t, TimeInSlot("11:00", model.SlotEvening))
	assert.True(t, TimeInSlot("19:45", model.SlotEvening))
	assert.False(t, TimeInSlot("15:00", model.SlotMorning))
	assert.False(t, TimeInSlot("bogus", model.SlotMorning))
}
