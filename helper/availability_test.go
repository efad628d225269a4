package helper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaySaturated(t *testing.T) {
	cases := []struct {
		distinct, total int64
		want            bool
	}{
		{0, 0, false},
		{5, 0, false},
		{0, 8, false},
		{15, 8, false},
		{16, 8, true},
		{20, 8, true},
		{2, 1, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DaySaturated(tc.distinct, tc.total),
			"distinct=%d total=%d", tc.distinct, tc.total)
	}
}

func TestIsConflict(t *testing.T) {
	for _, err := range []error{ErrSlotReserved, ErrTableBooked, ErrEventSlotTaken, ErrDaySaturated, ErrSlotHasTables} {
		assert.True(t, IsConflict(err), err.Error())
	}
	assert.False(t, IsConflict(errors.New("driver: bad connection")))
	assert.False(t, IsConflict(nil))
}
