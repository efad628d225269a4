package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPublicCode(t *testing.T) {
	code := NewPublicCode(BookingCodePrefix)
	assert.True(t, strings.HasPrefix(code, "BKG-"))
	assert.Len(t, code, len("BKG-")+8)
	assert.Equal(t, strings.ToUpper(code), code)

	// two codes in a row must differ
	assert.NotEqual(t, code, NewPublicCode(BookingCodePrefix))
}
