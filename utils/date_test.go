package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28", d.String())

	_, err = ParseDate("28/08/2026")
	assert.Error(t, err)
}

func TestCustomDateSameDay(t *testing.T) {
	morning := CustomDate{time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)}
	night := CustomDate{time.Date(2026, 8, 28, 23, 30, 0, 0, time.UTC)}
	other := CustomDate{time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)}

	assert.True(t, morning.SameDay(night))
	assert.False(t, morning.SameDay(other))
}

func TestCustomDateJSON(t *testing.T) {
	var d CustomDate
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-28"`), &d))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-28"`, string(out))

	out, err = json.Marshal(CustomDate{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}
