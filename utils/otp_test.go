package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOtp(t *testing.T) {
	code, err := GenerateOtp()
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestVerifyOtp(t *testing.T) {
	now := time.Now()
	code := "123456"
	future := now.Add(10 * time.Minute)
	past := now.Add(-time.Second)

	assert.NoError(t, VerifyOtp(&code, &future, "123456", now))
	assert.ErrorIs(t, VerifyOtp(&code, &future, "654321", now), ErrInvalidOtp)
	assert.ErrorIs(t, VerifyOtp(nil, &future, "123456", now), ErrInvalidOtp)
	assert.ErrorIs(t, VerifyOtp(&code, nil, "123456", now), ErrInvalidOtp)

	// expiry wins even when the code matches
	assert.ErrorIs(t, VerifyOtp(&code, &past, "123456", now), ErrExpiredOtp)
	// and also when it does not
	assert.ErrorIs(t, VerifyOtp(&code, &past, "000000", now), ErrExpiredOtp)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "ab***@x.com", MaskEmail("abcdef@x.com"))
	assert.Equal(t, "***@x.com", MaskEmail("ab@x.com"))
	assert.Equal(t, "***@x.com", MaskEmail("a@x.com"))
	assert.Equal(t, "***", MaskEmail("not-an-email"))
}
