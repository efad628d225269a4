package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
)

var (
	ErrInvalidOtp = errors.New("invalid code")
	ErrExpiredOtp = errors.New("code expired")
)

// GenerateOtp returns a zero-padded 6-digit numeric code.
func GenerateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// VerifyOtp checks the submitted code against the stored code and expiry.
// Expiry wins over mismatch so the caller can tell the user to re-request.
func VerifyOtp(stored *string, expiresAt *time.Time, code string, now time.Time) error {
	if stored == nil || expiresAt == nil {
		return ErrInvalidOtp
	}
	if now.After(*expiresAt) {
		return ErrExpiredOtp
	}
	if *stored != code {
		return ErrInvalidOtp
	}
	return nil
}

// MaskEmail hides the local part so a code lookup never leaks a full address:
// "abcdef@x.com" -> "ab***@x.com", "ab@x.com" -> "***@x.com".
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return "***"
	}
	local, domain := email[:at], email[at+1:]
	if len(local) <= 2 {
		return "***@" + domain
	}
	return local[:2] + "***@" + domain
}
