package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOTPExpired(t *testing.T) {
	now := time.Now()
	otp := &OTP{ExpiresAt: now.Add(15 * time.Minute)}

	assert.False(t, otp.Expired(now))
	assert.False(t, otp.Expired(now.Add(14*time.Minute)))
	assert.True(t, otp.Expired(now.Add(16*time.Minute)))
}

func TestOTPAttemptsExhausted(t *testing.T) {
	otp := &OTP{Attempts: 0}
	assert.False(t, otp.AttemptsExhausted())

	otp.Attempts = MaxOTPAttempts - 1
	assert.False(t, otp.AttemptsExhausted())

	otp.Attempts = MaxOTPAttempts
	assert.True(t, otp.AttemptsExhausted())
}
