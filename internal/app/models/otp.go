package models

import "time"

// MaxOTPAttempts is the number of failed verifications allowed before an
// OTP is invalidated.
const MaxOTPAttempts = 5

// OTP is a one-time password reset code ('password_reset_otps' table).
// At most one active OTP exists per email; issuing a new one replaces it.
type OTP struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Code      string    `json:"-" db:"code"` // 6-digit code, never serialized
	Attempts  int       `json:"attempts" db:"attempts"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Expired reports whether the OTP is past its expiry at the given instant.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// AttemptsExhausted reports whether the verification attempt cap is reached.
func (o *OTP) AttemptsExhausted() bool {
	return o.Attempts >= MaxOTPAttempts
}
