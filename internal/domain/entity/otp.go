package entity

import "time"

// OTPSlot is a one-time-password slot on a user account. The zero value is
// Absent; PendingOTP produces a Pending slot. Code and expiry always travel
// together, so the slot can never hold a code without a deadline.
type OTPSlot struct {
	code      string
	expiresAt time.Time
}

// PendingOTP returns a slot holding code until expiresAt.
func PendingOTP(code string, expiresAt time.Time) OTPSlot {
	return OTPSlot{code: code, expiresAt: expiresAt}
}

// Pending reports whether the slot holds an unconsumed code.
func (s OTPSlot) Pending() bool { return s.code != "" }

// Matches reports whether the slot is pending and holds exactly code.
func (s OTPSlot) Matches(code string) bool {
	return s.Pending() && code != "" && s.code == code
}

// Expired reports whether the slot's deadline has passed at now.
// A confirm at the exact deadline is still accepted.
func (s OTPSlot) Expired(now time.Time) bool {
	return now.After(s.expiresAt)
}

// Clear empties the slot, dropping code and expiry together.
func (s *OTPSlot) Clear() { *s = OTPSlot{} }

// Code returns the pending code, or "" when the slot is absent.
func (s OTPSlot) Code() string { return s.code }

// ExpiresAt returns the slot deadline; meaningful only while Pending.
func (s OTPSlot) ExpiresAt() time.Time { return s.expiresAt }
