package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash, never the raw password.
type User struct {
	ID         string
	Email      string
	Password   string
	Name       string
	AvatarURL  string
	IsVerified bool
	VerifyOTP  OTPSlot
	ResetOTP   OTPSlot
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
