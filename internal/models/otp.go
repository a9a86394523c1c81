package models

import "time"

// OTPCode is an issued, not-yet-consumed verification code. Rows are deleted
// on successful verification; expired rows stay until overwritten by nothing
// (expiry is enforced at lookup time, not by a sweeper).
type OTPCode struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is 0 for pre-registration flows where no user row exists yet.
	UserID uint   `gorm:"index:idx_otp_lookup" json:"user_id"`
	Code   string `gorm:"size:12;not null;index:idx_otp_lookup" json:"-"`
	Type   string `gorm:"size:20;not null;index:idx_otp_lookup" json:"type"`

	// Email is set only for registration codes, carrying the pending
	// registrant's address before the user row exists.
	Email string `gorm:"size:120" json:"email,omitempty"`

	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// VerifiedEmail records a registration address whose code was verified,
// supporting the account-creation step that follows.
type VerifiedEmail struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint   `json:"user_id"`
	Code   string `gorm:"size:12;not null" json:"-"`
	Email  string `gorm:"size:120;not null;index" json:"email"`

	CreatedAt time.Time `json:"created_at"`
}

// OTPLoginLog is an append-only success log for login-type verifications of
// real users. Failed attempts are intentionally never logged.
type OTPLoginLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint   `gorm:"not null;index" json:"user_id"`
	Code   string `gorm:"size:12;not null" json:"-"`
	Status string `gorm:"size:20;not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
