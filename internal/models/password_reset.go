package models

import "time"

// PasswordResetToken привязан к email по значению, не к vendors.id.
type PasswordResetToken struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}
