package domain

import "time"

// AdminUser represents an administrative account. Only the first admin
// can sign up; further accounts are refused by the bootstrap guard.
type AdminUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session represents an authenticated admin session.
type Session struct {
	Token       string    `json:"token"`
	AdminUserID string    `json:"admin_user_id"`
	Expires     time.Time `json:"expires"`
	Created     time.Time `json:"created"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.Expires)
}
