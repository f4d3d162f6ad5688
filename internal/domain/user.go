package domain

import "time"

// User is an account known to the site. Accounts are provisioned outside the web flow.
type User struct {
	ID          int64
	Username    string
	DisplayName string
	CreatedAt   time.Time
}

// Session binds an opaque token to a user until it expires.
type Session struct {
	ID        string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// UserProfile is the read-only view rendered on the profile page.
type UserProfile struct {
	SessionID   string
	DisplayName string
}
