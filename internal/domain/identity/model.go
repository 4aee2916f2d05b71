package identity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account keyed by email. Accounts are created implicitly
// on the first verified login.
type User struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Email       string     `db:"email" json:"email"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	LastLoginAt *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
}

// Session is what GET /auth/session reports: the token claims resolved
// against the user record. Authenticated only when both sides exist.
type Session struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}
