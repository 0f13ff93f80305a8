package domain

import (
	"time"
)

// Role controls what an API key may do.
type Role string

const (
	RoleAdmin  Role = "admin"  // Create and delete records
	RoleReader Role = "reader" // GET-only access
)

// User is the slice of an account record this service borrows from the
// user store. Username may contain dots (e.g. faculty sub-accounts).
type User struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// APIKey authenticates requests on behalf of a user.
type APIKey struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`       // Human-readable label, e.g. "ci-deploy-key"
	KeyHash   string     `json:"-"`          // SHA-256 hash of the key (never store raw)
	KeyPrefix string     `json:"key_prefix"` // First 8 chars for identification
	Role      Role       `json:"role"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
