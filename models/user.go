package models

// UserRole distinguishes the two demo account types.
type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

// User represents an authenticated session identity.
type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Avatar string   `json:"avatar,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Identity is the minimal authorization context passed into service calls.
// Services never reach back into the session layer; callers extract this
// from the current user and hand it in explicitly.
type Identity struct {
	ID   string
	Role UserRole
}

// Identity returns the authorization context for the user.
func (u User) Identity() Identity {
	return Identity{ID: u.ID, Role: u.Role}
}
