package models

// UserRole gates visibility and mutation rights across the portal.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleSDR   UserRole = "sdr"
)

func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleSDR
}

// User is a team-roster identity. One of them is also the current session.
type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Avatar string   `json:"avatar,omitempty"`
}

// UserUpdate carries a partial profile edit; nil fields stay untouched.
type UserUpdate struct {
	Name   *string   `json:"name,omitempty"`
	Email  *string   `json:"email,omitempty"`
	Role   *UserRole `json:"role,omitempty"`
	Avatar *string   `json:"avatar,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role,omitempty"`
}
