package authz

import "itacatech/internal/models"

// IsAdmin reports whether the role may manage the team and see every task.
func IsAdmin(role models.UserRole) bool {
	return role == models.RoleAdmin
}
