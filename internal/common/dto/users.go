package dto

import "github.com/snezamha/cms-core/internal/apiserver/database"

// UserResponse represents a dashboard user in API responses
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// FromUser converts a stored user into its response shape
func FromUser(u *database.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}

// UpdateRoleRequest represents a request to change a user's role
type UpdateRoleRequest struct {
	Role string `json:"role"`
}
