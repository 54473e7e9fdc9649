package dto

// UpdateUserRequest is the admin payload for mutating a user account.
// Password changes go through the dedicated password endpoints.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Role     string  `json:"role" binding:"required,oneof=admin school"`
	SchoolID *int64  `json:"schoolId,omitempty"`
}
