package models

import "time"

// User defines an account based on the 'users' table. School-role users
// carry the SchoolID they are scoped to; admins have no school.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Email     *string   `json:"email,omitempty" db:"email" example:"office@school.edu.np"` // Unique when present, nullable
	IemisCode string    `json:"iemisCode" db:"iemis_code" example:"270040011"`
	Password  string    `json:"-" db:"password_hash"` // Hashed password, excluded from JSON
	Role      RoleType  `json:"role" db:"role" example:"school"`
	SchoolID  *int64    `json:"schoolId,omitempty" db:"school_id"` // Required when Role is school
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	School *School `json:"school,omitempty"` // Relation, no db tag
}

// EmailOrEmpty returns the email value or "" when unset.
func (u *User) EmailOrEmpty() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}
