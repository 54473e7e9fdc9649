package auth

import (
	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
)

// AuthorizationService is the single decision point for tenant access.
// Every school-scoped handler asks it before touching data, so the rule
// lives in one place instead of being re-derived per endpoint.
type AuthorizationService struct{}

// NewAuthorizationService creates a new authorization service.
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// CanAccessSchool reports whether the user may operate on data belonging
// to the given school. Admins may access every school; school users only
// their own.
func (s *AuthorizationService) CanAccessSchool(user *models.User, schoolID int64) bool {
	if user == nil {
		return false
	}
	if user.Role == models.RoleAdmin {
		return true
	}
	return user.Role == models.RoleSchool && user.SchoolID != nil && *user.SchoolID == schoolID
}

// AuthorizeSchoolAccess returns a permission error when CanAccessSchool
// denies, for use in service methods.
func (s *AuthorizationService) AuthorizeSchoolAccess(user *models.User, schoolID int64) error {
	if !s.CanAccessSchool(user, schoolID) {
		return apperrors.NewForbiddenError("you do not have access to this school's data")
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (s *AuthorizationService) IsAdmin(user *models.User) bool {
	return user != nil && user.Role == models.RoleAdmin
}
