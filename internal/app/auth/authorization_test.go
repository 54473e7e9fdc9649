package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
)

func schoolUser(schoolID int64) *models.User {
	return &models.User{ID: 10, Role: models.RoleSchool, SchoolID: &schoolID}
}

func TestCanAccessSchool(t *testing.T) {
	svc := NewAuthorizationService()

	admin := &models.User{ID: 1, Role: models.RoleAdmin}

	tests := []struct {
		name     string
		user     *models.User
		schoolID int64
		want     bool
	}{
		{"admin accesses any school", admin, 42, true},
		{"school user accesses own school", schoolUser(7), 7, true},
		{"school user denied other school", schoolUser(7), 8, false},
		{"school user without school id denied", &models.User{Role: models.RoleSchool}, 7, false},
		{"nil user denied", nil, 7, false},
		{"unknown role denied", &models.User{Role: models.RoleType("teacher")}, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.CanAccessSchool(tt.user, tt.schoolID))
		})
	}
}

func TestAuthorizeSchoolAccess(t *testing.T) {
	svc := NewAuthorizationService()

	assert.NoError(t, svc.AuthorizeSchoolAccess(schoolUser(3), 3))

	err := svc.AuthorizeSchoolAccess(schoolUser(3), 4)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestIsAdmin(t *testing.T) {
	svc := NewAuthorizationService()

	assert.True(t, svc.IsAdmin(&models.User{Role: models.RoleAdmin}))
	assert.False(t, svc.IsAdmin(schoolUser(1)))
	assert.False(t, svc.IsAdmin(nil))
}
