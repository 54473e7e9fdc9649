package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepedu/resulthub/internal/app/auth"
	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
)

func updateRequest(name string) *dto.UpdateSchoolRequest {
	return &dto.UpdateSchoolRequest{
		Name:            name,
		Municipality:    "Kathmandu",
		HeadTeacherName: "Ram Prasad Sharma",
	}
}

func TestUpdateSchool_OwningSchoolAccountAllowed(t *testing.T) {
	schoolRepo := newFakeSchoolRepo(&models.School{
		ID:        3,
		IemisCode: "270040011",
		Name:      "Old Name",
		Status:    models.SchoolStatusActive,
	})
	svc := NewSchoolService(schoolRepo, auth.NewAuthorizationService(), zerolog.Nop())

	ownSchool := int64(3)
	user := &models.User{ID: 2, IemisCode: "270040011", Role: models.RoleSchool, SchoolID: &ownSchool}

	updated, err := svc.UpdateSchool(context.Background(), user, 3, updateRequest("Shree Janata Secondary School"))
	require.NoError(t, err)
	assert.Equal(t, "Shree Janata Secondary School", updated.Name)
	require.Len(t, schoolRepo.updated, 1)
}

func TestUpdateSchool_OtherSchoolAccountForbidden(t *testing.T) {
	schoolRepo := newFakeSchoolRepo(&models.School{ID: 3, IemisCode: "270040011", Name: "Old Name"})
	svc := NewSchoolService(schoolRepo, auth.NewAuthorizationService(), zerolog.Nop())

	otherSchool := int64(9)
	user := &models.User{ID: 2, IemisCode: "270040099", Role: models.RoleSchool, SchoolID: &otherSchool}

	_, err := svc.UpdateSchool(context.Background(), user, 3, updateRequest("Hijacked Name"))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Empty(t, schoolRepo.updated)
}

func TestUpdateSchool_AdminMayUpdateAnySchool(t *testing.T) {
	schoolRepo := newFakeSchoolRepo(&models.School{ID: 3, IemisCode: "270040011", Name: "Old Name"})
	svc := NewSchoolService(schoolRepo, auth.NewAuthorizationService(), zerolog.Nop())

	updated, err := svc.UpdateSchool(context.Background(), adminUser(), 3, updateRequest("Renamed by Admin"))
	require.NoError(t, err)
	assert.Equal(t, "Renamed by Admin", updated.Name)
}
