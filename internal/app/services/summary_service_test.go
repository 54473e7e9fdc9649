package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepedu/resulthub/internal/app/auth"
	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
	"github.com/nepedu/resulthub/internal/pkg/grading"
)

func newSummaryServiceForTest(studentRepo *fakeStudentRepo, marksRepo *fakeMarksRepo, settingRepo *fakeSettingRepo) *SummaryService {
	return NewSummaryService(
		studentRepo,
		marksRepo,
		newFakeAssignmentRepo(),
		newFakeSchoolRepo(),
		NewSettingService(settingRepo, zerolog.Nop()),
		auth.NewAuthorizationService(),
		zerolog.Nop(),
	)
}

func TestStudentResult_OmittedYearUsesCurrentYearSetting(t *testing.T) {
	student := &models.Student{ID: 5, StudentSystemID: "STU-2081-00042", SchoolID: 3, Grade: 11}
	marksRepo := newFakeMarksRepo()
	settingRepo := newFakeSettingRepo()
	settingRepo.strings[SettingCurrentAcademicYear] = "2082"
	svc := newSummaryServiceForTest(newFakeStudentRepo(student), marksRepo, settingRepo)

	result, err := svc.StudentResult(context.Background(), adminUser(), student.StudentSystemID, "")
	require.NoError(t, err)

	assert.Equal(t, "2082", result.AcademicYear)
	assert.Equal(t, []string{"2082"}, marksRepo.yearsQueried)
	// No marks stored for the resolved year, so the student is not graded.
	assert.Nil(t, result.GPA)
	assert.Equal(t, grading.NotGradedLabel, result.LetterGrade)
}

func TestStudentResult_ExplicitYearWinsOverSetting(t *testing.T) {
	student := &models.Student{ID: 5, StudentSystemID: "STU-2081-00042", SchoolID: 3, Grade: 11}
	marksRepo := newFakeMarksRepo()
	settingRepo := newFakeSettingRepo()
	settingRepo.strings[SettingCurrentAcademicYear] = "2082"
	svc := newSummaryServiceForTest(newFakeStudentRepo(student), marksRepo, settingRepo)

	result, err := svc.StudentResult(context.Background(), adminUser(), student.StudentSystemID, "2080")
	require.NoError(t, err)

	assert.Equal(t, "2080", result.AcademicYear)
	assert.Equal(t, []string{"2080"}, marksRepo.yearsQueried)
}

func TestStudentResult_NoYearAndNoSettingIsBadRequest(t *testing.T) {
	student := &models.Student{ID: 5, StudentSystemID: "STU-2081-00042", SchoolID: 3, Grade: 11}
	svc := newSummaryServiceForTest(newFakeStudentRepo(student), newFakeMarksRepo(), newFakeSettingRepo())

	_, err := svc.StudentResult(context.Background(), adminUser(), student.StudentSystemID, "")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestAdminSummary_RequiresAdminBeforeResolvingYear(t *testing.T) {
	ownSchool := int64(3)
	user := &models.User{ID: 2, IemisCode: "270040011", Role: models.RoleSchool, SchoolID: &ownSchool}
	svc := newSummaryServiceForTest(newFakeStudentRepo(), newFakeMarksRepo(), newFakeSettingRepo())

	_, err := svc.AdminSummary(context.Background(), user, "")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
