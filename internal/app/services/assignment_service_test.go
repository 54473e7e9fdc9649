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

func newAssignmentServiceForTest(assignmentRepo *fakeAssignmentRepo, studentRepo *fakeStudentRepo, subjectRepo *fakeSubjectRepo) *AssignmentService {
	return NewAssignmentService(assignmentRepo, studentRepo, subjectRepo, auth.NewAuthorizationService(), zerolog.Nop())
}

func adminUser() *models.User {
	return &models.User{ID: 1, IemisCode: "000000000", Role: models.RoleAdmin}
}

func gradeSubject(id int64, name string, grade int) *models.Subject {
	return &models.Subject{ID: id, Name: name, Grade: grade}
}

func TestReplaceAssignments_SameSetTwiceIsIdempotent(t *testing.T) {
	student := &models.Student{ID: 5, StudentSystemID: "STU-2081-00042", SchoolID: 3, Grade: 11}
	assignmentRepo := newFakeAssignmentRepo()
	svc := newAssignmentServiceForTest(
		assignmentRepo,
		newFakeStudentRepo(student),
		newFakeSubjectRepo(
			gradeSubject(1, "Nepali", 11),
			gradeSubject(2, "English", 11),
			gradeSubject(3, "Mathematics", 11),
		),
	)

	req := &dto.ReplaceAssignmentsRequest{
		AcademicYear: "2081",
		SubjectIDs:   []int64{1, 2, 3},
	}

	first, err := svc.ReplaceAssignments(context.Background(), adminUser(), student.StudentSystemID, req)
	require.NoError(t, err)
	second, err := svc.ReplaceAssignments(context.Background(), adminUser(), student.StudentSystemID, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, assignmentRepo.replaces)

	stored := assignmentRepo.sets[assignmentKey(student.ID, "2081")]
	assert.Equal(t, []int64{1, 2, 3}, stored.subjectIDs)
	assert.Nil(t, stored.extraCreditSubjectID)
}

func TestReplaceAssignments_DedupesSubjectIDs(t *testing.T) {
	student := &models.Student{ID: 5, StudentSystemID: "STU-2081-00042", SchoolID: 3, Grade: 11}
	assignmentRepo := newFakeAssignmentRepo()
	svc := newAssignmentServiceForTest(
		assignmentRepo,
		newFakeStudentRepo(student),
		newFakeSubjectRepo(gradeSubject(1, "Nepali", 11), gradeSubject(2, "English", 11)),
	)

	resp, err := svc.ReplaceAssignments(context.Background(), adminUser(), student.StudentSystemID, &dto.ReplaceAssignmentsRequest{
		AcademicYear: "2081",
		SubjectIDs:   []int64{1, 2, 1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, resp.SubjectIDs)
}

func TestReplaceAssignments_RejectsGradeMismatch(t *testing.T) {
	student := &models.Student{ID: 5, StudentSystemID: "STU-2081-00042", SchoolID: 3, Grade: 11}
	svc := newAssignmentServiceForTest(
		newFakeAssignmentRepo(),
		newFakeStudentRepo(student),
		newFakeSubjectRepo(gradeSubject(9, "Physics", 12)),
	)

	_, err := svc.ReplaceAssignments(context.Background(), adminUser(), student.StudentSystemID, &dto.ReplaceAssignmentsRequest{
		AcademicYear: "2081",
		SubjectIDs:   []int64{9},
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestReplaceAssignments_OtherSchoolUserForbidden(t *testing.T) {
	student := &models.Student{ID: 5, StudentSystemID: "STU-2081-00042", SchoolID: 3, Grade: 11}
	otherSchool := int64(4)
	user := &models.User{ID: 2, IemisCode: "270040011", Role: models.RoleSchool, SchoolID: &otherSchool}
	assignmentRepo := newFakeAssignmentRepo()
	svc := newAssignmentServiceForTest(assignmentRepo, newFakeStudentRepo(student), newFakeSubjectRepo())

	_, err := svc.ReplaceAssignments(context.Background(), user, student.StudentSystemID, &dto.ReplaceAssignmentsRequest{
		AcademicYear: "2081",
		SubjectIDs:   []int64{1},
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Zero(t, assignmentRepo.replaces)
}
