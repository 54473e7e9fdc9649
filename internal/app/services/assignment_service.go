package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nepedu/resulthub/internal/app/auth"
	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
)

// AssignmentService handles the subject assignment sets of students.
type AssignmentService struct {
	assignmentRepo AssignmentRepository
	studentRepo    StudentRepository
	subjectRepo    SubjectRepository
	authz          *auth.AuthorizationService
	logger         zerolog.Logger
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(
	assignmentRepo AssignmentRepository,
	studentRepo StudentRepository,
	subjectRepo SubjectRepository,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		studentRepo:    studentRepo,
		subjectRepo:    subjectRepo,
		authz:          authz,
		logger:         logger,
	}
}

// ReplaceAssignments atomically replaces the full subject set of a student
// for one year. Every referenced subject must exist and match the
// student's grade. Submitting the same set twice is a no-op.
func (s *AssignmentService) ReplaceAssignments(ctx context.Context, user *models.User, studentSystemID string, req *dto.ReplaceAssignmentsRequest) (*dto.AssignmentSetResponse, error) {
	student, err := s.studentRepo.GetBySystemID(ctx, studentSystemID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.AuthorizeSchoolAccess(user, student.SchoolID); err != nil {
		return nil, err
	}

	ids := dedupeIDs(req.SubjectIDs)

	lookupIDs := ids
	if req.ExtraCreditSubjectID != nil {
		lookupIDs = append(append([]int64{}, ids...), *req.ExtraCreditSubjectID)
	}

	subjects, err := s.subjectRepo.GetByIDs(ctx, lookupIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range lookupIDs {
		subject, ok := subjects[id]
		if !ok {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("subject %d does not exist", id))
		}
		if subject.Grade != student.Grade {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("subject %q is for grade %d but the student is in grade %d", subject.Name, subject.Grade, student.Grade))
		}
	}

	if req.ExtraCreditSubjectID != nil {
		for _, id := range ids {
			if id == *req.ExtraCreditSubjectID {
				return nil, apperrors.NewBadRequestError("extra credit subject cannot also be a regular assignment")
			}
		}
	}

	if err := s.assignmentRepo.ReplaceForStudentYear(ctx, student.ID, req.AcademicYear, ids, req.ExtraCreditSubjectID); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("studentSystemID", studentSystemID).
		Str("academicYear", req.AcademicYear).
		Int("subjects", len(ids)).
		Msg("Assignments replaced")

	return &dto.AssignmentSetResponse{
		StudentID:            student.ID,
		AcademicYear:         req.AcademicYear,
		SubjectIDs:           ids,
		ExtraCreditSubjectID: req.ExtraCreditSubjectID,
	}, nil
}

// GetAssignments retrieves the assignment set and extra-credit subject of
// a student for one year.
func (s *AssignmentService) GetAssignments(ctx context.Context, user *models.User, studentSystemID, academicYear string) ([]*models.SubjectAssignment, *models.ExtraCreditAssignment, error) {
	student, err := s.studentRepo.GetBySystemID(ctx, studentSystemID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.authz.AuthorizeSchoolAccess(user, student.SchoolID); err != nil {
		return nil, nil, err
	}

	assignments, err := s.assignmentRepo.GetByStudentYear(ctx, student.ID, academicYear)
	if err != nil {
		return nil, nil, err
	}

	extra, err := s.assignmentRepo.GetExtraCredit(ctx, student.ID, academicYear)
	if err != nil {
		return nil, nil, err
	}

	return assignments, extra, nil
}

// dedupeIDs drops repeated IDs while preserving order, so a sloppy client
// payload does not trip the unique constraint.
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
