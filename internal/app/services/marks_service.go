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

// MarksService handles exam result entry.
type MarksService struct {
	marksRepo      MarksRepository
	assignmentRepo AssignmentRepository
	studentRepo    StudentRepository
	subjectRepo    SubjectRepository
	authz          *auth.AuthorizationService
	logger         zerolog.Logger
}

// NewMarksService creates a new MarksService.
func NewMarksService(
	marksRepo MarksRepository,
	assignmentRepo AssignmentRepository,
	studentRepo StudentRepository,
	subjectRepo SubjectRepository,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) *MarksService {
	return &MarksService{
		marksRepo:      marksRepo,
		assignmentRepo: assignmentRepo,
		studentRepo:    studentRepo,
		subjectRepo:    subjectRepo,
		authz:          authz,
		logger:         logger,
	}
}

// SaveMarks atomically replaces all marks of a student for one year.
// Every entry must reference a subject assigned to the student (regular or
// extra credit), and obtained marks may not exceed the subject's component
// full marks. Absent entries are stored with zero obtained marks.
func (s *MarksService) SaveMarks(ctx context.Context, user *models.User, studentSystemID string, req *dto.SaveMarksRequest) error {
	student, err := s.studentRepo.GetBySystemID(ctx, studentSystemID)
	if err != nil {
		return err
	}
	if err := s.authz.AuthorizeSchoolAccess(user, student.SchoolID); err != nil {
		return err
	}

	assigned, err := s.assignedSubjectIDs(ctx, student.ID, req.AcademicYear)
	if err != nil {
		return err
	}

	seen := make(map[int64]struct{}, len(req.Marks))
	marks := make([]*models.StudentMark, 0, len(req.Marks))
	for _, entry := range req.Marks {
		if _, ok := assigned[entry.SubjectID]; !ok {
			return apperrors.NewBadRequestError(
				fmt.Sprintf("subject %d is not assigned to this student for %s", entry.SubjectID, req.AcademicYear))
		}
		if _, dup := seen[entry.SubjectID]; dup {
			return apperrors.NewBadRequestError(
				fmt.Sprintf("subject %d appears more than once in the submission", entry.SubjectID))
		}
		seen[entry.SubjectID] = struct{}{}

		mark := &models.StudentMark{
			StudentID:    student.ID,
			SubjectID:    entry.SubjectID,
			AcademicYear: req.AcademicYear,
			IsAbsent:     entry.IsAbsent,
		}
		if !entry.IsAbsent {
			subject, err := s.subjectRepo.GetByID(ctx, entry.SubjectID)
			if err != nil {
				return err
			}
			if entry.TheoryObtained > float64(subject.TheoryFull) || entry.PracticalObtained > float64(subject.PracticalFull) {
				custom := apperrors.NewBadRequestError(
					fmt.Sprintf("obtained marks for %q exceed the subject full marks", subject.Name))
				return custom.(*apperrors.CustomError).WithDetails(map[string]interface{}{
					"subjectId":     subject.ID,
					"theoryFull":    subject.TheoryFull,
					"practicalFull": subject.PracticalFull,
				})
			}
			mark.TheoryObtained = entry.TheoryObtained
			mark.PracticalObtained = entry.PracticalObtained
		}
		marks = append(marks, mark)
	}

	if err := s.marksRepo.ReplaceForStudentYear(ctx, student.ID, req.AcademicYear, marks); err != nil {
		return err
	}

	s.logger.Info().
		Str("studentSystemID", studentSystemID).
		Str("academicYear", req.AcademicYear).
		Int("marks", len(marks)).
		Msg("Marks saved")
	return nil
}

// GetMarks retrieves the stored marks of a student for one year, with
// subject details.
func (s *MarksService) GetMarks(ctx context.Context, user *models.User, studentSystemID, academicYear string) ([]*models.StudentMark, error) {
	student, err := s.studentRepo.GetBySystemID(ctx, studentSystemID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.AuthorizeSchoolAccess(user, student.SchoolID); err != nil {
		return nil, err
	}

	return s.marksRepo.GetByStudentYear(ctx, student.ID, academicYear)
}

// assignedSubjectIDs collects the regular plus extra-credit subject IDs a
// student may receive marks for.
func (s *MarksService) assignedSubjectIDs(ctx context.Context, studentID int64, academicYear string) (map[int64]struct{}, error) {
	assignments, err := s.assignmentRepo.GetByStudentYear(ctx, studentID, academicYear)
	if err != nil {
		return nil, err
	}

	assigned := make(map[int64]struct{}, len(assignments)+1)
	for _, a := range assignments {
		assigned[a.SubjectID] = struct{}{}
	}

	extra, err := s.assignmentRepo.GetExtraCredit(ctx, studentID, academicYear)
	if err != nil {
		return nil, err
	}
	if extra != nil {
		assigned[extra.SubjectID] = struct{}{}
	}

	return assigned, nil
}
