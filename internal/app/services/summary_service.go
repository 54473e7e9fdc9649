package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/nepedu/resulthub/internal/app/auth"
	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
	"github.com/nepedu/resulthub/internal/pkg/grading"
)

// SummaryService computes marksheets and dashboard aggregates. All
// aggregation happens here over set-based queries; clients never receive
// raw mark dumps to fold themselves.
type SummaryService struct {
	studentRepo    StudentRepository
	marksRepo      MarksRepository
	assignmentRepo AssignmentRepository
	schoolRepo     SchoolRepository
	settings       *SettingService
	authz          *auth.AuthorizationService
	logger         zerolog.Logger
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(
	studentRepo StudentRepository,
	marksRepo MarksRepository,
	assignmentRepo AssignmentRepository,
	schoolRepo SchoolRepository,
	settings *SettingService,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) *SummaryService {
	return &SummaryService{
		studentRepo:    studentRepo,
		marksRepo:      marksRepo,
		assignmentRepo: assignmentRepo,
		schoolRepo:     schoolRepo,
		settings:       settings,
		authz:          authz,
		logger:         logger,
	}
}

// resolveYear falls back to the configured current academic year when the
// caller omits one.
func (s *SummaryService) resolveYear(ctx context.Context, academicYear string) (string, error) {
	if academicYear != "" {
		return academicYear, nil
	}

	year, err := s.settings.CurrentAcademicYear(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrSettingNotFound) {
			return "", apperrors.NewBadRequestError("academicYear is required when no current academic year is configured")
		}
		return "", err
	}
	return year, nil
}

// StudentResult computes the full marksheet of one student for one year.
// An empty year resolves to the configured current academic year. A
// student with no graded subjects is classified NG with a nil GPA.
func (s *SummaryService) StudentResult(ctx context.Context, user *models.User, studentSystemID, academicYear string) (*dto.StudentResult, error) {
	academicYear, err := s.resolveYear(ctx, academicYear)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetBySystemID(ctx, studentSystemID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.AuthorizeSchoolAccess(user, student.SchoolID); err != nil {
		return nil, err
	}

	marks, err := s.marksRepo.GetByStudentYear(ctx, student.ID, academicYear)
	if err != nil {
		return nil, err
	}

	result := &dto.StudentResult{
		StudentSystemID: student.StudentSystemID,
		StudentName:     student.Name,
		SchoolID:        student.SchoolID,
		Grade:           student.Grade,
		SymbolNo:        student.SymbolNo,
		AcademicYear:    academicYear,
		Subjects:        make([]dto.SubjectResult, 0, len(marks)),
	}

	gradingMarks := make([]grading.Mark, 0, len(marks))
	for _, m := range marks {
		sr := dto.SubjectResult{
			SubjectID:         m.SubjectID,
			TheoryObtained:    m.TheoryObtained,
			PracticalObtained: m.PracticalObtained,
			IsAbsent:          m.IsAbsent,
		}
		if m.Subject != nil {
			sr.SubjectName = m.Subject.Name
			sr.Credits = m.Subject.Credits
		}
		if m.IsAbsent {
			sr.LetterGrade = grading.NotGradedLabel
		} else {
			sr.GradePoint = grading.SubjectGradePoint(m.TheoryObtained, m.PracticalObtained)
			sr.LetterGrade = grading.LetterGrade(sr.GradePoint)
		}
		result.Subjects = append(result.Subjects, sr)

		gradingMarks = append(gradingMarks, grading.Mark{
			TheoryObtained:    m.TheoryObtained,
			PracticalObtained: m.PracticalObtained,
			IsAbsent:          m.IsAbsent,
		})
	}

	if gpa, graded := grading.StudentGPA(gradingMarks); graded {
		result.GPA = &gpa
		result.LetterGrade = grading.LetterGrade(gpa)
	} else {
		result.LetterGrade = grading.NotGradedLabel
	}

	return result, nil
}

// SchoolSummary computes the dashboard aggregate of one school for one
// year: demographic counts, average GPA over graded students, subject
// popularity, and the alert lists for incomplete data entry.
func (s *SummaryService) SchoolSummary(ctx context.Context, user *models.User, schoolID int64, academicYear string) (*dto.SchoolSummary, error) {
	academicYear, err := s.resolveYear(ctx, academicYear)
	if err != nil {
		return nil, err
	}

	if err := s.authz.AuthorizeSchoolAccess(user, schoolID); err != nil {
		return nil, err
	}

	students, err := s.studentRepo.ListAllBySchoolYear(ctx, schoolID, academicYear)
	if err != nil {
		return nil, err
	}

	marksByStudent, err := s.marksRepo.GetBySchoolYear(ctx, schoolID, academicYear)
	if err != nil {
		return nil, err
	}

	summary := &dto.SchoolSummary{
		SchoolID:     schoolID,
		AcademicYear: academicYear,
		StudentCount: int64(len(students)),
		GenderCounts: make(map[string]int64),
		GradeCounts:  make(map[string]int64),
	}

	var gpaSum float64
	for _, student := range students {
		summary.GenderCounts[student.Gender]++
		summary.GradeCounts[strconv.Itoa(student.Grade)]++

		gpa, graded := studentGPAFromModels(marksByStudent[student.ID])
		if graded {
			summary.GradedStudents++
			gpaSum += gpa
		} else {
			summary.NotGradedStudents++
		}
	}
	if summary.GradedStudents > 0 {
		avg := gpaSum / float64(summary.GradedStudents)
		summary.AverageGPA = &avg
	}

	summary.SubjectPopularity, err = s.assignmentRepo.SubjectPopularityBySchool(ctx, schoolID, academicYear)
	if err != nil {
		return nil, err
	}

	summary.UnmarkedStudents, err = s.marksRepo.StudentsWithUnsubmittedMarks(ctx, schoolID, academicYear)
	if err != nil {
		return nil, err
	}

	summary.UnassignedStudents, err = s.assignmentRepo.StudentsWithoutAssignments(ctx, schoolID, academicYear)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// AdminSummary computes the cross-tenant aggregate for one year.
func (s *SummaryService) AdminSummary(ctx context.Context, user *models.User, academicYear string) (*dto.AdminSummary, error) {
	if !s.authz.IsAdmin(user) {
		return nil, apperrors.ErrPermissionDenied
	}

	academicYear, err := s.resolveYear(ctx, academicYear)
	if err != nil {
		return nil, err
	}

	schools, err := s.schoolRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	studentCount, err := s.studentRepo.CountByYear(ctx, academicYear)
	if err != nil {
		return nil, err
	}

	marksByStudent, err := s.marksRepo.GetAllByYear(ctx, academicYear)
	if err != nil {
		return nil, err
	}

	summary := &dto.AdminSummary{
		AcademicYear: academicYear,
		SchoolCount:  int64(len(schools)),
		StudentCount: studentCount,
	}

	var gpaSum float64
	for _, marks := range marksByStudent {
		if gpa, graded := studentGPAFromModels(marks); graded {
			summary.GradedStudents++
			gpaSum += gpa
		}
	}
	if summary.GradedStudents > 0 {
		avg := gpaSum / float64(summary.GradedStudents)
		summary.AverageGPA = &avg
	}

	return summary, nil
}

// studentGPAFromModels adapts stored mark rows into the grading package
// input and computes the GPA.
func studentGPAFromModels(marks []*models.StudentMark) (float64, bool) {
	gradingMarks := make([]grading.Mark, 0, len(marks))
	for _, m := range marks {
		gradingMarks = append(gradingMarks, grading.Mark{
			TheoryObtained:    m.TheoryObtained,
			PracticalObtained: m.PracticalObtained,
			IsAbsent:          m.IsAbsent,
		})
	}
	return grading.StudentGPA(gradingMarks)
}
