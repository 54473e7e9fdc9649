package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nepedu/resulthub/internal/app/auth"
	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
	"github.com/nepedu/resulthub/internal/pkg/helpers"
	"github.com/nepedu/resulthub/internal/pkg/validation"
)

// StudentService handles student records. Every operation is checked
// against the caller's school scope before touching data.
type StudentService struct {
	studentRepo StudentRepository
	yearRepo    AcademicYearRepository
	authz       *auth.AuthorizationService
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(
	studentRepo StudentRepository,
	yearRepo AcademicYearRepository,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		yearRepo:    yearRepo,
		authz:       authz,
		logger:      logger,
	}
}

// CreateStudent registers a student under the caller's school scope.
func (s *StudentService) CreateStudent(ctx context.Context, user *models.User, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := s.authz.AuthorizeSchoolAccess(user, req.SchoolID); err != nil {
		return nil, err
	}

	if !validation.ValidSymbolNo(req.SymbolNo) {
		return nil, apperrors.NewBadRequestError("symbol number is not well-formed")
	}

	year, err := s.yearRepo.GetByYear(ctx, req.AcademicYear)
	if err != nil {
		return nil, err
	}
	if !year.IsActive {
		return nil, apperrors.ErrAcademicYearInactive
	}

	student := &models.Student{
		StudentSystemID: newStudentSystemID(req.AcademicYear),
		SchoolID:        req.SchoolID,
		Name:            req.Name,
		DobAD:           req.DobAD,
		DobBS:           req.DobBS,
		Gender:          req.Gender,
		Grade:           req.Grade,
		RollNo:          req.RollNo,
		SymbolNo:        req.SymbolNo,
		RegistrationID:  req.RegistrationID,
		FatherName:      req.FatherName,
		MotherName:      req.MotherName,
		MobileNo:        req.MobileNo,
		AcademicYear:    req.AcademicYear,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("studentSystemID", student.StudentSystemID).
		Int64("schoolID", student.SchoolID).
		Msg("Student created")
	return student, nil
}

// GetStudent retrieves a student by system ID within the caller's scope.
func (s *StudentService) GetStudent(ctx context.Context, user *models.User, systemID string) (*models.Student, error) {
	student, err := s.studentRepo.GetBySystemID(ctx, systemID)
	if err != nil {
		return nil, err
	}

	if err := s.authz.AuthorizeSchoolAccess(user, student.SchoolID); err != nil {
		return nil, err
	}

	return student, nil
}

// ListStudents retrieves a page of students for a school.
func (s *StudentService) ListStudents(ctx context.Context, user *models.User, filter dto.StudentListFilter) ([]*models.Student, dto.PaginationInfo, error) {
	if err := s.authz.AuthorizeSchoolAccess(user, filter.SchoolID); err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)
	students, total, err := s.studentRepo.ListBySchool(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return students, helpers.NewPaginationInfo(total, filter.Page, limit), nil
}

// UpdateStudent mutates a student record. The school and academic year
// are fixed at creation.
func (s *StudentService) UpdateStudent(ctx context.Context, user *models.User, systemID string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.GetStudent(ctx, user, systemID)
	if err != nil {
		return nil, err
	}

	if !validation.ValidSymbolNo(req.SymbolNo) {
		return nil, apperrors.NewBadRequestError("symbol number is not well-formed")
	}

	student.Name = req.Name
	student.DobAD = req.DobAD
	student.DobBS = req.DobBS
	student.Gender = req.Gender
	student.Grade = req.Grade
	student.RollNo = req.RollNo
	student.SymbolNo = req.SymbolNo
	student.RegistrationID = req.RegistrationID
	student.FatherName = req.FatherName
	student.MotherName = req.MotherName
	student.MobileNo = req.MobileNo

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a student and, through cascading foreign keys, the
// student's assignments and marks.
func (s *StudentService) DeleteStudent(ctx context.Context, user *models.User, systemID string) error {
	student, err := s.GetStudent(ctx, user, systemID)
	if err != nil {
		return err
	}

	if err := s.studentRepo.Delete(ctx, student.ID); err != nil {
		return err
	}

	s.logger.Info().Str("studentSystemID", systemID).Msg("Student deleted")
	return nil
}

// newStudentSystemID builds the external student key used in URLs.
func newStudentSystemID(academicYear string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
	return fmt.Sprintf("STU-%s-%s", academicYear, suffix)
}
