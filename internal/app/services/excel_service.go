package services

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/nepedu/resulthub/internal/app/auth"
	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
	"github.com/nepedu/resulthub/internal/pkg/excel"
)

// ExcelService handles roster workbook import and export.
type ExcelService struct {
	studentRepo StudentRepository
	schoolRepo  SchoolRepository
	authz       *auth.AuthorizationService
	logger      zerolog.Logger
}

// NewExcelService creates a new ExcelService.
func NewExcelService(
	studentRepo StudentRepository,
	schoolRepo SchoolRepository,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) *ExcelService {
	return &ExcelService{
		studentRepo: studentRepo,
		schoolRepo:  schoolRepo,
		authz:       authz,
		logger:      logger,
	}
}

// ParseStudentImport reads an uploaded workbook and returns its rows keyed
// by header for client-side review, with the resolved target school
// attached to every row. Nothing is persisted here; the client submits
// reviewed rows through the regular student endpoints.
func (s *ExcelService) ParseStudentImport(ctx context.Context, user *models.User, requestedSchoolID int64, r io.Reader) (*dto.ExcelImportResponse, error) {
	schoolID, err := s.resolveImportSchool(ctx, user, requestedSchoolID)
	if err != nil {
		return nil, err
	}

	rows, err := excel.ParseRows(r)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("could not parse workbook: %v", err))
	}

	for _, row := range rows {
		row["schoolId"] = strconv.FormatInt(schoolID, 10)
	}

	s.logger.Info().Int("rows", len(rows)).Int64("schoolID", schoolID).Msg("Workbook parsed")
	return &dto.ExcelImportResponse{
		SchoolID: schoolID,
		Count:    len(rows),
		Rows:     rows,
	}, nil
}

// resolveImportSchool determines which school an import targets. School
// accounts default to their own school; admins must name one explicitly.
func (s *ExcelService) resolveImportSchool(ctx context.Context, user *models.User, requested int64) (int64, error) {
	target := requested
	if user.Role == models.RoleSchool && target == 0 {
		if user.SchoolID == nil {
			return 0, apperrors.NewForbiddenError("school account has no school scope")
		}
		target = *user.SchoolID
	}
	if target == 0 {
		return 0, apperrors.NewBadRequestError("schoolId is required for admin imports")
	}

	if err := s.authz.AuthorizeSchoolAccess(user, target); err != nil {
		return 0, err
	}
	if _, err := s.schoolRepo.GetByID(ctx, target); err != nil {
		return 0, err
	}
	return target, nil
}

// rosterHeaders is the column order of the roster export.
var rosterHeaders = []string{
	"Symbol No", "Name", "Grade", "Gender", "DOB (BS)", "DOB (AD)",
	"Roll No", "Registration ID", "Father Name", "Mother Name", "Mobile No",
}

// ExportRoster builds a workbook of every student of a school in a year.
func (s *ExcelService) ExportRoster(ctx context.Context, user *models.User, schoolID int64, academicYear string) (*excelize.File, string, error) {
	if err := s.authz.AuthorizeSchoolAccess(user, schoolID); err != nil {
		return nil, "", err
	}

	school, err := s.schoolRepo.GetByID(ctx, schoolID)
	if err != nil {
		return nil, "", err
	}

	students, err := s.studentRepo.ListAllBySchoolYear(ctx, schoolID, academicYear)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]interface{}, 0, len(students))
	for _, st := range students {
		rows = append(rows, []interface{}{
			st.SymbolNo,
			st.Name,
			st.Grade,
			st.Gender,
			deref(st.DobBS),
			deref(st.DobAD),
			deref(st.RollNo),
			deref(st.RegistrationID),
			deref(st.FatherName),
			deref(st.MotherName),
			deref(st.MobileNo),
		})
	}

	f, err := excel.WriteSheet("Students", rosterHeaders, rows)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("roster_%s_%s.xlsx", school.IemisCode, academicYear)
	return f, filename, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
