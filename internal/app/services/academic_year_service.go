package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
	"github.com/nepedu/resulthub/internal/pkg/validation"
)

// AcademicYearService manages the selectable exam years.
type AcademicYearService struct {
	yearRepo AcademicYearRepository
	logger   zerolog.Logger
}

// NewAcademicYearService creates a new AcademicYearService.
func NewAcademicYearService(yearRepo AcademicYearRepository, logger zerolog.Logger) *AcademicYearService {
	return &AcademicYearService{
		yearRepo: yearRepo,
		logger:   logger,
	}
}

// CreateYear adds an academic year.
func (s *AcademicYearService) CreateYear(ctx context.Context, req *dto.CreateAcademicYearRequest) (*models.AcademicYear, error) {
	if !validation.ValidAcademicYear(req.Year) {
		return nil, apperrors.NewBadRequestError("year must be a 4-digit label")
	}

	year := &models.AcademicYear{
		Year:     req.Year,
		IsActive: req.IsActive,
	}
	if err := s.yearRepo.Create(ctx, year); err != nil {
		return nil, err
	}

	s.logger.Info().Str("year", year.Year).Msg("Academic year created")
	return year, nil
}

// GetYears lists academic years; school users only see active ones.
func (s *AcademicYearService) GetYears(ctx context.Context, user *models.User) ([]*models.AcademicYear, error) {
	activeOnly := user == nil || user.Role != models.RoleAdmin
	return s.yearRepo.GetAll(ctx, activeOnly)
}

// UpdateYear toggles the active flag of a year.
func (s *AcademicYearService) UpdateYear(ctx context.Context, id int64, req *dto.UpdateAcademicYearRequest) (*models.AcademicYear, error) {
	years, err := s.yearRepo.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}

	var year *models.AcademicYear
	for _, y := range years {
		if y.ID == id {
			year = y
			break
		}
	}
	if year == nil {
		return nil, apperrors.ErrAcademicYearNotFound
	}

	year.IsActive = req.IsActive
	if err := s.yearRepo.Update(ctx, year); err != nil {
		return nil, err
	}

	return year, nil
}

// DeleteYear removes an academic year.
func (s *AcademicYearService) DeleteYear(ctx context.Context, id int64) error {
	return s.yearRepo.Delete(ctx, id)
}
