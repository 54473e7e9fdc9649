package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nepedu/resulthub/internal/app/auth"
	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
	"github.com/nepedu/resulthub/internal/pkg/validation"
)

// SchoolService handles school tenant management. Creation and deletion are
// admin-only via the route middleware; updates are open to the owning
// school account as well.
type SchoolService struct {
	schoolRepo SchoolRepository
	authz      *auth.AuthorizationService
	logger     zerolog.Logger
}

// NewSchoolService creates a new SchoolService.
func NewSchoolService(schoolRepo SchoolRepository, authz *auth.AuthorizationService, logger zerolog.Logger) *SchoolService {
	return &SchoolService{
		schoolRepo: schoolRepo,
		authz:      authz,
		logger:     logger,
	}
}

// CreateSchool registers a new school tenant.
func (s *SchoolService) CreateSchool(ctx context.Context, req *dto.CreateSchoolRequest) (*models.School, error) {
	if !validation.ValidIemisCode(req.IemisCode) {
		return nil, apperrors.NewBadRequestError("IEMIS code must be 9 digits")
	}

	plan := models.SubscriptionPlan(req.SubscriptionPlan)
	if req.SubscriptionPlan == "" {
		plan = models.PlanBasic
	}

	school := &models.School{
		IemisCode:        req.IemisCode,
		Name:             req.Name,
		Municipality:     req.Municipality,
		HeadTeacherName:  req.HeadTeacherName,
		HeadTeacherPhone: req.HeadTeacherPhone,
		HeadTeacherEmail: req.HeadTeacherEmail,
		Status:           models.SchoolStatusActive,
		SubscriptionPlan: plan,
	}

	if err := s.schoolRepo.Create(ctx, school); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("schoolID", school.ID).Str("iemisCode", school.IemisCode).Msg("School created")
	return school, nil
}

// GetSchool retrieves a school by ID.
func (s *SchoolService) GetSchool(ctx context.Context, id int64) (*models.School, error) {
	return s.schoolRepo.GetByID(ctx, id)
}

// GetAllSchools retrieves all school tenants.
func (s *SchoolService) GetAllSchools(ctx context.Context) ([]*models.School, error) {
	return s.schoolRepo.GetAll(ctx)
}

// UpdateSchool mutates school profile fields. The IEMIS code is fixed at
// creation. Admins may update any school, school accounts only their own.
func (s *SchoolService) UpdateSchool(ctx context.Context, user *models.User, id int64, req *dto.UpdateSchoolRequest) (*models.School, error) {
	if err := s.authz.AuthorizeSchoolAccess(user, id); err != nil {
		return nil, err
	}

	school, err := s.schoolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	school.Name = req.Name
	school.Municipality = req.Municipality
	school.HeadTeacherName = req.HeadTeacherName
	school.HeadTeacherPhone = req.HeadTeacherPhone
	school.HeadTeacherEmail = req.HeadTeacherEmail
	if req.Status != "" {
		school.Status = models.SchoolStatus(req.Status)
	}
	if req.SubscriptionPlan != "" {
		school.SubscriptionPlan = models.SubscriptionPlan(req.SubscriptionPlan)
	}

	if err := s.schoolRepo.Update(ctx, school); err != nil {
		return nil, err
	}

	return school, nil
}

// DeleteSchool removes a school that has no dependent rows. When students
// or users still reference it, a conflict error carrying the counts is
// returned so the client can show what blocks the deletion.
func (s *SchoolService) DeleteSchool(ctx context.Context, id int64) error {
	counts, err := s.schoolRepo.CountDependents(ctx, id)
	if err != nil {
		return err
	}

	if counts.Students > 0 || counts.Users > 0 {
		custom := apperrors.NewConflictError(
			fmt.Sprintf("school has %d students and %d users and cannot be deleted", counts.Students, counts.Users))
		return custom.(*apperrors.CustomError).WithDetails(map[string]interface{}{
			"students": counts.Students,
			"users":    counts.Users,
		})
	}

	if err := s.schoolRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("schoolID", id).Msg("School deleted")
	return nil
}
