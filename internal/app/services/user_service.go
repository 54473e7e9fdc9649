package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
)

// UserService handles admin-side account management.
type UserService struct {
	userRepo   UserRepository
	schoolRepo SchoolRepository
	logger     zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo UserRepository, schoolRepo SchoolRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo:   userRepo,
		schoolRepo: schoolRepo,
		logger:     logger,
	}
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetAllUsers retrieves every user account.
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// UpdateUser mutates email, role and school scope of an account.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role := models.RoleType(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewBadRequestError("role must be admin or school")
	}

	if role == models.RoleSchool {
		if req.SchoolID == nil {
			return nil, apperrors.NewBadRequestError("schoolId is required for school accounts")
		}
		if _, err := s.schoolRepo.GetByID(ctx, *req.SchoolID); err != nil {
			return nil, err
		}
		user.SchoolID = req.SchoolID
	} else {
		user.SchoolID = nil
	}

	user.Email = req.Email
	user.Role = role

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes an account. A user may not delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, callerID, id int64) error {
	if callerID == id {
		return apperrors.NewBadRequestError("you cannot delete your own account")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", id).Msg("User deleted")
	return nil
}
