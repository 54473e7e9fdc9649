package seed

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/nepedu/resulthub/internal/app/models"
	appRepos "github.com/nepedu/resulthub/internal/app/repositories"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
	"github.com/nepedu/resulthub/internal/pkg/auth"
)

const (
	defaultAdminEmail = "admin@resulthub.app"
	// Admin accounts do not belong to a school; the IEMIS slot is filled
	// with a reserved all-zero code.
	defaultAdminIemis    = "000000000"
	defaultAdminPassword = "Admin123!"

	defaultAcademicYear = "2082"
)

// CreateDefaultData seeds the admin account, the first academic year and
// baseline application settings. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	yearRepo := appRepos.NewAcademicYearRepository(dbPool)
	settingRepo := appRepos.NewSettingRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default admin account --- //
	_, err := userRepo.GetByEmail(ctx, defaultAdminEmail)
	switch {
	case err == nil:
		lgr.Info().Msg("Admin user already exists, skipping creation")
	case errors.Is(err, apperrors.ErrUserNotFound):
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, hashErr := auth.HashPassword(defaultAdminPassword)
		if hashErr != nil {
			lgr.Error().Err(hashErr).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, hashErr)
			break
		}

		email := defaultAdminEmail
		admin := &appModels.User{
			Email:     &email,
			IemisCode: defaultAdminIemis,
			Password:  hashedPassword,
			Role:      appModels.RoleAdmin,
		}
		if createErr := userRepo.Create(ctx, admin); createErr != nil {
			lgr.Error().Err(createErr).Msg("Error creating admin user")
			finalErr = errors.Join(finalErr, createErr)
		} else {
			lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created successfully")
		}
	default:
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	}

	// --- First academic year --- //
	year := &appModels.AcademicYear{Year: defaultAcademicYear, IsActive: true}
	if err := yearRepo.Create(ctx, year); err != nil && !errors.Is(err, apperrors.ErrAcademicYearExists) {
		lgr.Error().Err(err).Msg("Error creating default academic year")
		finalErr = errors.Join(finalErr, err)
	}

	// --- Baseline settings --- //
	if _, err := settingRepo.Get(ctx, "current_academic_year"); errors.Is(err, apperrors.ErrSettingNotFound) {
		value, _ := json.Marshal(defaultAcademicYear)
		setting := &appModels.ApplicationSetting{Key: "current_academic_year", Value: value}
		if upsertErr := settingRepo.Upsert(ctx, setting); upsertErr != nil {
			lgr.Error().Err(upsertErr).Msg("Error seeding current academic year setting")
			finalErr = errors.Join(finalErr, upsertErr)
		}
	} else if err != nil {
		lgr.Error().Err(err).Msg("Error checking current academic year setting")
		finalErr = errors.Join(finalErr, err)
	}

	if _, err := settingRepo.Get(ctx, "application_name"); errors.Is(err, apperrors.ErrSettingNotFound) {
		value, _ := json.Marshal("ResultHub")
		setting := &appModels.ApplicationSetting{Key: "application_name", Value: value}
		if upsertErr := settingRepo.Upsert(ctx, setting); upsertErr != nil {
			lgr.Error().Err(upsertErr).Msg("Error seeding application name setting")
			finalErr = errors.Join(finalErr, upsertErr)
		}
	} else if err != nil {
		lgr.Error().Err(err).Msg("Error checking application name setting")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
