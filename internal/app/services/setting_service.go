package services

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/nepedu/resulthub/internal/app/models"
)

// Well-known setting keys.
const (
	SettingCurrentAcademicYear = "current_academic_year"
	SettingApplicationName     = "application_name"
)

// SettingService manages global application settings.
type SettingService struct {
	settingRepo SettingRepository
	logger      zerolog.Logger
}

// NewSettingService creates a new SettingService.
func NewSettingService(settingRepo SettingRepository, logger zerolog.Logger) *SettingService {
	return &SettingService{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// UpsertSetting writes one setting by key.
func (s *SettingService) UpsertSetting(ctx context.Context, key string, value json.RawMessage) (*models.ApplicationSetting, error) {
	setting := &models.ApplicationSetting{
		Key:   key,
		Value: value,
	}
	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	s.logger.Info().Str("key", key).Msg("Setting updated")
	return setting, nil
}

// GetSetting retrieves one setting by key.
func (s *SettingService) GetSetting(ctx context.Context, key string) (*models.ApplicationSetting, error) {
	return s.settingRepo.Get(ctx, key)
}

// GetAllSettings retrieves every setting.
func (s *SettingService) GetAllSettings(ctx context.Context) ([]*models.ApplicationSetting, error) {
	return s.settingRepo.GetAll(ctx)
}

// CurrentAcademicYear returns the globally configured default year label.
func (s *SettingService) CurrentAcademicYear(ctx context.Context) (string, error) {
	return s.settingRepo.GetString(ctx, SettingCurrentAcademicYear)
}

// DeleteSetting removes a setting by key.
func (s *SettingService) DeleteSetting(ctx context.Context, key string) error {
	return s.settingRepo.Delete(ctx, key)
}
