package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
)

// SettingRepository handles database operations for application settings.
type SettingRepository struct {
	db *pgxpool.Pool
}

// NewSettingRepository creates a new setting repository.
func NewSettingRepository(db *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{
		db: db,
	}
}

// Upsert inserts or replaces a setting value by key.
func (r *SettingRepository) Upsert(ctx context.Context, setting *models.ApplicationSetting) error {
	query := `
		INSERT INTO application_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`

	if _, err := r.db.Exec(ctx, query, setting.Key, setting.Value); err != nil {
		return fmt.Errorf("error upserting setting: %w", err)
	}

	return nil
}

// Get retrieves a setting by key.
func (r *SettingRepository) Get(ctx context.Context, key string) (*models.ApplicationSetting, error) {
	query := `SELECT key, value FROM application_settings WHERE key = $1`

	var s models.ApplicationSetting
	err := r.db.QueryRow(ctx, query, key).Scan(&s.Key, &s.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSettingNotFound
		}
		return nil, fmt.Errorf("error retrieving setting: %w", err)
	}

	return &s, nil
}

// GetString retrieves a setting whose value is a JSON string and returns
// it decoded.
func (r *SettingRepository) GetString(ctx context.Context, key string) (string, error) {
	setting, err := r.Get(ctx, key)
	if err != nil {
		return "", err
	}

	var value string
	if err := json.Unmarshal(setting.Value, &value); err != nil {
		return "", fmt.Errorf("setting %s is not a string value: %w", key, err)
	}

	return value, nil
}

// GetAll retrieves all settings ordered by key.
func (r *SettingRepository) GetAll(ctx context.Context) ([]*models.ApplicationSetting, error) {
	query := `SELECT key, value FROM application_settings ORDER BY key`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*models.ApplicationSetting
	for rows.Next() {
		var s models.ApplicationSetting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Delete removes a setting by key.
func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM application_settings WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("error deleting setting: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSettingNotFound
	}

	return nil
}
