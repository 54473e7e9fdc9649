package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
	"github.com/nepedu/resulthub/internal/pkg/dberrors"
)

// AcademicYearRepository handles database operations for academic years.
type AcademicYearRepository struct {
	db *pgxpool.Pool
}

// NewAcademicYearRepository creates a new academic year repository.
func NewAcademicYearRepository(db *pgxpool.Pool) *AcademicYearRepository {
	return &AcademicYearRepository{
		db: db,
	}
}

// Create inserts a new academic year.
func (r *AcademicYearRepository) Create(ctx context.Context, year *models.AcademicYear) error {
	query := `INSERT INTO academic_years (year, is_active) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRow(ctx, query, year.Year, year.IsActive).Scan(&year.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "academic_years_year_key") {
			return apperrors.ErrAcademicYearExists
		}
		return fmt.Errorf("error creating academic year: %w", err)
	}

	return nil
}

// GetByYear retrieves an academic year by its label.
func (r *AcademicYearRepository) GetByYear(ctx context.Context, year string) (*models.AcademicYear, error) {
	query := `SELECT id, year, is_active FROM academic_years WHERE year = $1`

	var y models.AcademicYear
	err := r.db.QueryRow(ctx, query, year).Scan(&y.ID, &y.Year, &y.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAcademicYearNotFound
		}
		return nil, fmt.Errorf("error retrieving academic year: %w", err)
	}

	return &y, nil
}

// GetAll retrieves all academic years, newest label first. When activeOnly
// is set, inactive years are excluded.
func (r *AcademicYearRepository) GetAll(ctx context.Context, activeOnly bool) ([]*models.AcademicYear, error) {
	query := `SELECT id, year, is_active FROM academic_years`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY year DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		var y models.AcademicYear
		if err := rows.Scan(&y.ID, &y.Year, &y.IsActive); err != nil {
			return nil, err
		}
		years = append(years, &y)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return years, nil
}

// Update mutates the active flag of an academic year.
func (r *AcademicYearRepository) Update(ctx context.Context, year *models.AcademicYear) error {
	query := `UPDATE academic_years SET is_active = $1 WHERE id = $2`

	cmdTag, err := r.db.Exec(ctx, query, year.IsActive, year.ID)
	if err != nil {
		return fmt.Errorf("error updating academic year: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAcademicYearNotFound
	}

	return nil
}

// Delete deletes an academic year by ID.
func (r *AcademicYearRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM academic_years WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting academic year: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAcademicYearNotFound
	}

	return nil
}
