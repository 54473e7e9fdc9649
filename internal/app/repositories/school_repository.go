package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
	"github.com/nepedu/resulthub/internal/pkg/dberrors"
)

// SchoolRepository handles database operations for school tenants.
type SchoolRepository struct {
	db *pgxpool.Pool
}

// NewSchoolRepository creates a new school repository.
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
	}
}

const schoolColumns = `id, iemis_code, name, municipality, head_teacher_name,
	head_teacher_phone, head_teacher_email, status, subscription_plan,
	created_at, updated_at`

func scanSchool(row pgx.Row) (*models.School, error) {
	var s models.School
	err := row.Scan(
		&s.ID,
		&s.IemisCode,
		&s.Name,
		&s.Municipality,
		&s.HeadTeacherName,
		&s.HeadTeacherPhone,
		&s.HeadTeacherEmail,
		&s.Status,
		&s.SubscriptionPlan,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new school and fills in its generated fields.
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) error {
	query := `
		INSERT INTO schools (iemis_code, name, municipality, head_teacher_name,
			head_teacher_phone, head_teacher_email, status, subscription_plan)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		school.IemisCode,
		school.Name,
		school.Municipality,
		school.HeadTeacherName,
		school.HeadTeacherPhone,
		school.HeadTeacherEmail,
		school.Status,
		school.SubscriptionPlan,
	).Scan(&school.ID, &school.CreatedAt, &school.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "schools_iemis_code_key") {
			return apperrors.ErrSchoolAlreadyExists
		}
		return fmt.Errorf("error creating school: %w", err)
	}

	return nil
}

// GetByID retrieves a school by ID.
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*models.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools WHERE id = $1`

	school, err := scanSchool(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error retrieving school: %w", err)
	}
	return school, nil
}

// GetByIemisCode retrieves a school by its IEMIS code.
func (r *SchoolRepository) GetByIemisCode(ctx context.Context, iemisCode string) (*models.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools WHERE iemis_code = $1`

	school, err := scanSchool(r.db.QueryRow(ctx, query, iemisCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error retrieving school by IEMIS code: %w", err)
	}
	return school, nil
}

// GetAll retrieves all schools ordered by name.
func (r *SchoolRepository) GetAll(ctx context.Context) ([]*models.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schools []*models.School
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, err
		}
		schools = append(schools, school)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schools, nil
}

// Update updates an existing school.
func (r *SchoolRepository) Update(ctx context.Context, school *models.School) error {
	query := `
		UPDATE schools
		SET name = $1, municipality = $2, head_teacher_name = $3,
			head_teacher_phone = $4, head_teacher_email = $5, status = $6,
			subscription_plan = $7, updated_at = now()
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		school.Name,
		school.Municipality,
		school.HeadTeacherName,
		school.HeadTeacherPhone,
		school.HeadTeacherEmail,
		school.Status,
		school.SubscriptionPlan,
		school.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSchoolNotFound
	}

	return nil
}

// CountDependents counts the students and users still referencing the
// school. Deletion is refused while either count is non-zero.
func (r *SchoolRepository) CountDependents(ctx context.Context, id int64) (dto.SchoolDependentCounts, error) {
	var counts dto.SchoolDependentCounts
	query := `
		SELECT
			(SELECT COUNT(*) FROM students WHERE school_id = $1),
			(SELECT COUNT(*) FROM users WHERE school_id = $1)
	`

	err := r.db.QueryRow(ctx, query, id).Scan(&counts.Students, &counts.Users)
	if err != nil {
		return counts, fmt.Errorf("error counting school dependents: %w", err)
	}
	return counts, nil
}

// Delete deletes a school by ID.
func (r *SchoolRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM schools WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSchoolHasRelations
		}
		return fmt.Errorf("error deleting school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSchoolNotFound
	}

	return nil
}
