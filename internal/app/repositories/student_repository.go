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

// StudentRepository handles database operations for student records.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, student_system_id, school_id, name, dob_ad, dob_bs,
	gender, grade, roll_no, symbol_no, registration_id, father_name,
	mother_name, mobile_no, academic_year, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.StudentSystemID,
		&s.SchoolID,
		&s.Name,
		&s.DobAD,
		&s.DobBS,
		&s.Gender,
		&s.Grade,
		&s.RollNo,
		&s.SymbolNo,
		&s.RegistrationID,
		&s.FatherName,
		&s.MotherName,
		&s.MobileNo,
		&s.AcademicYear,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_system_id, school_id, name, dob_ad, dob_bs,
			gender, grade, roll_no, symbol_no, registration_id, father_name,
			mother_name, mobile_no, academic_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.StudentSystemID,
		student.SchoolID,
		student.Name,
		student.DobAD,
		student.DobBS,
		student.Gender,
		student.Grade,
		student.RollNo,
		student.SymbolNo,
		student.RegistrationID,
		student.FatherName,
		student.MotherName,
		student.MobileNo,
		student.AcademicYear,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_school_symbol_year_key") {
			return apperrors.ErrDuplicateSymbolNo
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetBySystemID retrieves a student by the external system ID used in URLs.
func (r *StudentRepository) GetBySystemID(ctx context.Context, systemID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_system_id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, systemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// ListBySchool retrieves a page of students for a school with optional
// year and grade filters, newest first, plus the unfiltered total.
func (r *StudentRepository) ListBySchool(ctx context.Context, filter dto.StudentListFilter, offset uint64, limit int) ([]*models.Student, int64, error) {
	where := `WHERE school_id = $1`
	args := []interface{}{filter.SchoolID}

	if filter.AcademicYear != "" {
		args = append(args, filter.AcademicYear)
		where += fmt.Sprintf(" AND academic_year = $%d", len(args))
	}
	if filter.Grade != 0 {
		args = append(args, filter.Grade)
		where += fmt.Sprintf(" AND grade = $%d", len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM students ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	args = append(args, limit, offset)
	listQuery := fmt.Sprintf(`SELECT %s FROM students %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		studentColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// ListAllBySchoolYear retrieves every student of a school in a year, used
// by summary aggregation and roster export.
func (r *StudentRepository) ListAllBySchoolYear(ctx context.Context, schoolID int64, academicYear string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students
		WHERE school_id = $1 AND academic_year = $2
		ORDER BY grade, symbol_no`

	rows, err := r.db.Query(ctx, query, schoolID, academicYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// CountByYear counts students across all schools for one academic year.
func (r *StudentRepository) CountByYear(ctx context.Context, academicYear string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE academic_year = $1`, academicYear).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// Update mutates a student record. SchoolID and AcademicYear are fixed at
// creation; moving a student between tenants or years is not supported.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, dob_ad = $2, dob_bs = $3, gender = $4, grade = $5,
			roll_no = $6, symbol_no = $7, registration_id = $8, father_name = $9,
			mother_name = $10, mobile_no = $11, updated_at = now()
		WHERE id = $12
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name,
		student.DobAD,
		student.DobBS,
		student.Gender,
		student.Grade,
		student.RollNo,
		student.SymbolNo,
		student.RegistrationID,
		student.FatherName,
		student.MotherName,
		student.MobileNo,
		student.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_school_symbol_year_key") {
			return apperrors.ErrDuplicateSymbolNo
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by database ID.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
