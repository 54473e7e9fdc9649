package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/db"
)

// AssignmentRepository handles subject assignment sets. Replacing the set
// for a (student, year) is a single transaction, so readers never observe
// a partially replaced set.
type AssignmentRepository struct {
	db    *pgxpool.Pool
	store *db.PostgresDB
}

// NewAssignmentRepository creates a new assignment repository.
func NewAssignmentRepository(store *db.PostgresDB) *AssignmentRepository {
	return &AssignmentRepository{
		db:    store.Pool,
		store: store,
	}
}

// ReplaceForStudentYear atomically replaces the full assignment set and
// the optional extra-credit subject of a student for one academic year.
func (r *AssignmentRepository) ReplaceForStudentYear(ctx context.Context, studentID int64, academicYear string, subjectIDs []int64, extraCreditSubjectID *int64) error {
	return r.store.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM student_subject_assignments WHERE student_id = $1 AND academic_year = $2`,
			studentID, academicYear); err != nil {
			return fmt.Errorf("error clearing assignments: %w", err)
		}

		for _, subjectID := range subjectIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO student_subject_assignments (student_id, subject_id, academic_year) VALUES ($1, $2, $3)`,
				studentID, subjectID, academicYear); err != nil {
				return fmt.Errorf("error inserting assignment: %w", err)
			}
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM extra_credit_assignments WHERE student_id = $1 AND academic_year = $2`,
			studentID, academicYear); err != nil {
			return fmt.Errorf("error clearing extra credit assignment: %w", err)
		}

		if extraCreditSubjectID != nil {
			if _, err := tx.Exec(ctx,
				`INSERT INTO extra_credit_assignments (student_id, subject_id, academic_year) VALUES ($1, $2, $3)`,
				studentID, *extraCreditSubjectID, academicYear); err != nil {
				return fmt.Errorf("error inserting extra credit assignment: %w", err)
			}
		}

		return nil
	})
}

// GetByStudentYear retrieves the assignment set of a student for a year,
// with subject details attached.
func (r *AssignmentRepository) GetByStudentYear(ctx context.Context, studentID int64, academicYear string) ([]*models.SubjectAssignment, error) {
	query := `
		SELECT a.id, a.student_id, a.subject_id, a.academic_year,
			s.id, s.name, s.grade, s.theory_code, s.internal_code, s.credits,
			s.full_marks, s.pass_marks, s.theory_full, s.practical_full
		FROM student_subject_assignments a
		JOIN subjects s ON s.id = a.subject_id
		WHERE a.student_id = $1 AND a.academic_year = $2
		ORDER BY s.name
	`

	rows, err := r.db.Query(ctx, query, studentID, academicYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.SubjectAssignment
	for rows.Next() {
		var a models.SubjectAssignment
		var s models.Subject
		if err := rows.Scan(
			&a.ID, &a.StudentID, &a.SubjectID, &a.AcademicYear,
			&s.ID, &s.Name, &s.Grade, &s.TheoryCode, &s.InternalCode, &s.Credits,
			&s.FullMarks, &s.PassMarks, &s.TheoryFull, &s.PracticalFull,
		); err != nil {
			return nil, err
		}
		a.Subject = &s
		assignments = append(assignments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// GetExtraCredit retrieves the extra-credit assignment of a student for a
// year, or nil when none exists.
func (r *AssignmentRepository) GetExtraCredit(ctx context.Context, studentID int64, academicYear string) (*models.ExtraCreditAssignment, error) {
	query := `
		SELECT id, student_id, subject_id, academic_year
		FROM extra_credit_assignments
		WHERE student_id = $1 AND academic_year = $2
	`

	var a models.ExtraCreditAssignment
	err := r.db.QueryRow(ctx, query, studentID, academicYear).Scan(
		&a.ID, &a.StudentID, &a.SubjectID, &a.AcademicYear,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving extra credit assignment: %w", err)
	}

	return &a, nil
}

// SubjectPopularityBySchool counts assignments per subject across a
// school's students in one year.
func (r *AssignmentRepository) SubjectPopularityBySchool(ctx context.Context, schoolID int64, academicYear string) ([]dto.SubjectPopularity, error) {
	query := `
		SELECT s.id, s.name, COUNT(*)
		FROM student_subject_assignments a
		JOIN students st ON st.id = a.student_id
		JOIN subjects s ON s.id = a.subject_id
		WHERE st.school_id = $1 AND a.academic_year = $2
		GROUP BY s.id, s.name
		ORDER BY COUNT(*) DESC, s.name
	`

	rows, err := r.db.Query(ctx, query, schoolID, academicYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var popularity []dto.SubjectPopularity
	for rows.Next() {
		var p dto.SubjectPopularity
		if err := rows.Scan(&p.SubjectID, &p.SubjectName, &p.Assigned); err != nil {
			return nil, err
		}
		popularity = append(popularity, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return popularity, nil
}

// StudentsWithoutAssignments lists names of students in a school and year
// that have no subject assignments, for dashboard alerts.
func (r *AssignmentRepository) StudentsWithoutAssignments(ctx context.Context, schoolID int64, academicYear string) ([]string, error) {
	query := `
		SELECT st.name
		FROM students st
		WHERE st.school_id = $1 AND st.academic_year = $2
			AND NOT EXISTS (
				SELECT 1 FROM student_subject_assignments a
				WHERE a.student_id = st.id AND a.academic_year = st.academic_year
			)
		ORDER BY st.name
	`

	rows, err := r.db.Query(ctx, query, schoolID, academicYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}
