package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/db"
)

// MarksRepository handles exam marks. Saving marks for a (student, year)
// is a full replace inside one transaction, so a failure mid-sequence
// never leaves a mix of old-deleted and new-partial rows.
type MarksRepository struct {
	db    *pgxpool.Pool
	store *db.PostgresDB
}

// NewMarksRepository creates a new marks repository.
func NewMarksRepository(store *db.PostgresDB) *MarksRepository {
	return &MarksRepository{
		db:    store.Pool,
		store: store,
	}
}

// ReplaceForStudentYear atomically replaces all marks of a student for
// one academic year with the given rows.
func (r *MarksRepository) ReplaceForStudentYear(ctx context.Context, studentID int64, academicYear string, marks []*models.StudentMark) error {
	return r.store.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM student_marks WHERE student_id = $1 AND academic_year = $2`,
			studentID, academicYear); err != nil {
			return fmt.Errorf("error clearing marks: %w", err)
		}

		for _, mark := range marks {
			if _, err := tx.Exec(ctx,
				`INSERT INTO student_marks (student_id, subject_id, academic_year,
					theory_obtained, practical_obtained, is_absent)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				studentID, mark.SubjectID, academicYear,
				mark.TheoryObtained, mark.PracticalObtained, mark.IsAbsent); err != nil {
				return fmt.Errorf("error inserting mark: %w", err)
			}
		}

		return nil
	})
}

// GetByStudentYear retrieves all marks of a student for a year with
// subject details attached.
func (r *MarksRepository) GetByStudentYear(ctx context.Context, studentID int64, academicYear string) ([]*models.StudentMark, error) {
	query := `
		SELECT m.id, m.student_id, m.subject_id, m.academic_year,
			m.theory_obtained, m.practical_obtained, m.is_absent,
			s.id, s.name, s.grade, s.theory_code, s.internal_code, s.credits,
			s.full_marks, s.pass_marks, s.theory_full, s.practical_full
		FROM student_marks m
		JOIN subjects s ON s.id = m.subject_id
		WHERE m.student_id = $1 AND m.academic_year = $2
		ORDER BY s.name
	`

	rows, err := r.db.Query(ctx, query, studentID, academicYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []*models.StudentMark
	for rows.Next() {
		var m models.StudentMark
		var s models.Subject
		if err := rows.Scan(
			&m.ID, &m.StudentID, &m.SubjectID, &m.AcademicYear,
			&m.TheoryObtained, &m.PracticalObtained, &m.IsAbsent,
			&s.ID, &s.Name, &s.Grade, &s.TheoryCode, &s.InternalCode, &s.Credits,
			&s.FullMarks, &s.PassMarks, &s.TheoryFull, &s.PracticalFull,
		); err != nil {
			return nil, err
		}
		m.Subject = &s
		marks = append(marks, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return marks, nil
}

// GetBySchoolYear retrieves all marks across a school's students for a
// year, keyed by student ID. One set-based query feeds the whole summary
// instead of a per-student fan-out.
func (r *MarksRepository) GetBySchoolYear(ctx context.Context, schoolID int64, academicYear string) (map[int64][]*models.StudentMark, error) {
	query := `
		SELECT m.id, m.student_id, m.subject_id, m.academic_year,
			m.theory_obtained, m.practical_obtained, m.is_absent
		FROM student_marks m
		JOIN students st ON st.id = m.student_id
		WHERE st.school_id = $1 AND m.academic_year = $2
	`

	rows, err := r.db.Query(ctx, query, schoolID, academicYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	marksByStudent := make(map[int64][]*models.StudentMark)
	for rows.Next() {
		var m models.StudentMark
		if err := rows.Scan(
			&m.ID, &m.StudentID, &m.SubjectID, &m.AcademicYear,
			&m.TheoryObtained, &m.PracticalObtained, &m.IsAbsent,
		); err != nil {
			return nil, err
		}
		marksByStudent[m.StudentID] = append(marksByStudent[m.StudentID], &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return marksByStudent, nil
}

// GetAllByYear retrieves all marks for a year across every school, keyed
// by student ID, for the admin aggregate.
func (r *MarksRepository) GetAllByYear(ctx context.Context, academicYear string) (map[int64][]*models.StudentMark, error) {
	query := `
		SELECT id, student_id, subject_id, academic_year,
			theory_obtained, practical_obtained, is_absent
		FROM student_marks
		WHERE academic_year = $1
	`

	rows, err := r.db.Query(ctx, query, academicYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	marksByStudent := make(map[int64][]*models.StudentMark)
	for rows.Next() {
		var m models.StudentMark
		if err := rows.Scan(
			&m.ID, &m.StudentID, &m.SubjectID, &m.AcademicYear,
			&m.TheoryObtained, &m.PracticalObtained, &m.IsAbsent,
		); err != nil {
			return nil, err
		}
		marksByStudent[m.StudentID] = append(marksByStudent[m.StudentID], &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return marksByStudent, nil
}

// StudentsWithUnsubmittedMarks lists names of students that have subject
// assignments but no marks for the year, for dashboard alerts.
func (r *MarksRepository) StudentsWithUnsubmittedMarks(ctx context.Context, schoolID int64, academicYear string) ([]string, error) {
	query := `
		SELECT st.name
		FROM students st
		WHERE st.school_id = $1 AND st.academic_year = $2
			AND EXISTS (
				SELECT 1 FROM student_subject_assignments a
				WHERE a.student_id = st.id AND a.academic_year = st.academic_year
			)
			AND NOT EXISTS (
				SELECT 1 FROM student_marks m
				WHERE m.student_id = st.id AND m.academic_year = st.academic_year
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
