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

// SubjectRepository handles database operations for shared subjects.
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository.
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

const subjectColumns = `id, name, grade, theory_code, internal_code, credits,
	full_marks, pass_marks, theory_full, practical_full`

func scanSubject(row pgx.Row) (*models.Subject, error) {
	var s models.Subject
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Grade,
		&s.TheoryCode,
		&s.InternalCode,
		&s.Credits,
		&s.FullMarks,
		&s.PassMarks,
		&s.TheoryFull,
		&s.PracticalFull,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new subject.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name, grade, theory_code, internal_code, credits,
			full_marks, pass_marks, theory_full, practical_full)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		subject.Name,
		subject.Grade,
		subject.TheoryCode,
		subject.InternalCode,
		subject.Credits,
		subject.FullMarks,
		subject.PassMarks,
		subject.TheoryFull,
		subject.PracticalFull,
	).Scan(&subject.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "subjects_name_grade_key") {
			return apperrors.ErrSubjectAlreadyExists
		}
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// GetByID retrieves a subject by ID.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE id = $1`

	subject, err := scanSubject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}
	return subject, nil
}

// GetAll retrieves all subjects, optionally filtered by grade (0 = all).
func (r *SubjectRepository) GetAll(ctx context.Context, grade int) ([]*models.Subject, error) {
	query := `SELECT ` + subjectColumns + ` FROM subjects`
	var args []interface{}
	if grade != 0 {
		query += ` WHERE grade = $1`
		args = append(args, grade)
	}
	query += ` ORDER BY grade, name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// GetByIDs retrieves the subjects for a set of IDs, keyed by ID.
func (r *SubjectRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.Subject, error) {
	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := make(map[int64]*models.Subject, len(ids))
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects[subject.ID] = subject
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// Update updates an existing subject.
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET name = $1, grade = $2, theory_code = $3, internal_code = $4,
			credits = $5, full_marks = $6, pass_marks = $7, theory_full = $8,
			practical_full = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		subject.Name,
		subject.Grade,
		subject.TheoryCode,
		subject.InternalCode,
		subject.Credits,
		subject.FullMarks,
		subject.PassMarks,
		subject.TheoryFull,
		subject.PracticalFull,
		subject.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "subjects_name_grade_key") {
			return apperrors.ErrSubjectAlreadyExists
		}
		return fmt.Errorf("error updating subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}

// Delete deletes a subject. The marks foreign key is RESTRICT, so a
// subject with recorded marks surfaces as a structured conflict.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSubjectHasMarks
		}
		return fmt.Errorf("error deleting subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}
