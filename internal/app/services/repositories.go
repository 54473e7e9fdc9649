package services

import (
	"context"
	"time"

	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/app/models/dto"
)

// Storage interfaces consumed by the services. The concrete pgx-backed
// repositories satisfy them; tests substitute in-memory fakes.

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIemisCode(ctx context.Context, iemisCode string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

// TokenRepository persists refresh tokens.
type TokenRepository interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (int64, time.Time, bool, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

// OTPRepository persists password reset codes.
type OTPRepository interface {
	ReplaceForEmail(ctx context.Context, otp *models.OTP) error
	GetByEmail(ctx context.Context, email string) (*models.OTP, error)
	IncrementAttempts(ctx context.Context, id int64) (int, error)
	DeleteByEmail(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// SchoolRepository persists school tenants.
type SchoolRepository interface {
	Create(ctx context.Context, school *models.School) error
	GetByID(ctx context.Context, id int64) (*models.School, error)
	GetAll(ctx context.Context) ([]*models.School, error)
	Update(ctx context.Context, school *models.School) error
	CountDependents(ctx context.Context, id int64) (dto.SchoolDependentCounts, error)
	Delete(ctx context.Context, id int64) error
}

// StudentRepository persists student records.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetBySystemID(ctx context.Context, systemID string) (*models.Student, error)
	ListBySchool(ctx context.Context, filter dto.StudentListFilter, offset uint64, limit int) ([]*models.Student, int64, error)
	ListAllBySchoolYear(ctx context.Context, schoolID int64, academicYear string) ([]*models.Student, error)
	CountByYear(ctx context.Context, academicYear string) (int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// SubjectRepository persists the shared subject catalog.
type SubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.Subject, error)
	GetAll(ctx context.Context, grade int) ([]*models.Subject, error)
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, id int64) error
}

// AssignmentRepository persists subject assignment sets.
type AssignmentRepository interface {
	ReplaceForStudentYear(ctx context.Context, studentID int64, academicYear string, subjectIDs []int64, extraCreditSubjectID *int64) error
	GetByStudentYear(ctx context.Context, studentID int64, academicYear string) ([]*models.SubjectAssignment, error)
	GetExtraCredit(ctx context.Context, studentID int64, academicYear string) (*models.ExtraCreditAssignment, error)
	SubjectPopularityBySchool(ctx context.Context, schoolID int64, academicYear string) ([]dto.SubjectPopularity, error)
	StudentsWithoutAssignments(ctx context.Context, schoolID int64, academicYear string) ([]string, error)
}

// MarksRepository persists obtained marks.
type MarksRepository interface {
	ReplaceForStudentYear(ctx context.Context, studentID int64, academicYear string, marks []*models.StudentMark) error
	GetByStudentYear(ctx context.Context, studentID int64, academicYear string) ([]*models.StudentMark, error)
	GetBySchoolYear(ctx context.Context, schoolID int64, academicYear string) (map[int64][]*models.StudentMark, error)
	GetAllByYear(ctx context.Context, academicYear string) (map[int64][]*models.StudentMark, error)
	StudentsWithUnsubmittedMarks(ctx context.Context, schoolID int64, academicYear string) ([]string, error)
}

// AcademicYearRepository persists selectable exam years.
type AcademicYearRepository interface {
	Create(ctx context.Context, year *models.AcademicYear) error
	GetByYear(ctx context.Context, year string) (*models.AcademicYear, error)
	GetAll(ctx context.Context, activeOnly bool) ([]*models.AcademicYear, error)
	Update(ctx context.Context, year *models.AcademicYear) error
	Delete(ctx context.Context, id int64) error
}

// SettingRepository persists global application settings.
type SettingRepository interface {
	Upsert(ctx context.Context, setting *models.ApplicationSetting) error
	Get(ctx context.Context, key string) (*models.ApplicationSetting, error)
	GetString(ctx context.Context, key string) (string, error)
	GetAll(ctx context.Context) ([]*models.ApplicationSetting, error)
	Delete(ctx context.Context, key string) error
}
