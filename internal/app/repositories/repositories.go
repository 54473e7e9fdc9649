package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nepedu/resulthub/internal/db"
)

// Repositories bundles all repository instances for dependency injection.
type Repositories struct {
	SchoolRepository       *SchoolRepository
	UserRepository         *UserRepository
	StudentRepository      *StudentRepository
	SubjectRepository      *SubjectRepository
	AssignmentRepository   *AssignmentRepository
	MarksRepository        *MarksRepository
	AcademicYearRepository *AcademicYearRepository
	SettingRepository      *SettingRepository
	OTPRepository          *OTPRepository
	TokenRepository        *TokenRepository
}

// NewRepositories creates all repositories over one shared pool. The
// repositories that replace row sets transactionally get the store
// wrapper so they run through WithTransaction.
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	store := &db.PostgresDB{Pool: pool}
	return &Repositories{
		SchoolRepository:       NewSchoolRepository(pool),
		UserRepository:         NewUserRepository(pool),
		StudentRepository:      NewStudentRepository(pool),
		SubjectRepository:      NewSubjectRepository(pool),
		AssignmentRepository:   NewAssignmentRepository(store),
		MarksRepository:        NewMarksRepository(store),
		AcademicYearRepository: NewAcademicYearRepository(pool),
		SettingRepository:      NewSettingRepository(pool),
		OTPRepository:          NewOTPRepository(store),
		TokenRepository:        NewTokenRepository(pool),
	}
}
