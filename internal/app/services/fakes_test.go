package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
)

// In-memory fakes backing the service tests. Each embeds its interface so
// only the methods a test exercises need an implementation; an unexpected
// call panics and fails the test loudly.

type fakeUserRepo struct {
	UserRepository
	usersByEmail map[string]*models.User
	usersByIemis map[string]*models.User

	emailLookups []string
	iemisLookups []string
	resetEmails  []string
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{
		usersByEmail: make(map[string]*models.User),
		usersByIemis: make(map[string]*models.User),
	}
	for _, u := range users {
		if u.Email != nil {
			r.usersByEmail[*u.Email] = u
		}
		r.usersByIemis[u.IemisCode] = u
	}
	return r
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.emailLookups = append(r.emailLookups, email)
	if u, ok := r.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByIemisCode(_ context.Context, iemisCode string) (*models.User, error) {
	r.iemisLookups = append(r.iemisLookups, iemisCode)
	if u, ok := r.usersByIemis[iemisCode]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) UpdatePasswordByEmail(_ context.Context, email, passwordHash string) error {
	u, ok := r.usersByEmail[email]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Password = passwordHash
	r.resetEmails = append(r.resetEmails, email)
	return nil
}

type fakeTokenRepo struct {
	TokenRepository
	created        int
	revokedUserIDs []int64

	expiredDeleted int64
	deleteErr      error
	deleteCalls    int
}

func (r *fakeTokenRepo) CreateToken(_ context.Context, _ string, _ int64, _ time.Time) error {
	r.created++
	return nil
}

func (r *fakeTokenRepo) RevokeAllUserTokens(_ context.Context, userID int64) error {
	r.revokedUserIDs = append(r.revokedUserIDs, userID)
	return nil
}

func (r *fakeTokenRepo) DeleteExpiredTokens(_ context.Context, _ time.Time) (int64, error) {
	r.deleteCalls++
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	return r.expiredDeleted, nil
}

type fakeOTPRepo struct {
	OTPRepository
	otpsByEmail map[string]*models.OTP

	expiredDeleted int64
	deleteCalls    int
}

func newFakeOTPRepo(otps ...*models.OTP) *fakeOTPRepo {
	r := &fakeOTPRepo{otpsByEmail: make(map[string]*models.OTP)}
	for _, o := range otps {
		r.otpsByEmail[o.Email] = o
	}
	return r
}

func (r *fakeOTPRepo) GetByEmail(_ context.Context, email string) (*models.OTP, error) {
	if o, ok := r.otpsByEmail[email]; ok {
		return o, nil
	}
	return nil, apperrors.ErrOTPNotFound
}

func (r *fakeOTPRepo) IncrementAttempts(_ context.Context, id int64) (int, error) {
	for _, o := range r.otpsByEmail {
		if o.ID == id {
			o.Attempts++
			return o.Attempts, nil
		}
	}
	return 0, apperrors.ErrOTPNotFound
}

func (r *fakeOTPRepo) DeleteByEmail(_ context.Context, email string) error {
	delete(r.otpsByEmail, email)
	return nil
}

func (r *fakeOTPRepo) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	r.deleteCalls++
	return r.expiredDeleted, nil
}

type fakeSchoolRepo struct {
	SchoolRepository
	schoolsByID map[int64]*models.School
	updated     []*models.School
}

func newFakeSchoolRepo(schools ...*models.School) *fakeSchoolRepo {
	r := &fakeSchoolRepo{schoolsByID: make(map[int64]*models.School)}
	for _, s := range schools {
		r.schoolsByID[s.ID] = s
	}
	return r
}

func (r *fakeSchoolRepo) GetByID(_ context.Context, id int64) (*models.School, error) {
	if s, ok := r.schoolsByID[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrSchoolNotFound
}

func (r *fakeSchoolRepo) GetAll(_ context.Context) ([]*models.School, error) {
	out := make([]*models.School, 0, len(r.schoolsByID))
	for _, s := range r.schoolsByID {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSchoolRepo) Update(_ context.Context, school *models.School) error {
	r.updated = append(r.updated, school)
	r.schoolsByID[school.ID] = school
	return nil
}

type fakeStudentRepo struct {
	StudentRepository
	studentsBySystemID map[string]*models.Student
}

func newFakeStudentRepo(students ...*models.Student) *fakeStudentRepo {
	r := &fakeStudentRepo{studentsBySystemID: make(map[string]*models.Student)}
	for _, s := range students {
		r.studentsBySystemID[s.StudentSystemID] = s
	}
	return r
}

func (r *fakeStudentRepo) GetBySystemID(_ context.Context, systemID string) (*models.Student, error) {
	if s, ok := r.studentsBySystemID[systemID]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

type fakeSubjectRepo struct {
	SubjectRepository
	subjects map[int64]*models.Subject
}

func newFakeSubjectRepo(subjects ...*models.Subject) *fakeSubjectRepo {
	r := &fakeSubjectRepo{subjects: make(map[int64]*models.Subject)}
	for _, s := range subjects {
		r.subjects[s.ID] = s
	}
	return r
}

func (r *fakeSubjectRepo) GetByIDs(_ context.Context, ids []int64) (map[int64]*models.Subject, error) {
	out := make(map[int64]*models.Subject, len(ids))
	for _, id := range ids {
		if s, ok := r.subjects[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

type assignmentSet struct {
	subjectIDs           []int64
	extraCreditSubjectID *int64
}

type fakeAssignmentRepo struct {
	AssignmentRepository
	sets     map[string]assignmentSet
	replaces int
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{sets: make(map[string]assignmentSet)}
}

func assignmentKey(studentID int64, academicYear string) string {
	return fmt.Sprintf("%d/%s", studentID, academicYear)
}

func (r *fakeAssignmentRepo) ReplaceForStudentYear(_ context.Context, studentID int64, academicYear string, subjectIDs []int64, extraCreditSubjectID *int64) error {
	r.replaces++
	r.sets[assignmentKey(studentID, academicYear)] = assignmentSet{
		subjectIDs:           append([]int64(nil), subjectIDs...),
		extraCreditSubjectID: extraCreditSubjectID,
	}
	return nil
}

type fakeMarksRepo struct {
	MarksRepository
	marksByStudent map[int64][]*models.StudentMark
	yearsQueried   []string
}

func newFakeMarksRepo() *fakeMarksRepo {
	return &fakeMarksRepo{marksByStudent: make(map[int64][]*models.StudentMark)}
}

func (r *fakeMarksRepo) GetByStudentYear(_ context.Context, studentID int64, academicYear string) ([]*models.StudentMark, error) {
	r.yearsQueried = append(r.yearsQueried, academicYear)
	return r.marksByStudent[studentID], nil
}

type fakeSettingRepo struct {
	SettingRepository
	strings map[string]string
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{strings: make(map[string]string)}
}

func (r *fakeSettingRepo) GetString(_ context.Context, key string) (string, error) {
	if v, ok := r.strings[key]; ok {
		return v, nil
	}
	return "", apperrors.ErrSettingNotFound
}

type fakeEmailService struct {
	sentTo []string
	codes  []string
}

func (s *fakeEmailService) SendPasswordResetOTP(toEmail, code string) error {
	s.sentTo = append(s.sentTo, toEmail)
	s.codes = append(s.codes, code)
	return nil
}
