package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
	"github.com/nepedu/resulthub/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "resulthub-test",
	})
}

func newAuthServiceForTest(t *testing.T, userRepo *fakeUserRepo, tokenRepo *fakeTokenRepo, otpRepo *fakeOTPRepo) *AuthService {
	t.Helper()
	return NewAuthService(
		userRepo,
		tokenRepo,
		otpRepo,
		newFakeSchoolRepo(),
		testJWTService(),
		&fakeEmailService{},
		zerolog.Nop(),
	)
}

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestLogin_EmailIdentifierRoutesToEmailLookup(t *testing.T) {
	email := "office@school.edu.np"
	user := &models.User{
		ID:        1,
		Email:     &email,
		IemisCode: "270040011",
		Password:  hashForTest(t, "Sekret99!"),
		Role:      models.RoleAdmin,
	}
	userRepo := newFakeUserRepo(user)
	tokenRepo := &fakeTokenRepo{}
	svc := newAuthServiceForTest(t, userRepo, tokenRepo, newFakeOTPRepo())

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Identifier: "  Office@School.edu.np ",
		Password:   "Sekret99!",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"office@school.edu.np"}, userRepo.emailLookups)
	assert.Empty(t, userRepo.iemisLookups)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.Equal(t, 1, tokenRepo.created)
}

func TestLogin_IemisIdentifierRoutesToIemisLookup(t *testing.T) {
	user := &models.User{
		ID:        1,
		IemisCode: "270040011",
		Password:  hashForTest(t, "Sekret99!"),
		Role:      models.RoleAdmin,
	}
	userRepo := newFakeUserRepo(user)
	svc := newAuthServiceForTest(t, userRepo, &fakeTokenRepo{}, newFakeOTPRepo())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Identifier: "270040011",
		Password:   "Sekret99!",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"270040011"}, userRepo.iemisLookups)
	assert.Empty(t, userRepo.emailLookups)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	user := &models.User{
		ID:        1,
		IemisCode: "270040011",
		Password:  hashForTest(t, "Sekret99!"),
		Role:      models.RoleAdmin,
	}
	svc := newAuthServiceForTest(t, newFakeUserRepo(user), &fakeTokenRepo{}, newFakeOTPRepo())

	// Unknown account and wrong password must yield the same error so the
	// endpoint does not leak which identifiers exist.
	_, unknownErr := svc.Login(context.Background(), &dto.LoginRequest{
		Identifier: "999999999",
		Password:   "whatever1",
	})
	_, wrongPassErr := svc.Login(context.Background(), &dto.LoginRequest{
		Identifier: "270040011",
		Password:   "not-the-password",
	})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}

func TestResetPassword_CodeIsSingleUse(t *testing.T) {
	email := "office@school.edu.np"
	user := &models.User{
		ID:        7,
		Email:     &email,
		IemisCode: "270040011",
		Password:  hashForTest(t, "OldPass99!"),
		Role:      models.RoleSchool,
	}
	userRepo := newFakeUserRepo(user)
	tokenRepo := &fakeTokenRepo{}
	otpRepo := newFakeOTPRepo(&models.OTP{
		ID:        1,
		Email:     email,
		Code:      "123456",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	})
	svc := newAuthServiceForTest(t, userRepo, tokenRepo, otpRepo)

	req := &dto.ResetPasswordRequest{
		Email:       email,
		Code:        "123456",
		NewPassword: "NewPass99!",
	}
	require.NoError(t, svc.ResetPassword(context.Background(), req))

	assert.Equal(t, []string{email}, userRepo.resetEmails)
	assert.Equal(t, []int64{user.ID}, tokenRepo.revokedUserIDs)

	// The spent code is deleted, so replaying it fails.
	err := svc.ResetPassword(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrOTPNotFound)
}

func TestResetPassword_MismatchCountsAttempt(t *testing.T) {
	email := "office@school.edu.np"
	otpRepo := newFakeOTPRepo(&models.OTP{
		ID:        1,
		Email:     email,
		Code:      "123456",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	})
	svc := newAuthServiceForTest(t, newFakeUserRepo(), &fakeTokenRepo{}, otpRepo)

	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Email:       email,
		Code:        "654321",
		NewPassword: "NewPass99!",
	})
	assert.ErrorIs(t, err, apperrors.ErrOTPMismatch)
	assert.Equal(t, 1, otpRepo.otpsByEmail[email].Attempts)
}
