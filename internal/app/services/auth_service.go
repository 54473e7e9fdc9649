package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
	"github.com/nepedu/resulthub/internal/pkg/auth"
	"github.com/nepedu/resulthub/internal/pkg/email"
	"github.com/nepedu/resulthub/internal/pkg/validation"
)

// OTPValidity is how long a password reset code stays usable.
const OTPValidity = 15 * time.Minute

// AuthService handles registration, login and credential recovery.
type AuthService struct {
	userRepo     UserRepository
	tokenRepo    TokenRepository
	otpRepo      OTPRepository
	schoolRepo   SchoolRepository
	jwtService   *auth.JWTService
	emailService email.Service
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo UserRepository,
	tokenRepo TokenRepository,
	otpRepo OTPRepository,
	schoolRepo SchoolRepository,
	jwtService *auth.JWTService,
	emailService email.Service,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		otpRepo:      otpRepo,
		schoolRepo:   schoolRepo,
		jwtService:   jwtService,
		emailService: emailService,
		logger:       logger,
	}
}

// Register creates a user account. School-role accounts must reference an
// existing school; the IEMIS code on the account must match the school's.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	role := models.RoleType(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewBadRequestError("role must be admin or school")
	}

	if !validation.ValidIemisCode(req.IemisCode) {
		return nil, apperrors.NewBadRequestError("IEMIS code must be 9 digits")
	}

	if role == models.RoleSchool {
		if req.SchoolID == nil {
			return nil, apperrors.NewBadRequestError("schoolId is required for school accounts")
		}
		school, err := s.schoolRepo.GetByID(ctx, *req.SchoolID)
		if err != nil {
			return nil, err
		}
		if school.IemisCode != req.IemisCode {
			return nil, apperrors.NewBadRequestError("IEMIS code does not match the referenced school")
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:     req.Email,
		IemisCode: req.IemisCode,
		Password:  hash,
		Role:      role,
		SchoolID:  req.SchoolID,
	}
	if role == models.RoleAdmin {
		user.SchoolID = nil
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", req.Role).Msg("User registered")
	return user, nil
}

// Login authenticates by IEMIS code, or by email when the identifier
// contains "@", and issues a token pair.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	var user *models.User
	var err error

	if strings.Contains(req.Identifier, "@") {
		user, err = s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Identifier)))
	} else {
		user, err = s.userRepo.GetByIemisCode(ctx, strings.TrimSpace(req.Identifier))
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Role == models.RoleSchool && user.SchoolID != nil {
		school, err := s.schoolRepo.GetByID(ctx, *user.SchoolID)
		if err != nil {
			return nil, err
		}
		if school.Status != models.SchoolStatusActive {
			return nil, apperrors.ErrAccountInactive
		}
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token into a new token pair. The spent
// token is revoked so a replay is rejected.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, expiryDate, isRevoked, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}

	if isRevoked {
		return nil, apperrors.ErrTokenInvalid
	}
	if time.Now().After(expiryDate) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// ChangePassword verifies the current password and replaces it. All
// refresh tokens of the user are revoked afterwards.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, req.CurrentPassword) {
		return apperrors.ErrWrongCurrentPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
		s.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to revoke tokens after password change")
	}

	s.logger.Info().Int64("userID", userID).Msg("Password changed")
	return nil
}

// ForgotPassword issues a reset code to the account owning the email.
// An unknown email is reported as success so the endpoint does not leak
// which addresses have accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	if _, err := s.userRepo.GetByEmail(ctx, emailAddr); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Warn().Str("email", emailAddr).Msg("Reset requested for unknown email")
			return nil
		}
		return err
	}

	code, err := generateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	otp := &models.OTP{
		Email:     emailAddr,
		Code:      code,
		ExpiresAt: time.Now().Add(OTPValidity),
	}
	if err := s.otpRepo.ReplaceForEmail(ctx, otp); err != nil {
		return err
	}

	if err := s.emailService.SendPasswordResetOTP(emailAddr, code); err != nil {
		return fmt.Errorf("failed to send reset code: %w", err)
	}

	s.logger.Info().Str("email", emailAddr).Msg("Password reset code issued")
	return nil
}

// ResetPassword verifies the reset code and sets the new password. Each
// mismatch counts against the attempt cap; reaching it invalidates the
// code.
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	otp, err := s.otpRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}

	if otp.Expired(time.Now()) {
		if err := s.otpRepo.DeleteByEmail(ctx, emailAddr); err != nil {
			s.logger.Error().Err(err).Str("email", emailAddr).Msg("Failed to delete expired reset code")
		}
		return apperrors.ErrOTPExpired
	}

	if otp.AttemptsExhausted() {
		return apperrors.ErrOTPExhausted
	}

	if subtle.ConstantTimeCompare([]byte(otp.Code), []byte(req.Code)) != 1 {
		attempts, incErr := s.otpRepo.IncrementAttempts(ctx, otp.ID)
		if incErr != nil {
			return incErr
		}
		if attempts >= models.MaxOTPAttempts {
			return apperrors.ErrOTPExhausted
		}
		return apperrors.ErrOTPMismatch
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordByEmail(ctx, emailAddr, hash); err != nil {
		return err
	}

	if err := s.otpRepo.DeleteByEmail(ctx, emailAddr); err != nil {
		s.logger.Error().Err(err).Str("email", emailAddr).Msg("Failed to delete spent reset code")
	}

	if user, err := s.userRepo.GetByEmail(ctx, emailAddr); err == nil {
		if err := s.tokenRepo.RevokeAllUserTokens(ctx, user.ID); err != nil {
			s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to revoke tokens after reset")
		}
	}

	s.logger.Info().Str("email", emailAddr).Msg("Password reset completed")
	return nil
}

// GetUserByID loads a user for the authentication middleware.
func (s *AuthService) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		TokenType:        "Bearer",
	}, nil
}

// generateOTPCode produces a 6-digit numeric code.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
