package dto

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	IemisCode string  `json:"iemisCode" binding:"required" example:"270040011"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email" example:"office@school.edu.np"`
	Password  string  `json:"password" binding:"required,min=8"`
	Role      string  `json:"role" binding:"required,oneof=admin school"`
	SchoolID  *int64  `json:"schoolId,omitempty"` // Required when role is school
}

// LoginRequest authenticates by IEMIS code, or by email when the
// identifier contains "@".
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required" example:"270040011"`
	Password   string `json:"password" binding:"required"`
}

// TokenResponse carries an issued token pair.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn"`
	RefreshExpiresIn int    `json:"refreshExpiresIn"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest mutates the password of the authenticated user.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ForgotPasswordRequest starts the OTP reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the OTP reset flow.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
