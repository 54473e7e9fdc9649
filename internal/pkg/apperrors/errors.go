package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrAccountInactive    = errors.New("account is inactive")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrIemisAlreadyExists   = errors.New("IEMIS code already exists")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
)

// School errors
var (
	ErrSchoolNotFound      = errors.New("school not found")
	ErrSchoolAlreadyExists = errors.New("school with this IEMIS code already exists")
	ErrSchoolHasRelations  = errors.New("school has associated students or users and cannot be deleted")
)

// Student errors
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrDuplicateSymbolNo = errors.New("a student with this symbol number already exists for the school and year")
)

// Subject errors
var (
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrSubjectAlreadyExists = errors.New("subject with this name and grade already exists")
	ErrSubjectHasMarks      = errors.New("subject has recorded marks and cannot be deleted")
	ErrSubjectGradeMismatch = errors.New("subject grade does not match student grade")
)

// Marks errors
var (
	ErrMarksExceedFull = errors.New("obtained marks exceed the subject full marks")
)

// Academic year errors
var (
	ErrAcademicYearNotFound = errors.New("academic year not found")
	ErrAcademicYearExists   = errors.New("academic year already exists")
	ErrAcademicYearInactive = errors.New("academic year is not active")
)

// Setting errors
var (
	ErrSettingNotFound = errors.New("application setting not found")
)

// OTP errors
var (
	ErrOTPNotFound  = errors.New("no reset code found for this email")
	ErrOTPExpired   = errors.New("reset code has expired")
	ErrOTPMismatch  = errors.New("reset code does not match")
	ErrOTPExhausted = errors.New("too many failed attempts for this reset code")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
