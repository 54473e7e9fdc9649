package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
	"github.com/nepedu/resulthub/internal/pkg/logger"
)

// HandleAPIError maps service errors to API responses. Controllers call
// this instead of mapping errors themselves, so a given error always
// produces the same status and code regardless of endpoint.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := err.Error()
	var details interface{}
	if errors.As(err, &custom) {
		message = custom.Error()
		if custom.Details != nil {
			details = custom.Details
		}
	}

	respond := func(status int, code dto.ErrorCode) {
		errorDetail := dto.NewErrorDetail(code, message)
		if details != nil {
			errorDetail = errorDetail.WithDetails(details)
		}
		c.JSON(status, dto.NewErrorResponse(errorDetail))
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials)
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken)
	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenNotFound):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken)
	case errors.Is(err, apperrors.ErrAccountInactive):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden)
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden)

	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrSchoolNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrSubjectNotFound),
		errors.Is(err, apperrors.ErrAcademicYearNotFound),
		errors.Is(err, apperrors.ErrSettingNotFound),
		errors.Is(err, apperrors.ErrOTPNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound)

	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrIemisAlreadyExists),
		errors.Is(err, apperrors.ErrSchoolAlreadyExists),
		errors.Is(err, apperrors.ErrDuplicateSymbolNo),
		errors.Is(err, apperrors.ErrSubjectAlreadyExists),
		errors.Is(err, apperrors.ErrAcademicYearExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists)

	case errors.Is(err, apperrors.ErrSchoolHasRelations),
		errors.Is(err, apperrors.ErrSubjectHasMarks),
		errors.Is(err, apperrors.ErrConflict):
		respond(http.StatusConflict, dto.ErrorCodeResourceConflict)

	case errors.Is(err, apperrors.ErrOTPExpired),
		errors.Is(err, apperrors.ErrOTPMismatch),
		errors.Is(err, apperrors.ErrOTPExhausted):
		respond(http.StatusBadRequest, dto.ErrorCodeInvalidResetCode)

	case errors.Is(err, apperrors.ErrWrongCurrentPassword),
		errors.Is(err, apperrors.ErrAcademicYearInactive),
		errors.Is(err, apperrors.ErrMarksExceedFull),
		errors.Is(err, apperrors.ErrSubjectGradeMismatch),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed)

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	}
}
