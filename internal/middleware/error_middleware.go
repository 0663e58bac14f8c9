package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Controllers call it
// for every error coming out of the service layer so status codes stay
// consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// 404
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrStudentProfileMissing),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrResultNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err)

	// 409: uniqueness conflicts
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrStudentNumberExists),
		errors.Is(err, apperrors.ErrCourseCodeExists),
		errors.Is(err, apperrors.ErrAlreadyEnrolled),
		errors.Is(err, apperrors.ErrDuplicateResult):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err)

	// 409: state conflicts
	case errors.Is(err, apperrors.ErrCourseFull),
		errors.Is(err, apperrors.ErrNotEnrolled),
		errors.Is(err, apperrors.ErrHasRecordedResult),
		errors.Is(err, apperrors.ErrUserHasStudentProfile),
		errors.Is(err, apperrors.ErrUserAssignedToCourses),
		errors.Is(err, apperrors.ErrLastAdmin),
		errors.Is(err, apperrors.ErrStudentHasResults),
		errors.Is(err, apperrors.ErrCourseHasEnrollments),
		errors.Is(err, apperrors.ErrCourseHasResults),
		errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, err)

	// 400
	case errors.Is(err, apperrors.ErrUserNotInstructor),
		errors.Is(err, apperrors.ErrUserNotStudent),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err)

	// 401
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, err)
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, err)
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, err)

	// 403
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(c, http.StatusForbidden, dto.ErrorCodeAccountDisabled, err)
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, err)

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewAPIError(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, err error) {
	errorDetail := dto.NewErrorDetail(code, err.Error())

	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Details != nil {
		errorDetail = errorDetail.WithDetails(custom.Details)
	}

	c.JSON(status, dto.NewAPIError(errorDetail))
}
