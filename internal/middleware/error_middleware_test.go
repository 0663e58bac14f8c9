package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{name: "user not found", err: apperrors.ErrUserNotFound, wantStatus: http.StatusNotFound, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "course not found", err: apperrors.ErrCourseNotFound, wantStatus: http.StatusNotFound, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "duplicate email", err: apperrors.ErrEmailAlreadyExists, wantStatus: http.StatusConflict, wantCode: dto.ErrorCodeResourceAlreadyExists},
		{name: "already enrolled", err: apperrors.ErrAlreadyEnrolled, wantStatus: http.StatusConflict, wantCode: dto.ErrorCodeResourceAlreadyExists},
		{name: "course full", err: apperrors.ErrCourseFull, wantStatus: http.StatusConflict, wantCode: dto.ErrorCodeResourceConflict},
		{name: "recorded result blocks drop", err: apperrors.ErrHasRecordedResult, wantStatus: http.StatusConflict, wantCode: dto.ErrorCodeResourceConflict},
		{name: "last admin", err: apperrors.ErrLastAdmin, wantStatus: http.StatusConflict, wantCode: dto.ErrorCodeResourceConflict},
		{name: "validation failure", err: apperrors.ErrValidationFailed, wantStatus: http.StatusBadRequest, wantCode: dto.ErrorCodeValidationFailed},
		{name: "wrapped sentinel", err: apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid role"), wantStatus: http.StatusBadRequest, wantCode: dto.ErrorCodeValidationFailed},
		{name: "bad credentials", err: apperrors.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: dto.ErrorCodeInvalidCredentials},
		{name: "disabled account", err: apperrors.ErrAccountDisabled, wantStatus: http.StatusForbidden, wantCode: dto.ErrorCodeAccountDisabled},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp dto.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.False(t, resp.Timestamp.IsZero())
		})
	}
}

func TestHandleAPIErrorDoesNotLeakInternalMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, errors.New("pq: connection refused"))

	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "Internal server error")
}
