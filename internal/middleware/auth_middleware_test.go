package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weerawi/University-Course-Management-System/internal/app/models"
	"github.com/weerawi/University-Course-Management-System/internal/app/models/dto"
	"github.com/weerawi/University-Course-Management-System/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJWTService(accessExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: time.Hour,
	})
}

func protectedRouter(jwt *auth.JWTService, roles ...models.RoleType) *gin.Engine {
	m := NewAuthMiddleware(jwt)
	r := gin.New()
	group := r.Group("/", m.JWTAuth())
	if len(roles) > 0 {
		group.Use(m.RoleRequired(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		userID := c.GetInt64("userID")
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return r
}

func issueToken(t *testing.T, jwt *auth.JWTService, role models.RoleType) string {
	t.Helper()
	access, _, _, _, err := jwt.GenerateTokenPair(&models.User{
		ID:       7,
		Email:    "jane@university.edu",
		RoleType: role,
	})
	require.NoError(t, err)
	return access
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return &resp
}

func TestJWTAuthAllowsValidToken(t *testing.T) {
	jwt := newJWTService(time.Hour)
	r := protectedRouter(jwt)

	w := doRequest(r, "Bearer "+issueToken(t, jwt, models.RoleStudent))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	r := protectedRouter(newJWTService(time.Hour))

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	r := protectedRouter(newJWTService(time.Hour))

	w := doRequest(r, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jwt := newJWTService(-time.Minute)
	r := protectedRouter(jwt)

	w := doRequest(r, "Bearer "+issueToken(t, jwt, models.RoleStudent))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, dto.ErrorCodeExpiredToken, resp.Error.Code)
}

func TestJWTAuthTamperedToken(t *testing.T) {
	jwt := newJWTService(time.Hour)
	r := protectedRouter(jwt)

	w := doRequest(r, "Bearer "+issueToken(t, jwt, models.RoleStudent)+"x")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, dto.ErrorCodeInvalidToken, resp.Error.Code)
}

func TestRoleRequired(t *testing.T) {
	jwt := newJWTService(time.Hour)
	r := protectedRouter(jwt, models.RoleAdmin, models.RoleInstructor)

	w := doRequest(r, "Bearer "+issueToken(t, jwt, models.RoleInstructor))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, "Bearer "+issueToken(t, jwt, models.RoleStudent))
	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, dto.ErrorCodeForbidden, resp.Error.Code)
}
