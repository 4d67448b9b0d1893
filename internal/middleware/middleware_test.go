package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vnpayroll/attendance_backend/internal/utils"
)

const testSecret = "test-secret"

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()))
	r.GET("/", append(handlers, func(c *gin.Context) {
		p, _ := GetPrincipalFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "role": p.Role})
	})...)
	return r
}

func doGet(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newTestRouter(AuthMiddleware(testSecret))

	adminToken, err := utils.GenerateJWT(7, utils.RoleAdmin, testSecret, time.Hour, "test")
	require.NoError(t, err)
	badToken, err := utils.GenerateJWT(7, utils.RoleAdmin, "other", time.Hour, "test")
	require.NoError(t, err)

	w := doGet(r, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"role":"admin"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, badToken).Code)
}

func TestRequireRole(t *testing.T) {
	r := newTestRouter(AuthMiddleware(testSecret), RequireRole(utils.RoleAdmin))

	employeeToken, err := utils.GenerateJWT(3, utils.RoleEmployee, testSecret, time.Hour, "test")
	require.NoError(t, err)
	adminToken, err := utils.GenerateJWT(1, utils.RoleAdmin, testSecret, time.Hour, "test")
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doGet(r, employeeToken).Code)
	assert.Equal(t, http.StatusOK, doGet(r, adminToken).Code)
}

func TestRateLimit_MemoryStore(t *testing.T) {
	l, err := NewLimiter(context.Background(), "2-M", "")
	require.NoError(t, err)
	r := newTestRouter(RateLimit(l))

	assert.Equal(t, http.StatusOK, doGet(r, "").Code)
	assert.Equal(t, http.StatusOK, doGet(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "").Code)
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := NewLimiter(context.Background(), "lots", "")
	assert.Error(t, err)
}

func TestGetLoggerFromCtx_Default(t *testing.T) {
	assert.Equal(t, slog.Default(), GetLoggerFromCtx(context.Background()))

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), custom)
	assert.Same(t, custom, GetLoggerFromCtx(ctx))
}
