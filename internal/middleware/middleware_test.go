package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/anima-counter/internal/config"
	apperrors "github.com/wfunc/anima-counter/internal/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAbortWithError_AppError(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) {
		AbortWithError(c, apperrors.Validation(apperrors.FieldError{Field: "name", Message: "不能为空"}))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "name", resp.Fields[0].Field)
	assert.Equal(t, w.Header().Get(RequestIDHeader), resp.RequestID)
}

func TestAbortWithError_HidesInternalCause(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		AbortWithError(c, errors.New("dial tcp 10.0.0.1:5432: connection refused"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, w).Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, given)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, given, w.Body.String())

	// 非法值被替换
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("secret detail") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret detail")
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, Requests: 2, Window: time.Hour, Burst: 2})
	defer rl.Stop()

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, do("10.0.0.1").Code)
	assert.Equal(t, http.StatusNoContent, do("10.0.0.1").Code)

	w := do("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "RATE_LIMITED", decodeError(t, w).Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// 其他客户端不受影响
	assert.Equal(t, http.StatusNoContent, do("10.0.0.2").Code)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Requests: 10, Window: time.Minute})
	defer rl.Stop()

	now := time.Now()
	rl.now = func() time.Time { return now }
	rl.get("a")
	rl.get("b")

	now = now.Add(2 * time.Minute)
	rl.get("b")
	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "a")
	assert.Contains(t, rl.visitors, "b")
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(config.CORSConfig{AllowedOrigins: []string{"http://localhost"}, MaxAge: time.Hour}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestParseID(t *testing.T) {
	r := gin.New()
	r.GET("/p/:profileId", func(c *gin.Context) {
		id, err := ParseID(c, ProfileParam)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	for path, status := range map[string]int{"/p/12": 200, "/p/0": 400, "/p/abc": 400, "/p/-3": 400} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, status, w.Code, path)
	}
}
