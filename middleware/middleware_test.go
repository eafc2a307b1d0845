package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		_, hasLogger := c.Get("logger")
		c.JSON(http.StatusOK, gin.H{"logger": hasLogger})
	})
	return r
}

func get(r *gin.Engine, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	r := okRouter(RateLimitMiddleware(2))
	fromA := map[string]string{"X-Forwarded-For": "10.0.0.1"}
	fromB := map[string]string{"X-Forwarded-For": "10.0.0.2, 172.16.0.1"}

	assert.Equal(t, http.StatusOK, get(r, fromA).Code)
	assert.Equal(t, http.StatusOK, get(r, fromA).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, fromA).Code)
	assert.Equal(t, http.StatusOK, get(r, fromB).Code)
}

func TestAdminTokenMiddleware(t *testing.T) {
	r := okRouter(AdminTokenMiddleware("s3cret"))

	assert.Equal(t, http.StatusUnauthorized, get(r, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, map[string]string{"Authorization": "Bearer nope"}).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, map[string]string{"Authorization": "s3cret"}).Code)
	assert.Equal(t, http.StatusOK, get(r, map[string]string{"Authorization": "Bearer s3cret"}).Code)
}

func TestAdminTokenMiddleware_Disabled(t *testing.T) {
	r := okRouter(AdminTokenMiddleware(""))
	assert.Equal(t, http.StatusServiceUnavailable, get(r, map[string]string{"Authorization": "Bearer "}).Code)
}

func TestRequestLogger(t *testing.T) {
	r := okRouter(RequestLogger(zap.NewNop()))

	w := get(r, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.JSONEq(t, `{"logger":true}`, w.Body.String())

	w = get(r, map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
