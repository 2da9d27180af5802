package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func staffRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StaffAuth(token))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestStaffAuth(t *testing.T) {
	t.Run("token not configured", func(t *testing.T) {
		r := staffRouter("")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(HeaderAdminToken, "anything")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "ADMIN_TOKEN_NOT_SET")
	})

	t.Run("missing header", func(t *testing.T) {
		r := staffRouter("secret")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong token", func(t *testing.T) {
		r := staffRouter("secret")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(HeaderAdminToken, "guess")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token is compared exactly", func(t *testing.T) {
		r := staffRouter("secret")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(HeaderAdminToken, "Secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		r := staffRouter("secret")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(HeaderAdminToken, "secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
