package adminControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordixdotma/ayounioptic/middleware"
)

func loginRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := NewAuthHandler("admin", "s3cret", "test-signing-key")
	r.POST("/admin/login", auth.Login)

	protected := r.Group("/admin", middleware.RequireAdmin("test-signing-key"))
	protected.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString("admin_user")})
	})
	return r
}

func doLogin(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesUsableToken(t *testing.T) {
	r := loginRouter()

	w := doLogin(t, r, `{"username":"admin","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+resp["token"])
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "admin")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := loginRouter()

	assert.Equal(t, http.StatusUnauthorized, doLogin(t, r, `{"username":"admin","password":"wrong"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, doLogin(t, r, `{"username":"intrus","password":"s3cret"}`).Code)
	assert.Equal(t, http.StatusBadRequest, doLogin(t, r, `{"username":"admin"}`).Code)
}

func TestLoginRejectsWhenNoPasswordConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/login", NewAuthHandler("admin", "", "key").Login)

	// An empty configured password never matches, even an empty submission.
	w := doLogin(t, r, `{"username":"admin","password":"anything"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteRejectsMissingOrBadToken(t *testing.T) {
	r := loginRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
