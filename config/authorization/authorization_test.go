package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("D0001", "DOCTOR", "Dr. Smith")
	require.NoError(t, err)

	claims, err := parseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "D0001", claims.Code)
	assert.Equal(t, "DOCTOR", claims.Role)
	assert.Equal(t, "Dr. Smith", claims.Name)
}

func TestParseToken_Tampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("D0001", "DOCTOR", "Dr. Smith")
	require.NoError(t, err)

	_, err = parseToken(token + "x")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = parseToken(token)
	assert.Error(t, err)
}

func TestJWTAuth_SetsContext(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	token, err := GenerateToken("P0001", "PATIENT", "Alice")
	require.NoError(t, err)

	r := gin.New()
	r.Use(JWTAuth())
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": c.GetString("code"), "role": c.GetString("role")})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "P0001")
	assert.Contains(t, w.Body.String(), "PATIENT")
}

func TestJWTAuth_RejectsMissingOrBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(JWTAuth())
	r.GET("/whoami", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token nope")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("role", "PATIENT") })
	r.GET("/doctor-only", Authorize("DOCTOR"), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/any-user", Authorize("DOCTOR", "PATIENT"), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/doctor-only", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/any-user", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
