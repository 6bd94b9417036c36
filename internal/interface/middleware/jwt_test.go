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

	"github.com/cinespot/cinespot-api/pkg/helpers"
)

func guardedRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", SessionGuard(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(CtxUserIDKey)})
	})
	return r
}

func getPrivate(t *testing.T, r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionGuardAcceptsValidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := guardedRouter(jwt)

	token, _, err := jwt.Generate("user-42")
	require.NoError(t, err)

	w := getPrivate(t, r, token)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-42", body["userId"])
}

func TestSessionGuardRejectsAllFailureModesIdentically(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := guardedRouter(jwt)

	otherIssuer := helpers.NewJWTManager("other-secret", time.Hour)
	foreign, _, err := otherIssuer.Generate("user-42")
	require.NoError(t, err)

	expiredIssuer := helpers.NewJWTManager("test-secret", -time.Minute)
	expired, _, err := expiredIssuer.Generate("user-42")
	require.NoError(t, err)

	valid, _, err := jwt.Generate("user-42")
	require.NoError(t, err)
	tampered := valid[:len(valid)-2] + "xx"

	cases := map[string]string{
		"no cookie":    "",
		"garbage":      "not-a-jwt",
		"wrong secret": foreign,
		"expired":      expired,
		"tampered":     tampered,
	}
	for name, cookie := range cases {
		w := getPrivate(t, r, cookie)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), name)
		assert.False(t, body.Success, name)
		assert.Equal(t, "Not Authorized. Login Again", body.Message, name)
	}
}

func TestSessionGuardDoesNotLeakUserIDOnReject(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	gin.SetMode(gin.TestMode)

	reached := false
	r := gin.New()
	r.GET("/private", SessionGuard(jwt), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	w := getPrivate(t, r, "bad")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached, "handler must not run after a rejected session")
}
