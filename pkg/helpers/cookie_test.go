package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureCookie(t *testing.T, handler gin.HandlerFunc) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	for _, ck := range w.Result().Cookies() {
		if ck.Name == SessionCookie {
			return ck
		}
	}
	return nil
}

func TestSetSession(t *testing.T) {
	m := NewCookie("", false)
	exp := time.Now().Add(time.Hour)

	ck := captureCookie(t, func(c *gin.Context) {
		m.SetSession(c, "token-value", exp)
		c.Status(http.StatusOK)
	})
	require.NotNil(t, ck)
	assert.Equal(t, "token-value", ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	assert.False(t, ck.Secure)
	assert.InDelta(t, 3600, ck.MaxAge, 5, "cookie lifetime tracks the token expiry")
}

func TestSetSessionSecureFlag(t *testing.T) {
	m := NewCookie("", true)
	ck := captureCookie(t, func(c *gin.Context) {
		m.SetSession(c, "token-value", time.Now().Add(time.Hour))
		c.Status(http.StatusOK)
	})
	require.NotNil(t, ck)
	assert.True(t, ck.Secure)
}

func TestClear(t *testing.T) {
	m := NewCookie("", false)
	ck := captureCookie(t, func(c *gin.Context) {
		m.Clear(c)
		c.Status(http.StatusOK)
	})
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
	assert.Less(t, ck.MaxAge, 0)
}

func TestSetSessionExpiredTokenGetsNoLifetime(t *testing.T) {
	m := NewCookie("", false)
	ck := captureCookie(t, func(c *gin.Context) {
		m.SetSession(c, "token-value", time.Now().Add(-time.Hour))
		c.Status(http.StatusOK)
	})
	require.NotNil(t, ck)
	assert.LessOrEqual(t, ck.MaxAge, 0)
}
