package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinespot/cinespot-api/pkg/helpers"
	"github.com/cinespot/cinespot-api/pkg/response"
)

const CtxUserIDKey = "userID"

// SessionGuard reads the session cookie, verifies the token and injects
// the subject id into the Gin context. Missing, malformed, tampered and
// expired tokens are all rejected the same way. No store lookup happens
// here: a valid token is trusted for its whole lifetime.
func SessionGuard(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookie)
		if err != nil || token == "" {
			reject(c)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			reject(c)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func reject(c *gin.Context) {
	resp := response.Error[any](c, http.StatusUnauthorized, "Not Authorized. Login Again", nil)
	c.AbortWithStatusJSON(resp.Status, resp)
}
