package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cinespot/cinespot-api/internal/container"
	handlers "github.com/cinespot/cinespot-api/internal/interface/http"
	"github.com/cinespot/cinespot-api/internal/interface/middleware"
	"github.com/cinespot/cinespot-api/pkg/helpers"
)

// AuthModule wires the account flows.
// Public: register, login, logout, send-reset-otp, reset-password.
// Guarded: send-verify-otp, verify-account, is-auth.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Per-IP limits on the public credential endpoints
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	resetLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/logout", m.Handler.Logout)
	rg.POST("/auth/send-reset-otp", resetLimiter, m.Handler.SendResetOTP)
	rg.POST("/auth/reset-password", resetLimiter, m.Handler.ResetPassword)

	auth := rg.Group("/")
	auth.Use(middleware.SessionGuard(m.JWT))
	{
		auth.POST("/auth/send-verify-otp", m.Handler.SendVerifyOTP)
		auth.POST("/auth/verify-account", m.Handler.VerifyAccount)
		auth.GET("/auth/is-auth", m.Handler.IsAuthenticated)
	}
}
