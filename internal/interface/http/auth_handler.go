package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinespot/cinespot-api/internal/application"
	"github.com/cinespot/cinespot-api/internal/interface/middleware"
	"github.com/cinespot/cinespot-api/pkg/helpers"
	"github.com/cinespot/cinespot-api/pkg/validation"
)

// AuthHandler exposes the account flows: register, login, logout,
// verify-account OTP and password-reset OTP. Field presence is checked
// by the service so the messages stay the ones clients already know.
type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyAccountRequest struct {
	OTP string `json:"otp"`
}

type sendResetOTPRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// Register - POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	sess, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	h.Cookies.SetSession(c, sess.Token, sess.ExpiresAt)
	ok[any](c, nil, "Registered successfully")
}

// Login - POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	sess, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	h.Cookies.SetSession(c, sess.Token, sess.ExpiresAt)
	ok[any](c, nil, "Logged in successfully")
}

// Logout - POST /api/auth/logout. Stateless: the only thing to destroy
// is the client's cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	ok[any](c, nil, "Logged out successfully")
}

// IsAuthenticated - GET /api/auth/is-auth (guarded). Reaching this
// handler already proves the session; nothing else is checked.
func (h *AuthHandler) IsAuthenticated(c *gin.Context) {
	ok(c, gin.H{"userId": c.GetString(middleware.CtxUserIDKey)}, "authenticated")
}

// SendVerifyOTP - POST /api/auth/send-verify-otp (guarded)
func (h *AuthHandler) SendVerifyOTP(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.RequestVerifyOTP(c.Request.Context(), uid); err != nil {
		fail(c, err)
		return
	}
	ok[any](c, nil, "OTP sent successfully")
}

// VerifyAccount - POST /api/auth/verify-account (guarded)
func (h *AuthHandler) VerifyAccount(c *gin.Context) {
	var req verifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.ConfirmVerifyOTP(c.Request.Context(), uid, req.OTP); err != nil {
		fail(c, err)
		return
	}
	ok[any](c, nil, "Email verified successfully")
}

// SendResetOTP - POST /api/auth/send-reset-otp
func (h *AuthHandler) SendResetOTP(c *gin.Context) {
	var req sendResetOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	if err := h.Svc.RequestResetOTP(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	ok[any](c, nil, "OTP sent successfully")
}

// ResetPassword - POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	if err := h.Svc.ConfirmResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	ok[any](c, nil, "Password has been changed successfully.")
}
