package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinespot/cinespot-api/internal/application"
	"github.com/cinespot/cinespot-api/internal/interface/middleware"
	"github.com/cinespot/cinespot-api/pkg/validation"
)

// UserHandler serves the authenticated user's profile.
type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateProfileRequest struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url" binding:"omitempty,url"`
}

// Data - GET /api/user/data
func (h *UserHandler) Data(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{
		"name":              u.Name,
		"email":             u.Email,
		"avatar_url":        u.AvatarURL,
		"isAccountVerified": u.IsVerified,
	}, "user data")
}

// UpdateProfile - PUT /api/user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{Name: req.Name, AvatarURL: req.AvatarURL})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{
		"name":              u.Name,
		"email":             u.Email,
		"avatar_url":        u.AvatarURL,
		"isAccountVerified": u.IsVerified,
	}, "profile updated")
}

// UploadAvatar - POST /api/user/avatar (multipart field "avatar")
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	fh, err := c.FormFile("avatar")
	if err != nil {
		badPayload(c, map[string]string{"avatar": "is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		badPayload(c, map[string]string{"avatar": "could not read upload"})
		return
	}
	defer func() { _ = f.Close() }()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	url, err := h.Svc.UploadAvatar(c.Request.Context(), uid, f, fh.Filename, contentType)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"avatar_url": url}, "avatar uploaded")
}

// Health - GET /
func Health(c *gin.Context) {
	c.String(http.StatusOK, "API WORKING")
}
