package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cinespot/cinespot-api/internal/container"
	handlers "github.com/cinespot/cinespot-api/internal/interface/http"
	"github.com/cinespot/cinespot-api/internal/interface/middleware"
	"github.com/cinespot/cinespot-api/pkg/helpers"
)

// UserModule wires the profile routes behind the session guard.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.SessionGuard(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/user/data", m.Handler.Data)
		auth.PUT("/user/profile", m.Handler.UpdateProfile)
		auth.POST("/user/avatar", m.Handler.UploadAvatar)
	}
}
