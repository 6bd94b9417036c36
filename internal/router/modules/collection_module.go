package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cinespot/cinespot-api/internal/container"
	handlers "github.com/cinespot/cinespot-api/internal/interface/http"
	"github.com/cinespot/cinespot-api/internal/interface/middleware"
	"github.com/cinespot/cinespot-api/pkg/helpers"
)

// CollectionModule wires the saved-movie routes behind the session guard.
type CollectionModule struct {
	Handler *handlers.CollectionHandler
	JWT     *helpers.JWTManager
}

func NewCollectionModule(h *handlers.CollectionHandler, jwt *helpers.JWTManager) *CollectionModule {
	return &CollectionModule{Handler: h, JWT: jwt}
}

func (m *CollectionModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.SessionGuard(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/collection/add", m.Handler.Add)
		auth.GET("/collection/user", m.Handler.List)
		auth.DELETE("/collection/remove/:movieId", m.Handler.Remove)
		auth.GET("/collection/search", m.Handler.Search)
	}
}
