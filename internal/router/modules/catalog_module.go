package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cinespot/cinespot-api/internal/container"
	handlers "github.com/cinespot/cinespot-api/internal/interface/http"
	"github.com/cinespot/cinespot-api/internal/interface/middleware"
)

// CatalogModule wires the public TMDB proxy, rate-limited per IP with a
// bypass for private addresses so local frontends are not throttled.
type CatalogModule struct {
	Handler *handlers.CatalogHandler
}

func NewCatalogModule(h *handlers.CatalogHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/tmdb/proxy", rl, m.Handler.Proxy)
}
