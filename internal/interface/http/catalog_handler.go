package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinespot/cinespot-api/pkg/response"
)

// CatalogHandler proxies catalog lookups to TMDB so the API key never
// reaches the browser.
type CatalogHandler struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	Logger  *logrus.Logger
}

func NewCatalogHandler(baseURL, apiKey string, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 10 * time.Second},
		Logger:  logger,
	}
}

// Proxy - GET /api/tmdb/proxy?endpoint=/movie/popular
func (h *CatalogHandler) Proxy(c *gin.Context) {
	endpoint := c.Query("endpoint")
	if endpoint == "" || !strings.HasPrefix(endpoint, "/") {
		resp := response.Error[any](c, http.StatusBadRequest, "Missing TMDb endpoint", nil)
		c.JSON(resp.Status, resp)
		return
	}

	joiner := "?"
	if strings.Contains(endpoint, "?") {
		joiner = "&"
	}
	url := h.BaseURL + endpoint + joiner + "api_key=" + h.APIKey

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, url, nil)
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "Failed to fetch from TMDb", nil)
		c.JSON(resp.Status, resp)
		return
	}
	upstream, err := h.Client.Do(req)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("tmdb request failed")
		}
		resp := response.Error[any](c, http.StatusInternalServerError, "Failed to fetch from TMDb", nil)
		c.JSON(resp.Status, resp)
		return
	}
	defer func() { _ = upstream.Body.Close() }()

	if upstream.StatusCode != http.StatusOK {
		resp := response.Error[any](c, upstream.StatusCode, "TMDB fetch failed", nil)
		c.JSON(resp.Status, resp)
		return
	}

	body, err := io.ReadAll(upstream.Body)
	if err != nil {
		resp := response.Error[any](c, http.StatusInternalServerError, "Failed to fetch from TMDb", nil)
		c.JSON(resp.Status, resp)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
