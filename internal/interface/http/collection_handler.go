package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinespot/cinespot-api/internal/application"
	"github.com/cinespot/cinespot-api/internal/domain/entity"
	"github.com/cinespot/cinespot-api/internal/interface/middleware"
	"github.com/cinespot/cinespot-api/pkg/validation"
)

// CollectionHandler serves the user's saved-movie collection.
type CollectionHandler struct {
	Svc    *application.CollectionService
	Logger *logrus.Logger
}

func NewCollectionHandler(svc *application.CollectionService, logger *logrus.Logger) *CollectionHandler {
	return &CollectionHandler{Svc: svc, Logger: logger}
}

type addMovieRequest struct {
	MovieID string `json:"movieId"`
	Title   string `json:"title"`
	Poster  string `json:"poster"`
}

// Add - POST /api/collection/add
func (h *CollectionHandler) Add(c *gin.Context) {
	var req addMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Add(c.Request.Context(), uid, req.MovieID, req.Title, req.Poster); err != nil {
		fail(c, err)
		return
	}
	ok[any](c, nil, "Movie added to collection")
}

// List - GET /api/collection/user
func (h *CollectionHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	items, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(items))
	for _, it := range items {
		out = append(out, movieJSON(it))
	}
	ok(c, out, "collection")
}

// Remove - DELETE /api/collection/remove/:movieId
func (h *CollectionHandler) Remove(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Remove(c.Request.Context(), uid, c.Param("movieId")); err != nil {
		fail(c, err)
		return
	}
	ok[any](c, nil, "Movie removed from collection")
}

// Search - GET /api/collection/search?q=...&size=...
func (h *CollectionHandler) Search(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Svc.Search(c.Request.Context(), uid, c.Query("q"), size)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, hits, "search results")
}

func movieJSON(it entity.CollectionItem) gin.H {
	return gin.H{
		"movieId": it.MovieID,
		"title":   it.Title,
		"poster":  it.PosterURL,
		"addedAt": it.AddedAt,
	}
}
