package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogRouter(upstream string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	h := NewCatalogHandler(upstream, "secret-key", logger)
	r := gin.New()
	r.GET("/api/tmdb/proxy", h.Proxy)
	return r
}

func TestCatalogProxyForwardsAndInjectsKey(t *testing.T) {
	var gotPath, gotKey string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer upstream.Close()

	r := newCatalogRouter(upstream.URL)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tmdb/proxy?endpoint=/movie/popular", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[]}`, w.Body.String())
	assert.Equal(t, "/movie/popular", gotPath)
	assert.Equal(t, "secret-key", gotKey, "the server-side key is appended upstream")
	assert.NotContains(t, w.Body.String(), "secret-key", "the key never reaches the client")
}

func TestCatalogProxyKeepsExistingQuery(t *testing.T) {
	var gotQuery string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	r := newCatalogRouter(upstream.URL)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tmdb/proxy?endpoint=%2Fsearch%2Fmovie%3Fquery%3Dinception", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, gotQuery, "query=inception")
	assert.Contains(t, gotQuery, "api_key=secret-key")
}

func TestCatalogProxyRequiresEndpoint(t *testing.T) {
	r := newCatalogRouter("http://unused.invalid")

	for _, target := range []string{"/api/tmdb/proxy", "/api/tmdb/proxy?endpoint=movie/popular"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, "Missing TMDb endpoint", parseEnvelope(t, w).Message, target)
	}
}

func TestCatalogProxyMapsUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	r := newCatalogRouter(upstream.URL)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tmdb/proxy?endpoint=/movie/0", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "TMDB fetch failed", parseEnvelope(t, w).Message)
}
