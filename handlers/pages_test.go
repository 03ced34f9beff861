package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoPageRenders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/demo", NewPagesHandler("web", false).Demo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/demo", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "GoodCents Banking Demo")
	assert.Contains(t, w.Body.String(), "Claude AI Disabled")
}

func TestDemoPageShowsAIEnabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/demo", NewPagesHandler("web", true).Demo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/demo", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Claude AI Enabled")
}
