package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(CORS())
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(CORS())
	engine.POST("/ping", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	// Preflight answers immediately without hitting the handler.
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestSizeLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestSizeLimit(32))
	engine.POST("/upload", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	small := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader([]byte("tiny body")))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, small)
	assert.Equal(t, http.StatusOK, w.Code)

	big := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader([]byte(strings.Repeat("x", 100))))
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRequestSizeLimitIgnoresGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestSizeLimit(1))
	engine.GET("/list", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/list", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPerClientRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rateLimiters := &sync.Map{}
	cleanupStop := make(chan struct{})
	defer close(cleanupStop)
	var once sync.Once

	engine := gin.New()
	engine.Use(PerClientRateLimit(rateLimiters, cleanupStop, &once, 1, 2))
	engine.GET("/limited", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Burst of 2 passes, the third immediate request is rejected.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}

	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different client has its own budget.
	other := httptest.NewRequest(http.MethodGet, "/limited", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, other)
	assert.Equal(t, http.StatusOK, w.Code)
}
