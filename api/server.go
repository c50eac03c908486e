package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/floorline/recorder-api/api/types"
	"github.com/floorline/recorder-api/internal/database"
	"github.com/floorline/recorder-api/pkg/config"
	"github.com/gin-gonic/gin"
)

const (
	defaultMaxUploadBytes = 50 * 1024 * 1024
	defaultReadTimeout    = 5 * time.Minute
	defaultWriteTimeout   = 15 * time.Minute
	defaultMaxHeaderBytes = 1 << 20 // 1 MB
)

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	db                 *database.DB
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(address string, cfg config.ServerConfig) *Server {
	// Create Gin engine with recovery middleware only
	engine := gin.New()
	engine.Use(gin.Recovery())

	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}
	// Transcription requests answer synchronously and a local whisperx run
	// can take several minutes, so the write timeout stays generous.
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	maxHeaderBytes := cfg.MaxHeaderBytes
	if maxHeaderBytes <= 0 {
		maxHeaderBytes = defaultMaxHeaderBytes
	}

	server := &Server{
		engine:       engine,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		httpServer: &http.Server{
			Addr:           address,
			Handler:        engine,
			ReadTimeout:    readTimeout,
			WriteTimeout:   writeTimeout,
			IdleTimeout:    30 * time.Second,
			MaxHeaderBytes: maxHeaderBytes,
		},
	}

	return server
}

// SetDatabase sets the database connection
func (s *Server) SetDatabase(db *database.DB) {
	s.db = db
	if s.dependencies == nil {
		s.dependencies = &types.Dependencies{}
	}
	s.dependencies.DB = db
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	s.setupMiddleware()

	if err := s.setupRoutes(); err != nil {
		return err
	}

	return nil
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(gin.Logger())

	s.engine.Use(CORS())

	maxBytes := int64(defaultMaxUploadBytes)
	if s.dependencies != nil && s.dependencies.MaxUploadBytes > 0 {
		maxBytes = s.dependencies.MaxUploadBytes
	}
	s.engine.Use(RequestSizeLimit(maxBytes))
}

// setupRoutes delegates to the main route registration
func (s *Server) setupRoutes() error {
	return RegisterRoutes(s.engine, s.dependencies, s.rateLimiters, s.cleanupStop, &s.cleanupInitialized)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Stop the rate limiter cleanup goroutine
	close(s.cleanupStop)

	return s.httpServer.Shutdown(ctx)
}
