package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/epidemiccare-server/internal/config"
	"github.com/epidemiccare-server/internal/service"
	"github.com/epidemiccare-server/internal/session"
	"github.com/epidemiccare-server/pkg/speech"
)

// Server represents the HTTP server hosting the consultation API
type Server struct {
	configManager *config.Manager
	logger        *logrus.Logger
	router        *gin.Engine
	server        *http.Server

	sessions     *session.Manager
	consultation *service.ConsultationService
	assessment   *service.AssessmentService
	progress     *service.ProgressRecorder
	speech       speech.Synthesizer
}

// NewServer creates a new HTTP server instance. The speech synthesizer
// is optional; pass nil when no sink is configured.
func NewServer(
	configManager *config.Manager,
	logger *logrus.Logger,
	sessions *session.Manager,
	consultation *service.ConsultationService,
	assessment *service.AssessmentService,
	progress *service.ProgressRecorder,
	synthesizer speech.Synthesizer,
) *Server {
	cfg := configManager.GetConfig()

	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())
	if cfg.Rate.Enabled {
		limiter := newClientRateLimiter(logger, cfg.Rate.RequestsPerSecond, cfg.Rate.Burst)
		router.Use(limiter.middleware())
	}

	server := &Server{
		configManager: configManager,
		logger:        logger,
		router:        router,
		sessions:      sessions,
		consultation:  consultation,
		assessment:    assessment,
		progress:      progress,
		speech:        synthesizer,
	}

	server.setupRoutes()

	return server
}

// Start starts the HTTP server and blocks until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.configManager.GetServerConfig()
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/diseases", s.handleListDiseases)

		v1.POST("/consultations", s.handleCreateConsultation)
		v1.GET("/consultations/:id", s.handleGetConsultation)
		v1.GET("/consultations/:id/prompt", s.handleGetPrompt)
		v1.POST("/consultations/:id/answers", s.handleSubmitAnswer)
		v1.POST("/consultations/:id/reset", s.handleReset)
		v1.GET("/consultations/:id/transcript", s.handleGetTranscript)
		v1.GET("/consultations/:id/assessment", s.handleGetAssessment)
		v1.POST("/consultations/:id/progress", s.handleRecordProgress)
		v1.GET("/consultations/:id/progress", s.handleGetProgress)
		v1.GET("/consultations/:id/chat", s.handleChat)
	}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"sessions":  s.sessions.Len(),
	})
}

// speak forwards prompt text to the speech sink when one is wired. The
// call is fire-and-forget; failures are logged, never surfaced.
func (s *Server) speak(text string) {
	if s.speech == nil || text == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.speech.Speak(ctx, text); err != nil {
			s.logger.WithError(err).Warn("Speech sink rejected prompt")
		}
	}()
}

// corsMiddleware adds CORS headers to responses
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-API-Key")
		c.Header("Access-Control-Expose-Headers", "Content-Length")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware adds a unique request ID to each request
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}
