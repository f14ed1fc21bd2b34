package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ayush078/content-sumarizer/internal/dispatch"
	"github.com/ayush078/content-sumarizer/internal/logger"
)

// Server is the HTTP presentation layer: the input form, the summarize
// action and the docx export.
type Server struct {
	engine     *gin.Engine
	dispatcher dispatch.Dispatcher
	tempDir    string
	logger     logger.Logger
	actions    *semaphore
	metrics    *metrics
}

// New creates the HTTP server around a dispatcher. tempDir receives the
// short-lived files for video uploads.
func New(dispatcher dispatch.Dispatcher, tempDir string, log logger.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:     engine,
		dispatcher: dispatcher,
		tempDir:    tempDir,
		logger:     log,
		actions:    newSemaphore(1),
		metrics:    newMetrics(),
	}

	engine.GET("/", s.handleIndex)
	engine.GET("/api/prompts", s.handlePrompts)
	engine.POST("/api/summarize", s.handleSummarize)
	engine.POST("/api/export", s.handleExport)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	return s
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
