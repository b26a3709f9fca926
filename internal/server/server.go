// Package server serves the portfolio page and its projects fragment over HTTP.
package server

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/portfolio-projects/internal/gateway"
	"github.com/naka-gawa/portfolio-projects/internal/usecase"
	"github.com/naka-gawa/portfolio-projects/internal/view"
)

const shutdownTimeout = 10 * time.Second

// Settings holds what the handlers need besides their collaborators.
type Settings struct {
	Owner string
	Limit int
	Title string
	About template.HTML
}

// Server serves the portfolio page and a freshly loaded projects panel per request.
type Server struct {
	fetcher  gateway.Fetcher
	renderer *view.HTMLRenderer
	settings Settings
	logger   *log.Logger
}

// New creates a Server with its fetcher, renderer and settings.
func New(fetcher gateway.Fetcher, renderer *view.HTMLRenderer, settings Settings, logger *log.Logger) *Server {
	return &Server{
		fetcher:  fetcher,
		renderer: renderer,
		settings: settings,
		logger:   logger,
	}
}

// Handler builds the gin engine.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(s.renderer.Templates())

	// The page shows the loading placeholder; the container requests /projects once it is loaded.
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, view.PageTemplate, view.PageData{
			Title: s.settings.Title,
			About: s.settings.About,
		})
	})

	// Every page load gets its own panel, so each one fetches exactly once.
	r.GET("/projects", func(c *gin.Context) {
		panel := usecase.NewProjectsPanel(s.fetcher, s.renderer, s.settings.Owner, s.settings.Limit, s.logger)
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := panel.Mount(c.Request.Context(), c.Writer); err != nil {
			s.logger.Printf("Failed to render projects: %v", err)
			c.AbortWithStatus(http.StatusInternalServerError)
		}
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		s.logger.Printf("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		s.logger.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
