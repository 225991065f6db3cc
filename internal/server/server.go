// Package server exposes the layout planner over HTTP.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/piwi3910/WallPanel/internal/engine"
	"github.com/piwi3910/WallPanel/internal/export"
	"github.com/piwi3910/WallPanel/internal/model"
)

// Server serves layout requests. Every request gets its own planner, so
// handlers share nothing but the read-only config.
type Server struct {
	cfg    model.AppConfig
	router *gin.Engine
}

// New builds the router. Request fields that are omitted take the config
// defaults, except the door which is absent unless given.
func New(cfg model.AppConfig) *Server {
	s := &Server{cfg: cfg, router: gin.Default()}

	s.router.GET("/healthz", s.handleHealth)
	api := s.router.Group("/api")
	api.POST("/layout", s.handleLayout)
	api.POST("/layout/csv", s.handleCSV)
	api.POST("/layout/xlsx", s.handleXLSX)
	api.POST("/layout/chart", s.handleChart)

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server running at http://localhost%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Println("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// plan decodes the request body and runs the planner. It writes the error
// response itself and reports whether the caller should continue.
func (s *Server) plan(c *gin.Context) (model.LayoutResult, bool) {
	req := model.DefaultRequest()
	s.cfg.ApplyToRequest(&req)
	req.Door = model.DoorSpec{}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return model.LayoutResult{}, false
	}

	result, err := engine.New(req).Plan()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrInvalidGeometry) || errors.Is(err, model.ErrUnknownMode) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return model.LayoutResult{}, false
	}
	return result, true
}

func (s *Server) handleLayout(c *gin.Context) {
	result, ok := s.plan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleCSV(c *gin.Context) {
	result, ok := s.plan(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="cut_list.csv"`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := export.WriteCSV(c.Writer, result); err != nil {
		log.Printf("csv export failed: %v", err)
	}
}

func (s *Server) handleXLSX(c *gin.Context) {
	result, ok := s.plan(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="wall_layout.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := export.WriteXLSX(c.Writer, result); err != nil {
		log.Printf("xlsx export failed: %v", err)
	}
}

func (s *Server) handleChart(c *gin.Context) {
	result, ok := s.plan(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := export.RenderChart(c.Writer, result); err != nil {
		log.Printf("chart render failed: %v", err)
	}
}
