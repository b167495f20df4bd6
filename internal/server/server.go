// Package server exposes invoice rendering and totals computation over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rezonia/invoice-maker/internal/logger"
	"github.com/rezonia/invoice-maker/internal/render"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool

	// Defaults is the renderer defaults provider shared by every request.
	// It is read-only once the server starts.
	Defaults *render.Config
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	renderer *render.Renderer
	log      zerolog.Logger
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:   config,
		router:   router,
		renderer: render.NewRenderer(config.Defaults),
		log:      logger.WithComponent("server"),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/render", s.handleRender)
		v1.POST("/totals", s.handleTotals)
		v1.POST("/validate", s.handleValidate)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	s.log.Info().Str("address", s.config.Address).Msg("listening")
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleRender(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice document", Details: err.Error()})
		return
	}

	data, err := s.renderer.Render(req.ToInvoice())
	if err != nil {
		s.log.Error().Err(err).Msg("render failed")
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "render failed", Details: err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/pdf", data)
}

func (s *Server) handleTotals(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice document", Details: err.Error()})
		return
	}

	inv := req.ToInvoice()
	c.JSON(http.StatusOK, TotalsResponse{
		Subtotal:  inv.Subtotal().String(),
		Tax:       inv.Tax().String(),
		Shipping:  inv.Shipping().String(),
		Retention: inv.Retention().String(),
		Total:     inv.Total().String(),
		Paid:      inv.Paid(),
		Refunded:  inv.Refunded(),
		Overdue:   inv.Overdue(),
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice document", Details: err.Error()})
		return
	}

	errors, warnings := req.ToInvoice().Validate()
	c.JSON(http.StatusOK, ValidationResponse{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	})
}
