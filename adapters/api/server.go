package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simlab/app"
	"simlab/internal"
	"simlab/internal/config"
)

// Server exposes the simulation engine over HTTP. It is a thin command
// layer: every statistical decision lives in the app service, the handlers
// only translate requests and errors.
type Server struct {
	router         *gin.Engine
	service        *app.SimulationService
	maxSimulations int
	logger         *internal.Logger
}

// NewServer creates the HTTP command layer around a simulation service.
func NewServer(cfg *config.Config, service *app.SimulationService, logger *internal.Logger) *Server {
	gin.SetMode(cfg.Server.GinMode)

	if logger == nil {
		logger = internal.DefaultLogger
	}

	s := &Server{
		router:         gin.New(),
		service:        service,
		maxSimulations: cfg.Engine.MaxSimulations,
		logger:         logger,
	}

	s.router.Use(gin.Recovery())
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.GET("/info", s.handleInfo)
	api.POST("/simulations", s.handleRun)
	api.POST("/simulations/export", s.handleExport)
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}
