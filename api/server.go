package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"godrift/app"
	"godrift/internal"
	"godrift/internal/report"
	"godrift/ports"
)

// Server exposes the drift engine over HTTP. It owns no computation: every
// handler delegates to the drift service or the report writer.
type Server struct {
	router  *gin.Engine
	service *app.DriftService
	writer  *report.Writer
	history ports.CheckHistory
	logger  *internal.Logger
}

// NewServer wires the HTTP boundary. history may be nil.
func NewServer(service *app.DriftService, writer *report.Writer, history ports.CheckHistory, logger *internal.Logger) *Server {
	s := &Server{
		router:  gin.Default(),
		service: service,
		writer:  writer,
		history: history,
		logger:  logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/", s.handleRoot)
	s.router.GET("/health", s.handleHealth)

	monitoring := s.router.Group("/drift")
	{
		monitoring.POST("/check", s.handleCheck)
		monitoring.POST("/alert", s.handleAlert)
	}

	s.router.GET("/reports", s.handleListReports)
	s.router.GET("/reports/:name", s.handleGetReport)
	if s.history != nil {
		s.router.GET("/history", s.handleHistory)
	}
}

// Run starts the server on the given port.
func (s *Server) Run(port string) error {
	s.logger.Info("drift API listening on :%s", port)
	return s.router.Run(":" + port)
}

// Handler exposes the router for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}
