package ui

import (
	"io/fs"
	"net/http"

	"heartdash/ui/middleware"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.RequestLogger(s.logger))

	staticFS, err := fs.Sub(s.embeddedFiles, "ui/static")
	if err != nil {
		s.logger.Warn("static files unavailable: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}
