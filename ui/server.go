package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"heartdash/domain/core"
	"heartdash/internal"
	"heartdash/internal/errors"
	"heartdash/internal/report"
	"heartdash/ui/templates/fragments"

	"github.com/gin-gonic/gin"
)

// RenderIDHeader carries the render ID in both directions
const RenderIDHeader = "X-Render-ID"

// Server serves the dashboard page
type Server struct {
	router        *gin.Engine
	renderer      *report.Renderer
	templates     *template.Template
	embeddedFiles fs.FS
	logger        *internal.Logger
}

// NewServer creates a new web server over files, which must hold
// ui/templates and ui/static
func NewServer(embeddedFiles fs.FS) *Server {
	return &Server{
		router:        gin.New(),
		embeddedFiles: embeddedFiles,
		logger:        internal.DefaultLogger.With("Server"),
	}
}

// Initialize sets up the server with dependencies
func (s *Server) Initialize(renderer *report.Renderer, logger *internal.Logger) error {
	s.renderer = renderer
	if logger != nil {
		s.logger = logger.With("Server")
	}

	if err := s.parseTemplates(); err != nil {
		return err
	}

	s.setupMiddleware()
	s.setupRoutes()
	return nil
}

// parseTemplates loads every template under ui/templates, named by its path
// relative to that directory
func (s *Server) parseTemplates() error {
	templatesFS, err := fs.Sub(s.embeddedFiles, "ui/templates")
	if err != nil {
		return errors.Wrap(err, "failed to create templates filesystem")
	}

	root, err := fs.Glob(templatesFS, "*.html")
	if err != nil {
		return errors.Wrap(err, "failed to glob root templates")
	}
	nested, err := fs.Glob(templatesFS, "*/*.html")
	if err != nil {
		return errors.Wrap(err, "failed to glob nested templates")
	}
	files := append(root, nested...)
	s.logger.Debug("found %d template files: %v", len(files), files)

	s.templates = template.New("").Funcs(templateFuncs())
	for _, file := range files {
		content, err := fs.ReadFile(templatesFS, file)
		if err != nil {
			return errors.Wrapf(err, "failed to read template %s", file)
		}
		if _, err := s.templates.New(file).Parse(string(content)); err != nil {
			return errors.Wrapf(err, "failed to parse template %s", file)
		}
	}

	for _, name := range append([]string{fragments.Dashboard, fragments.Sidebar}, fragments.Sections...) {
		if s.templates.Lookup(name) == nil {
			return errors.New(errors.CodeInternalError, fmt.Sprintf("template %s missing", name))
		}
	}
	return nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("starting dashboard on http://%s", addr)
	return s.router.Run(addr)
}

// handleIndex renders the whole dashboard, top to bottom
func (s *Server) handleIndex(c *gin.Context) {
	opts := report.Options{ShowRaw: parseToggle(c.Query("raw"))}
	if h := c.GetHeader(RenderIDHeader); h != "" {
		id, err := core.ParseRenderID(h)
		if err != nil {
			s.logger.Warn("ignoring %s header: %v", RenderIDHeader, err)
		} else {
			opts.ID = id
		}
	}

	rep, err := s.renderer.Render(c.Request.Context(), opts)
	if err != nil {
		s.logger.Error("render failed: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Dashboard rendering failed",
			"code":  errors.GetCode(err),
		})
		return
	}

	c.Header(RenderIDHeader, rep.ID.String())
	s.renderTemplate(c, fragments.Dashboard, rep)
}

func (s *Server) handleHealth(c *gin.Context) {
	rows, cols := s.renderer.Dataset().Shape()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"rows":   rows,
		"cols":   cols,
	})
}

// parseToggle reads a checkbox value from a query string
func parseToggle(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
