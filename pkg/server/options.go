package server

import (
	"io/fs"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-cmsfields/pkg/orchestrator"
	"github.com/goliatone/go-cmsfields/pkg/render/template"
)

const (
	defaultAssetPrefix   = "/runtime/"
	defaultSessionPrefix = "/toggle"
	defaultTitle         = "CMS pages"
)

// Option configures the server.
type Option func(*Server)

// WithPages sets the file system pages are served from.
func WithPages(pages fs.FS) Option {
	return func(s *Server) {
		s.pages = pages
	}
}

// WithPagesRoot labels the page root in the index.
func WithPagesRoot(root string) Option {
	return func(s *Server) {
		s.root = root
	}
}

// WithOrchestrator overrides the page pipeline.
func WithOrchestrator(orch *orchestrator.Orchestrator) Option {
	return func(s *Server) {
		s.orch = orch
	}
}

// WithRenderer overrides the template renderer used for the index.
func WithRenderer(renderer template.TemplateRenderer) Option {
	return func(s *Server) {
		s.renderer = renderer
	}
}

// WithLogger sets the access and session logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithAssetPrefix sets the URL path runtime assets are served under.
func WithAssetPrefix(prefix string) Option {
	return func(s *Server) {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			s.assetPrefix = prefix
		}
	}
}

// WithSessionPrefix sets the sockjs mount point.
func WithSessionPrefix(prefix string) Option {
	return func(s *Server) {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			s.sessionPrefix = "/" + strings.Trim(prefix, "/")
		}
	}
}

// WithTitle sets the index page title.
func WithTitle(title string) Option {
	return func(s *Server) {
		s.title = title
	}
}
