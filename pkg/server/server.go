package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/igm/sockjs-go/v3/sockjs"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-cmsfields/pkg/orchestrator"
	"github.com/goliatone/go-cmsfields/pkg/render/template"
	"github.com/goliatone/go-cmsfields/pkg/render/template/pongo"
	"github.com/goliatone/go-cmsfields/pkg/render/templates"
	"github.com/goliatone/go-cmsfields/pkg/runtime"
)

const shutdownTimeout = 5 * time.Second

// Server serves pages from a file system through the orchestrator.
type Server struct {
	engine   *gin.Engine
	pages    fs.FS
	root     string
	orch     *orchestrator.Orchestrator
	renderer template.TemplateRenderer
	logger   logrus.FieldLogger

	assetPrefix   string
	sessionPrefix string
	title         string
}

// New builds the gin engine and registers every route. A page file system is
// required.
func New(options ...Option) (*Server, error) {
	s := &Server{
		assetPrefix:   defaultAssetPrefix,
		sessionPrefix: defaultSessionPrefix,
		title:         defaultTitle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.pages == nil {
		return nil, errors.New("server: pages file system is required")
	}
	if s.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		s.logger = discard
	}
	if s.orch == nil {
		s.orch = orchestrator.New(
			orchestrator.WithLogger(s.logger),
			orchestrator.WithAssets(true, s.assetPrefix),
		)
	}
	if s.renderer == nil {
		engine, err := pongo.New(pongo.WithFS(templates.FS()))
		if err != nil {
			return nil, fmt.Errorf("server: configure templates: %w", err)
		}
		s.renderer = engine
	}
	if err := s.renderer.GlobalContext(map[string]any{
		"title":        s.title,
		"asset_prefix": strings.TrimSuffix(s.assetPrefix, "/") + "/",
		"root":         s.root,
	}); err != nil {
		return nil, fmt.Errorf("server: template globals: %w", err)
	}

	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), requestID(), accessLog(s.logger))
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/pages/*path", s.handlePage)
	s.engine.GET("/api/fields/*path", s.handleFields)
	s.engine.StaticFS(s.assetPrefix, http.FS(runtime.FS()))

	sessions := sockjs.NewHandler(s.sessionPrefix, sockjs.DefaultOptions, s.handleSession)
	s.engine.Any(s.sessionPrefix+"/*path", gin.WrapH(sessions))
}

// Handler exposes the engine for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("preview server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}
