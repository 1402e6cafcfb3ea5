package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-cmsfields/pkg/fieldset"
	"github.com/goliatone/go-cmsfields/pkg/orchestrator"
	"github.com/goliatone/go-cmsfields/pkg/panel"
	"github.com/goliatone/go-cmsfields/pkg/source"
)

var errBadRequest = errors.New("server: bad request")

type pageRow struct {
	Path   string
	Fields int
	Error  string
}

type fieldsResponse struct {
	Path         string            `json:"path"`
	Fields       fieldset.FieldSet `json:"fields"`
	PanelFound   bool              `json:"panelFound"`
	TriggerFound bool              `json:"triggerFound"`
	Visible      bool              `json:"visible"`
}

func (s *Server) handleIndex(c *gin.Context) {
	rows, err := s.listPages(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	pages := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		pages = append(pages, map[string]any{
			"path":   row.Path,
			"fields": row.Fields,
			"error":  row.Error,
		})
	}
	out, err := s.renderer.RenderTemplate("index", map[string]any{"pages": pages})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

func (s *Server) handlePage(c *gin.Context) {
	page, err := s.readPage(c.Param("path"))
	if err != nil {
		s.fail(c, err)
		return
	}

	req := orchestrator.Request{Page: &page}
	if raw := c.Query("visible"); raw != "" {
		visible, err := strconv.ParseBool(raw)
		if err != nil {
			s.fail(c, fmt.Errorf("%w: visible must be a boolean", errBadRequest))
			return
		}
		req.Visible = &visible
	}

	result, err := s.orch.Inject(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", result.HTML)
}

func (s *Server) handleFields(c *gin.Context) {
	page, err := s.readPage(c.Param("path"))
	if err != nil {
		s.fail(c, err)
		return
	}
	report, err := s.orch.Inspect(c.Request.Context(), orchestrator.Request{Page: &page})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, fieldsResponse{
		Path:         page.Location(),
		Fields:       report.Fields,
		PanelFound:   report.PanelFound,
		TriggerFound: report.TriggerFound,
		Visible:      report.Visible,
	})
}

func (s *Server) readPage(raw string) (source.Page, error) {
	name := path.Clean(strings.TrimPrefix(raw, "/"))
	if name == "." || !fs.ValidPath(name) {
		return source.Page{}, fmt.Errorf("%w: invalid page path %q", errBadRequest, raw)
	}
	data, err := fs.ReadFile(s.pages, name)
	if err != nil {
		return source.Page{}, fmt.Errorf("server: read %s: %w", name, err)
	}
	return source.NewPage(source.FromFS(name), data)
}

func (s *Server) listPages(ctx context.Context) ([]pageRow, error) {
	var rows []pageRow
	err := fs.WalkDir(s.pages, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(name), ".html") {
			return nil
		}
		row := pageRow{Path: name}
		page, err := s.readPage(name)
		if err != nil {
			row.Error = err.Error()
			rows = append(rows, row)
			return nil
		}
		report, err := s.orch.Inspect(ctx, orchestrator.Request{Page: &page})
		switch {
		case err != nil:
			row.Error = err.Error()
		case !report.Ready():
			row.Error = panel.ErrMissingElement.Error()
		}
		row.Fields = report.Fields.Len()
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("server: list pages: %w", err)
	}
	return rows, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, fieldset.ErrConfigParse), errors.Is(err, panel.ErrMissingElement):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}
