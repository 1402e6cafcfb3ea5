// Package scaffold appends default panel and trigger markup to pages that do
// not ship their own, so the field generator always has a target.
package scaffold

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-cmsfields/pkg/dom"
	"github.com/goliatone/go-cmsfields/pkg/render/template"
	"github.com/goliatone/go-cmsfields/pkg/render/template/pongo"
	"github.com/goliatone/go-cmsfields/pkg/render/templates"
)

const scaffoldTemplate = "scaffold"

// Chrome describes the elements to scaffold.
type Chrome struct {
	PanelID      string
	TriggerID    string
	Label        string
	Icon         string
	VisibleClass string
	Visible      bool
}

// Scaffolder renders Chrome through a template renderer.
type Scaffolder struct {
	templates template.TemplateRenderer
}

// New returns a Scaffolder. A nil renderer selects the embedded pongo2
// templates.
func New(renderer template.TemplateRenderer) (*Scaffolder, error) {
	if renderer == nil {
		engine, err := pongo.New(pongo.WithFS(templates.FS()))
		if err != nil {
			return nil, fmt.Errorf("scaffold: configure templates: %w", err)
		}
		renderer = engine
	}
	return &Scaffolder{templates: renderer}, nil
}

// Ensure appends whichever of the trigger and panel is missing to <body>. It
// reports the roles it added.
func (s *Scaffolder) Ensure(doc *html.Node, chrome Chrome) ([]string, error) {
	if strings.TrimSpace(chrome.PanelID) == "" || strings.TrimSpace(chrome.TriggerID) == "" {
		return nil, fmt.Errorf("scaffold: panel and trigger ids are required")
	}

	hasPanel := dom.FindByID(doc, chrome.PanelID) != nil
	hasTrigger := dom.FindByID(doc, chrome.TriggerID) != nil
	if hasPanel && hasTrigger {
		return nil, nil
	}

	body := dom.FindFirst(doc, "body")
	if body == nil {
		return nil, fmt.Errorf("scaffold: document has no <body>")
	}

	label := chrome.Label
	if label == "" {
		label = "Edit"
	}
	markup, err := s.templates.RenderTemplate(scaffoldTemplate, map[string]any{
		"panel_id":      chrome.PanelID,
		"trigger_id":    chrome.TriggerID,
		"label":         label,
		"icon":          SanitizeIcon(chrome.Icon),
		"visible":       chrome.Visible,
		"visible_class": chrome.VisibleClass,
	})
	if err != nil {
		return nil, fmt.Errorf("scaffold: render chrome: %w", err)
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("scaffold: parse chrome: %w", err)
	}

	var added []string
	for _, node := range nodes {
		if node.Type != html.ElementNode {
			continue
		}
		id, _ := dom.Attr(node, "id")
		switch {
		case id == chrome.TriggerID && !hasTrigger:
			body.AppendChild(node)
			added = append(added, "trigger")
		case id == chrome.PanelID && !hasPanel:
			body.AppendChild(node)
			added = append(added, "panel")
		}
	}
	return added, nil
}
