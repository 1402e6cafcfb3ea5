package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/goliatone/go-cmsfields/internal/loader"
	"github.com/goliatone/go-cmsfields/pkg/dom"
	"github.com/goliatone/go-cmsfields/pkg/fieldset"
	"github.com/goliatone/go-cmsfields/pkg/panel"
	"github.com/goliatone/go-cmsfields/pkg/scaffold"
	"github.com/goliatone/go-cmsfields/pkg/source"
)

// Orchestrator runs the page pipeline: load, parse, scaffold, attach the panel
// controller, generate fields, link runtime assets, render.
type Orchestrator struct {
	loader source.Loader
	logger logrus.FieldLogger

	panelID          string
	triggerID        string
	visibleClass     string
	dataAttribute    string
	bindingAttribute string
	allowMissing     bool

	linkAssets  bool
	assetPrefix string

	scaffoldEnabled bool
	scaffolder      *scaffold.Scaffolder
	scaffoldLabel   string
	scaffoldIcon    string

	initialiseErr error
}

// New constructs an Orchestrator. Missing collaborators get the built-in
// implementations: a file/fs loader with HTTP disabled, the embedded scaffold
// templates, and a logger that discards output.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		panelID:          panel.DefaultPanelID,
		triggerID:        panel.DefaultTriggerID,
		visibleClass:     panel.DefaultVisibleClass,
		dataAttribute:    panel.DefaultDataAttribute,
		bindingAttribute: panel.DefaultBindingAttribute,
		linkAssets:       true,
		assetPrefix:      defaultAssetPrefix,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = loader.New(source.NewLoaderOptions())
	}
	if o.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.logger = discard
	}
	if o.scaffoldEnabled && o.scaffolder == nil {
		s, err := scaffold.New(nil)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: scaffold: %w", err)
			return
		}
		o.scaffolder = s
	}
}

// Request describes one page to process.
type Request struct {
	// Source locates the page. Optional when Page is supplied.
	Source source.Source

	// Page bypasses the loader.
	Page *source.Page

	// Fields replaces the configuration carried by the page. The new payload
	// is written back to the root data attribute.
	Fields *fieldset.FieldSet

	// Visible forces the panel's initial visibility when set.
	Visible *bool
}

// FieldInfo summarises one generated control.
type FieldInfo struct {
	Name      string `json:"name"`
	InputType string `json:"inputType"`
	Value     string `json:"value"`
}

// Result is the output of Inject.
type Result struct {
	HTML       []byte
	Fields     fieldset.FieldSet
	Generated  []FieldInfo
	Scaffolded []string
	Visible    bool
}

// Inject loads the page, generates the CMS fields into its panel and returns
// the rendered document.
func (o *Orchestrator) Inject(ctx context.Context, req Request) (Result, error) {
	m, err := o.mount(ctx, req)
	if err != nil {
		return Result{}, err
	}
	if o.linkAssets {
		o.linkRuntime(m.doc)
	}

	out, err := m.ctrl.Render()
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: %w", err)
	}

	infos := make([]FieldInfo, 0, len(m.generated))
	for _, field := range m.generated {
		infos = append(infos, FieldInfo{
			Name:      field.Name,
			InputType: field.InputType(),
			Value:     field.Value.String(),
		})
	}

	o.logger.WithField("page", m.page.Location()).
		WithField("fields", len(infos)).
		Info("injected cms fields")

	return Result{
		HTML:       out,
		Fields:     m.ctrl.Fields(),
		Generated:  infos,
		Scaffolded: m.scaffolded,
		Visible:    m.ctrl.Visible(),
	}, nil
}

// Controller runs the pipeline up to mounting and returns the live controller
// for callers that dispatch clicks themselves. Runtime assets are not linked.
func (o *Orchestrator) Controller(ctx context.Context, req Request) (*panel.Controller, error) {
	m, err := o.mount(ctx, req)
	if err != nil {
		return nil, err
	}
	return m.ctrl, nil
}

type mounted struct {
	page       source.Page
	doc        *html.Node
	ctrl       *panel.Controller
	generated  []panel.GeneratedField
	scaffolded []string
}

func (o *Orchestrator) mount(ctx context.Context, req Request) (mounted, error) {
	page, doc, err := o.prepare(ctx, req)
	if err != nil {
		return mounted{}, err
	}
	log := o.logger.WithField("page", page.Location())

	if req.Fields != nil {
		if err := o.writeFields(doc, *req.Fields); err != nil {
			return mounted{}, err
		}
	}

	var scaffolded []string
	if o.scaffoldEnabled {
		scaffolded, err = o.scaffolder.Ensure(doc, scaffold.Chrome{
			PanelID:      o.panelID,
			TriggerID:    o.triggerID,
			Label:        o.scaffoldLabel,
			Icon:         o.scaffoldIcon,
			VisibleClass: o.visibleClass,
		})
		if err != nil {
			return mounted{}, fmt.Errorf("orchestrator: %w", err)
		}
		if len(scaffolded) > 0 {
			log.WithField("added", scaffolded).Debug("scaffolded panel chrome")
		}
	}

	var ctrl *panel.Controller
	if req.Fields != nil {
		ctrl, err = panel.NewWithFields(doc, *req.Fields, o.panelID, o.triggerID, o.panelOptions()...)
	} else {
		ctrl, err = panel.Attach(doc, o.panelOptions()...)
	}
	if err != nil {
		log.WithError(err).Warn("attach panel failed")
		return mounted{}, fmt.Errorf("orchestrator: attach %s: %w", page.Location(), err)
	}

	generated := ctrl.Mount()
	if req.Visible != nil {
		ctrl.SetVisible(*req.Visible)
	}

	return mounted{
		page:       page,
		doc:        doc,
		ctrl:       ctrl,
		generated:  generated,
		scaffolded: scaffolded,
	}, nil
}

// Rewrite replaces the page's configuration with req.Fields and renders the
// document without generating fields.
func (o *Orchestrator) Rewrite(ctx context.Context, req Request) ([]byte, error) {
	if req.Fields == nil {
		return nil, errors.New("orchestrator: fields are required")
	}
	_, doc, err := o.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := o.writeFields(doc, *req.Fields); err != nil {
		return nil, err
	}
	out, err := dom.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return out, nil
}

// Report describes a page without modifying it.
type Report struct {
	Location     string
	Fields       fieldset.FieldSet
	HasConfig    bool
	PanelFound   bool
	TriggerFound bool
	Visible      bool
}

// Ready reports whether Inject would find everything it needs.
func (r Report) Ready() bool {
	return r.PanelFound && r.TriggerFound
}

// Inspect parses the page's configuration and checks for the panel and
// trigger elements. Configuration errors are returned; missing elements are
// reported in the Report.
func (o *Orchestrator) Inspect(ctx context.Context, req Request) (Report, error) {
	page, doc, err := o.prepare(ctx, req)
	if err != nil {
		return Report{}, err
	}

	report := Report{Location: page.Location()}
	if root := dom.Root(doc); root != nil {
		if raw, ok := dom.Attr(root, o.dataAttribute); ok && strings.TrimSpace(raw) != "" {
			report.HasConfig = true
			set, err := fieldset.Parse(raw)
			if err != nil {
				return report, fmt.Errorf("orchestrator: inspect %s: %w", page.Location(), err)
			}
			report.Fields = set
		}
	}
	if !report.HasConfig && !o.allowMissing {
		return report, fmt.Errorf("orchestrator: inspect %s: %w", page.Location(),
			&fieldset.ParseError{Reason: fmt.Sprintf("attribute %s not found on <html>", o.dataAttribute)})
	}

	panelNode := dom.FindByID(doc, o.panelID)
	report.PanelFound = panelNode != nil
	report.TriggerFound = dom.FindByID(doc, o.triggerID) != nil
	report.Visible = panelNode != nil && dom.HasClass(panelNode, o.visibleClass)
	return report, nil
}

func (o *Orchestrator) prepare(ctx context.Context, req Request) (source.Page, *html.Node, error) {
	if ctx == nil {
		return source.Page{}, nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return source.Page{}, nil, err
	}
	if err := o.initialiseErr; err != nil {
		return source.Page{}, nil, err
	}

	page, err := o.resolvePage(ctx, req)
	if err != nil {
		return source.Page{}, nil, err
	}
	doc, err := dom.ParseString(string(page.Raw()))
	if err != nil {
		return source.Page{}, nil, fmt.Errorf("orchestrator: %s: %w", page.Location(), err)
	}
	return page, doc, nil
}

func (o *Orchestrator) resolvePage(ctx context.Context, req Request) (source.Page, error) {
	if req.Page != nil {
		return *req.Page, nil
	}
	if req.Source == nil {
		return source.Page{}, errors.New("orchestrator: source or page is required")
	}
	page, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return source.Page{}, fmt.Errorf("orchestrator: load page: %w", err)
	}
	return page, nil
}

func (o *Orchestrator) writeFields(doc *html.Node, set fieldset.FieldSet) error {
	root := dom.Root(doc)
	if root == nil {
		return fmt.Errorf("orchestrator: %w", &panel.MissingElementError{Role: panel.RoleRoot})
	}
	dom.SetAttr(root, o.dataAttribute, set.Attribute())
	return nil
}

func (o *Orchestrator) panelOptions() []panel.Option {
	opts := []panel.Option{
		panel.WithPanelID(o.panelID),
		panel.WithTriggerID(o.triggerID),
		panel.WithVisibleClass(o.visibleClass),
		panel.WithDataAttribute(o.dataAttribute),
		panel.WithBindingAttribute(o.bindingAttribute),
	}
	if o.allowMissing {
		opts = append(opts, panel.WithEmptyOnMissingConfig())
	}
	return opts
}
