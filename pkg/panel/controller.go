package panel

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/html"

	"github.com/goliatone/go-cmsfields/pkg/dom"
	"github.com/goliatone/go-cmsfields/pkg/fieldset"
)

// Controller binds a FieldSet to a document's panel and trigger elements.
// Methods are safe for concurrent use; every mutation of the tree happens under
// the controller's lock.
type Controller struct {
	mu sync.Mutex

	cfg       config
	doc       *html.Node
	fields    fieldset.FieldSet
	panel     *html.Node
	trigger   *html.Node
	mounted   bool
	generated []GeneratedField
}

// New parses raw and resolves the panel and trigger elements by id. Parse
// failures wrap fieldset.ErrConfigParse; unresolved elements wrap
// ErrMissingElement.
func New(doc *html.Node, raw, panelID, triggerID string, options ...Option) (*Controller, error) {
	set, err := fieldset.Parse(raw)
	if err != nil {
		return nil, err
	}
	return newController(doc, set, panelID, triggerID, options...)
}

// NewWithFields is New for an already decoded FieldSet.
func NewWithFields(doc *html.Node, set fieldset.FieldSet, panelID, triggerID string, options ...Option) (*Controller, error) {
	return newController(doc, set, panelID, triggerID, options...)
}

// Attach reads the configuration from the root element's data attribute and
// resolves the panel and trigger from the configured ids.
func Attach(doc *html.Node, options ...Option) (*Controller, error) {
	cfg := newConfig(options...)

	root := dom.Root(doc)
	if root == nil {
		return nil, &MissingElementError{Role: RoleRoot}
	}

	raw, ok := dom.Attr(root, cfg.dataAttribute)
	if !ok || strings.TrimSpace(raw) == "" {
		if !cfg.emptyOnMissing {
			return nil, &fieldset.ParseError{Reason: fmt.Sprintf("attribute %s not found on <html>", cfg.dataAttribute)}
		}
		return newController(doc, fieldset.FieldSet{}, cfg.panelID, cfg.triggerID, options...)
	}

	return New(doc, raw, cfg.panelID, cfg.triggerID, options...)
}

func newController(doc *html.Node, set fieldset.FieldSet, panelID, triggerID string, options ...Option) (*Controller, error) {
	cfg := newConfig(options...)
	cfg.panelID = panelID
	cfg.triggerID = triggerID

	panelNode := dom.FindByID(doc, panelID)
	if panelNode == nil {
		return nil, &MissingElementError{Role: RolePanel, ID: panelID}
	}
	triggerNode := dom.FindByID(doc, triggerID)
	if triggerNode == nil {
		return nil, &MissingElementError{Role: RoleTrigger, ID: triggerID}
	}

	return &Controller{
		cfg:     cfg,
		doc:     doc,
		fields:  set,
		panel:   panelNode,
		trigger: triggerNode,
	}, nil
}

// Mount runs the field generator against the panel. Only the first call
// mutates the tree; later calls return the fields generated then.
func (c *Controller) Mount() []GeneratedField {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.mounted {
		c.generated = Generate(c.fields, c.panel, WithBindingAttribute(c.cfg.bindingAttribute))
		c.mounted = true
	}
	return append([]GeneratedField(nil), c.generated...)
}

// Mounted reports whether Mount has run.
func (c *Controller) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted
}

// Click dispatches a click on the element with targetID. Clicks on the trigger
// or any of its descendants toggle the panel. It reports whether the click was
// handled.
func (c *Controller) Click(targetID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	target := dom.FindByID(c.doc, targetID)
	if target == nil || !dom.Contains(c.trigger, target) {
		return false
	}
	Toggle(c.panel, c.cfg.visibleClass)
	return true
}

// Toggle flips the panel's visibility class and returns the new state.
func (c *Controller) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Toggle(c.panel, c.cfg.visibleClass)
}

// SetVisible forces the visibility class on or off.
func (c *Controller) SetVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if visible {
		dom.AddClass(c.panel, c.cfg.visibleClass)
		return
	}
	dom.RemoveClass(c.panel, c.cfg.visibleClass)
}

// Visible reports whether the panel carries the visibility class.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return dom.HasClass(c.panel, c.cfg.visibleClass)
}

// Fields returns a copy of the controller's FieldSet.
func (c *Controller) Fields() fieldset.FieldSet {
	return c.fields.Clone()
}

// Generated returns the fields produced by Mount, if it has run.
func (c *Controller) Generated() []GeneratedField {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]GeneratedField(nil), c.generated...)
}

// Render serialises the controlled document under the controller's lock.
func (c *Controller) Render() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return dom.Render(c.doc)
}

func (c *Controller) Panel() *html.Node {
	return c.panel
}

func (c *Controller) Trigger() *html.Node {
	return c.trigger
}

func (c *Controller) PanelID() string {
	return c.cfg.panelID
}

func (c *Controller) TriggerID() string {
	return c.cfg.triggerID
}

func (c *Controller) VisibleClass() string {
	return c.cfg.visibleClass
}
