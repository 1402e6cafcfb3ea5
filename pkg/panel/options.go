package panel

import "strings"

const (
	DefaultPanelID          = "plenti_cms"
	DefaultTriggerID        = "toggle_plenti_cms"
	DefaultVisibleClass     = "menu-visible"
	DefaultDataAttribute    = "x-data"
	DefaultBindingAttribute = "x-model"

	numberModifier = ".number"
)

// Option customises generation and controller behaviour.
type Option func(*config)

type config struct {
	panelID          string
	triggerID        string
	visibleClass     string
	dataAttribute    string
	bindingAttribute string
	emptyOnMissing   bool
}

func newConfig(options ...Option) config {
	cfg := config{
		panelID:          DefaultPanelID,
		triggerID:        DefaultTriggerID,
		visibleClass:     DefaultVisibleClass,
		dataAttribute:    DefaultDataAttribute,
		bindingAttribute: DefaultBindingAttribute,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithPanelID sets the id Attach resolves the panel with.
func WithPanelID(id string) Option {
	return func(cfg *config) {
		if id = strings.TrimSpace(id); id != "" {
			cfg.panelID = id
		}
	}
}

// WithTriggerID sets the id Attach resolves the trigger with.
func WithTriggerID(id string) Option {
	return func(cfg *config) {
		if id = strings.TrimSpace(id); id != "" {
			cfg.triggerID = id
		}
	}
}

// WithVisibleClass overrides the class toggled on the panel.
func WithVisibleClass(class string) Option {
	return func(cfg *config) {
		if class = strings.TrimSpace(class); class != "" {
			cfg.visibleClass = class
		}
	}
}

// WithDataAttribute overrides the root attribute holding the configuration.
func WithDataAttribute(name string) Option {
	return func(cfg *config) {
		if name = strings.TrimSpace(name); name != "" {
			cfg.dataAttribute = name
		}
	}
}

// WithBindingAttribute overrides the two-way binding attribute placed on
// generated inputs. Numeric inputs get the ".number" modifier appended.
func WithBindingAttribute(name string) Option {
	return func(cfg *config) {
		if name = strings.TrimSpace(name); name != "" {
			cfg.bindingAttribute = name
		}
	}
}

// WithEmptyOnMissingConfig makes Attach fall back to an empty FieldSet when
// the root element carries no data attribute. Malformed payloads still fail.
func WithEmptyOnMissingConfig() Option {
	return func(cfg *config) {
		cfg.emptyOnMissing = true
	}
}
