package orchestrator

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-cmsfields/pkg/config"
	"github.com/goliatone/go-cmsfields/pkg/scaffold"
	"github.com/goliatone/go-cmsfields/pkg/source"
)

// Option mutates the orchestrator during construction.
type Option func(*Orchestrator)

// WithLoader overrides the page loader.
func WithLoader(loader source.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithElementIDs sets the panel and trigger ids. Empty values keep the
// defaults.
func WithElementIDs(panelID, triggerID string) Option {
	return func(o *Orchestrator) {
		if panelID != "" {
			o.panelID = panelID
		}
		if triggerID != "" {
			o.triggerID = triggerID
		}
	}
}

// WithVisibleClass sets the class toggled on the panel.
func WithVisibleClass(class string) Option {
	return func(o *Orchestrator) {
		if class != "" {
			o.visibleClass = class
		}
	}
}

// WithAttributes sets the root configuration attribute and the binding
// attribute written on generated inputs.
func WithAttributes(data, binding string) Option {
	return func(o *Orchestrator) {
		if data != "" {
			o.dataAttribute = data
		}
		if binding != "" {
			o.bindingAttribute = binding
		}
	}
}

// WithAllowMissingConfig treats a page without the configuration attribute as
// an empty FieldSet.
func WithAllowMissingConfig(allow bool) Option {
	return func(o *Orchestrator) {
		o.allowMissing = allow
	}
}

// WithAssets controls runtime asset linking. The prefix is the URL path the
// runtime assets are served under.
func WithAssets(link bool, prefix string) Option {
	return func(o *Orchestrator) {
		o.linkAssets = link
		if prefix != "" {
			o.assetPrefix = prefix
		}
	}
}

// WithScaffold enables default panel chrome for pages missing the panel or
// trigger.
func WithScaffold(label, icon string) Option {
	return func(o *Orchestrator) {
		o.scaffoldEnabled = true
		o.scaffoldLabel = label
		o.scaffoldIcon = icon
	}
}

// WithScaffolder enables scaffolding with a custom scaffolder.
func WithScaffolder(s *scaffold.Scaffolder) Option {
	return func(o *Orchestrator) {
		o.scaffoldEnabled = s != nil
		o.scaffolder = s
	}
}

// FromConfig translates a file configuration into options. Later options
// override earlier ones, so callers can append flag overrides.
func FromConfig(cfg config.Config) []Option {
	opts := []Option{
		WithElementIDs(cfg.PanelID, cfg.TriggerID),
		WithVisibleClass(cfg.VisibleClass),
		WithAttributes(cfg.DataAttribute, cfg.BindingAttribute),
		WithAllowMissingConfig(cfg.AllowMissingConfig),
		WithAssets(cfg.Assets.Link, cfg.Assets.Prefix),
	}
	if cfg.Scaffold.Enabled {
		opts = append(opts, WithScaffold(strings.TrimSpace(cfg.Scaffold.Label), cfg.Scaffold.Icon))
	}
	return opts
}
