package cmsfields

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-cmsfields/internal/loader"
	"github.com/goliatone/go-cmsfields/pkg/fieldset"
	"github.com/goliatone/go-cmsfields/pkg/orchestrator"
	"github.com/goliatone/go-cmsfields/pkg/render/templates"
	"github.com/goliatone/go-cmsfields/pkg/source"
)

// FieldSet aliases fieldset.FieldSet for callers that only need the root
// package.
type FieldSet = fieldset.FieldSet

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewLoader constructs a page loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...source.LoaderOption) source.Loader {
	return loader.New(source.NewLoaderOptions(options...))
}

// ParseFields decodes a configuration object in JSON or object-literal form.
func ParseFields(raw string) (FieldSet, error) {
	return fieldset.Parse(raw)
}

// InjectHTML generates the CMS fields into an in-memory page and returns the
// rendered document. It is the simplest entry point for callers that already
// hold the markup.
func InjectHTML(ctx context.Context, markup []byte, options ...orchestrator.Option) ([]byte, error) {
	page, err := source.NewPage(source.FromFile("inline.html"), markup)
	if err != nil {
		return nil, err
	}
	result, err := orchestrator.New(options...).Inject(ctx, orchestrator.Request{Page: &page})
	if err != nil {
		return nil, err
	}
	return result.HTML, nil
}

// InjectFile loads the page at src and injects the CMS fields.
func InjectFile(ctx context.Context, src source.Source, options ...orchestrator.Option) (Result, error) {
	return orchestrator.New(options...).Inject(ctx, orchestrator.Request{Source: src})
}

// EmbeddedTemplates exposes the built-in scaffold and index templates so
// callers can reuse or extend them.
func EmbeddedTemplates() fs.FS {
	return templates.FS()
}
