package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goliatone/go-cmsfields/pkg/fieldset"
	"github.com/goliatone/go-cmsfields/pkg/orchestrator"
	"github.com/goliatone/go-cmsfields/pkg/source"
)

func runOpenAPI(ctx context.Context, a *app, args []string) error {
	fs, common := a.newFlagSet("openapi")
	schema := fs.String("schema", "", "component schema name")
	page := fs.String("page", "", "page whose x-data is replaced (prints the attribute if empty)")
	inPlace := fs.Bool("w", false, "write the page in place")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || *schema == "" {
		return errors.New("openapi: usage: openapi -schema Name [-page page.html [-w]] document")
	}
	if err := a.setup(common); err != nil {
		return err
	}

	raw, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	set, err := fieldset.FromOpenAPI(ctx, raw, *schema)
	if err != nil {
		return err
	}
	a.logger.WithField("schema", *schema).WithField("fields", set.Len()).Debug("seeded fields")

	if *page == "" {
		_, err := fmt.Fprintln(a.stdout, set.Attribute())
		return err
	}

	src, err := parseSource(*page)
	if err != nil {
		return err
	}
	out, err := a.orchestrator().Rewrite(ctx, orchestrator.Request{Source: src, Fields: &set})
	if err != nil {
		return err
	}
	target := ""
	if *inPlace {
		if src.Kind() != source.KindFile {
			return errors.New("openapi: -w requires a local page file")
		}
		target = src.Location()
	}
	return a.writeOutput(target, out)
}
