package main

import (
	"context"
	"errors"

	"github.com/goliatone/go-cmsfields/pkg/orchestrator"
	"github.com/goliatone/go-cmsfields/pkg/source"
)

func runInject(ctx context.Context, a *app, args []string) error {
	fs, common := a.newFlagSet("inject")
	output := fs.String("o", "", "output file (stdout if empty)")
	inPlace := fs.Bool("w", false, "write the result back to the page file")
	visible := fs.Bool("visible", false, "render the panel visible")
	scaffold := fs.Bool("scaffold", false, "add default panel and trigger when missing")
	noAssets := fs.Bool("no-assets", false, "do not link the runtime script and stylesheet")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("inject: exactly one page is required")
	}
	if err := a.setup(common); err != nil {
		return err
	}

	src, err := parseSource(fs.Arg(0))
	if err != nil {
		return err
	}

	var extra []orchestrator.Option
	if *scaffold {
		extra = append(extra, orchestrator.WithScaffold(a.cfg.Scaffold.Label, a.cfg.Scaffold.Icon))
	}
	if *noAssets {
		extra = append(extra, orchestrator.WithAssets(false, ""))
	}

	req := orchestrator.Request{Source: src}
	if *visible {
		req.Visible = visible
	}
	result, err := a.orchestrator(extra...).Inject(ctx, req)
	if err != nil {
		return err
	}

	target := *output
	if *inPlace {
		if src.Kind() != source.KindFile {
			return errors.New("inject: -w requires a local page file")
		}
		target = src.Location()
	}
	return a.writeOutput(target, result.HTML)
}
