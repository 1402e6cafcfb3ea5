package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-cmsfields/pkg/orchestrator"
	"github.com/goliatone/go-cmsfields/pkg/prompt"
	"github.com/goliatone/go-cmsfields/pkg/source"
)

func runEdit(ctx context.Context, a *app, args []string) error {
	fs, common := a.newFlagSet("edit")
	output := fs.String("o", "", "write the edited page here instead of in place")
	yes := fs.Bool("y", false, "write without confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("edit: exactly one page is required")
	}
	if err := a.setup(common); err != nil {
		return err
	}

	src, err := parseSource(fs.Arg(0))
	if err != nil {
		return err
	}
	target := *output
	if target == "" {
		if src.Kind() != source.KindFile {
			return errors.New("edit: remote pages need -o")
		}
		target = src.Location()
	}

	driver := a.driver
	if driver == nil {
		driver = prompt.NewSurveyDriver()
	}

	orch := a.orchestrator()
	report, err := orch.Inspect(ctx, orchestrator.Request{Source: src})
	if err != nil {
		return err
	}

	edited, err := prompt.Edit(ctx, driver, report.Fields)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			a.logger.Info("edit aborted, page left unchanged")
			return nil
		}
		return err
	}

	if !*yes {
		ok, err := driver.Confirm(ctx, prompt.ConfirmConfig{
			Message: fmt.Sprintf("Write %d fields to %s?", edited.Len(), target),
			Default: true,
		})
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				return nil
			}
			return err
		}
		if !ok {
			return driver.Info(ctx, "Nothing written.")
		}
	}

	out, err := orch.Rewrite(ctx, orchestrator.Request{Source: src, Fields: &edited})
	if err != nil {
		return err
	}
	return a.writeOutput(target, out)
}
