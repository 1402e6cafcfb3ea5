package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-cmsfields/internal/loader"
	"github.com/goliatone/go-cmsfields/pkg/config"
	"github.com/goliatone/go-cmsfields/pkg/orchestrator"
	"github.com/goliatone/go-cmsfields/pkg/prompt"
	"github.com/goliatone/go-cmsfields/pkg/source"
)

const httpTimeout = 10 * time.Second

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, app *app, args []string) error
}

var commands = []command{
	{name: "inject", summary: "generate CMS fields into a page", run: runInject},
	{name: "inspect", summary: "report fields and panel elements of pages", run: runInspect},
	{name: "edit", summary: "edit a page's x-data values interactively", run: runEdit},
	{name: "serve", summary: "serve pages with live CMS fields", run: runServe},
	{name: "openapi", summary: "seed x-data from an OpenAPI component schema", run: runOpenAPI},
}

// app carries the process dependencies shared by subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	driver prompt.PromptDriver
	logger *logrus.Logger
	cfg    config.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{stdout: os.Stdout, stderr: os.Stderr}
	if err := a.run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "cmsfields: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return flag.ErrHelp
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(ctx, a, args[1:])
		}
	}
	a.usage()
	return fmt.Errorf("unknown command %q", args[0])
}

func (a *app) usage() {
	fmt.Fprintf(a.stderr, "Usage: %s <command> [flags] [args]\n\nCommands:\n", filepath.Base(os.Args[0]))
	for _, cmd := range commands {
		fmt.Fprintf(a.stderr, "  %-8s %s\n", cmd.name, cmd.summary)
	}
}

// commonFlags are registered on every subcommand.
type commonFlags struct {
	configPath string
	logLevel   string
}

func (a *app) newFlagSet(name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	common := &commonFlags{}
	fs.StringVar(&common.configPath, "config", "", "configuration file (JSON or YAML)")
	fs.StringVar(&common.logLevel, "log-level", "", "log level override")
	return fs, common
}

// setup loads configuration and the logger after flags are parsed.
func (a *app) setup(common *commonFlags) error {
	cfg, err := config.Load(common.configPath)
	if err != nil {
		return err
	}
	if common.logLevel != "" {
		cfg.Log.Level = common.logLevel
	}
	logger, err := cfg.NewLogger(a.stderr)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) orchestrator(extra ...orchestrator.Option) *orchestrator.Orchestrator {
	opts := orchestrator.FromConfig(a.cfg)
	opts = append(opts,
		orchestrator.WithLogger(a.logger),
		orchestrator.WithLoader(loader.New(source.NewLoaderOptions(source.WithHTTP(httpTimeout)))),
	)
	return orchestrator.New(append(opts, extra...)...)
}

func parseSource(raw string) (source.Source, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil, errors.New("page path is required")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return source.FromURL(path)
	}
	return source.FromFile(path), nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func (a *app) writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := a.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	a.logger.WithField("path", path).Info("page written")
	return nil
}
