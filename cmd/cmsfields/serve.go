package main

import (
	"context"
	"errors"
	"os"

	"github.com/goliatone/go-cmsfields/pkg/server"
)

func runServe(ctx context.Context, a *app, args []string) error {
	fs, common := a.newFlagSet("serve")
	addr := fs.String("addr", "", "listen address (config server.addr)")
	root := fs.String("root", "", "page directory (config server.root)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return errors.New("serve: unexpected arguments")
	}
	if err := a.setup(common); err != nil {
		return err
	}

	if *addr != "" {
		a.cfg.Server.Addr = *addr
	}
	if *root != "" {
		a.cfg.Server.Root = *root
	}
	info, err := os.Stat(a.cfg.Server.Root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New("serve: root must be a directory")
	}

	srv, err := server.New(
		server.WithPages(os.DirFS(a.cfg.Server.Root)),
		server.WithPagesRoot(a.cfg.Server.Root),
		server.WithOrchestrator(a.orchestrator()),
		server.WithAssetPrefix(a.cfg.Assets.Prefix),
		server.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}
	return srv.Run(ctx, a.cfg.Server.Addr)
}
