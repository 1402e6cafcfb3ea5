package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-cmsfields/pkg/dom"
	"github.com/goliatone/go-cmsfields/pkg/prompt"
)

const page = `<!DOCTYPE html>
<html x-data='{"title":"Hello","views":3}'>
<head><title>Page</title></head>
<body>
<button id="toggle_plenti_cms">Edit</button>
<aside id="plenti_cms"></aside>
</body>
</html>`

const document = `{
  "openapi": "3.0.3",
  "info": {"title": "cms", "version": "1.0.0"},
  "paths": {},
  "components": {"schemas": {"Post": {"type": "object", "properties": {
    "title": {"type": "string", "default": "Untitled"},
    "views": {"type": "integer"}
  }}}}
}`

type scriptedDriver struct {
	answers map[string]string
	confirm bool
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	answer, ok := d.answers[cfg.Message]
	if !ok {
		return cfg.Default, nil
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return d.confirm, nil
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }

func newTestApp(driver prompt.PromptDriver) (*app, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &app{stdout: &stdout, stderr: &stderr, driver: driver}, &stdout, &stderr
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func readAttr(t *testing.T, markup string) string {
	t.Helper()
	doc, err := dom.ParseString(markup)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	raw, _ := dom.Attr(dom.Root(doc), "x-data")
	return raw
}

func TestRun_UnknownCommand(t *testing.T) {
	a, _, stderr := newTestApp(nil)
	if err := a.run(context.Background(), []string{"publish"}); err == nil {
		t.Fatalf("expected error for unknown command")
	}
	if !strings.Contains(stderr.String(), "inject") {
		t.Fatalf("usage should list commands, got %q", stderr.String())
	}
}

func TestInject_Stdout(t *testing.T) {
	path := writeFile(t, "index.html", page)
	a, stdout, _ := newTestApp(nil)

	if err := a.run(context.Background(), []string{"inject", "-visible", path}); err != nil {
		t.Fatalf("inject: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{
		`<input type="number" id="views" name="views" placeholder="views" x-model.number="views"/>`,
		`class="menu-visible"`,
		`/runtime/cms.js`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q\n%s", want, out)
		}
	}
}

func TestInject_InPlaceWithoutAssets(t *testing.T) {
	path := writeFile(t, "index.html", page)
	a, stdout, _ := newTestApp(nil)

	if err := a.run(context.Background(), []string{"inject", "-w", "-no-assets", path}); err != nil {
		t.Fatalf("inject: %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("in-place inject should not print the page")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `<label for="title">title</label>`) || strings.Contains(string(data), "cms.js") {
		t.Fatalf("unexpected page\n%s", data)
	}
}

func TestInspect(t *testing.T) {
	ready := writeFile(t, "ready.html", page)
	bare := writeFile(t, "bare.html", `<html x-data='{"a":1}'><body></body></html>`)

	a, stdout, _ := newTestApp(nil)
	if err := a.run(context.Background(), []string{"inspect", "-fields", ready}); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{"PAGE", "ready.html", "ok", "views (number) = 3", "title (text) = Hello"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected inspect output to contain %q\n%s", want, out)
		}
	}

	a, stdout, _ = newTestApp(nil)
	err := a.run(context.Background(), []string{"inspect", ready, bare})
	if err == nil || !strings.Contains(err.Error(), "1 of 2") {
		t.Fatalf("expected one failing page, got %v", err)
	}
	if !strings.Contains(stdout.String(), "missing-element") {
		t.Fatalf("expected missing-element status\n%s", stdout.String())
	}
}

func TestEdit_WritesBack(t *testing.T) {
	path := writeFile(t, "index.html", page)
	driver := &scriptedDriver{answers: map[string]string{"title": "Bonjour", "views": "7"}, confirm: true}
	a, _, _ := newTestApp(driver)

	if err := a.run(context.Background(), []string{"edit", path}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := readAttr(t, string(data)); got != `{"title":"Bonjour","views":7}` {
		t.Fatalf("x-data = %q", got)
	}
	if strings.Contains(string(data), `<label`) {
		t.Fatalf("edit must not inject fields into the page")
	}
}

func TestEdit_Declined(t *testing.T) {
	path := writeFile(t, "index.html", page)
	driver := &scriptedDriver{answers: map[string]string{"title": "Bonjour"}}
	a, _, _ := newTestApp(driver)

	if err := a.run(context.Background(), []string{"edit", path}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != page {
		t.Fatalf("declined edit should leave the page untouched")
	}
}

func TestOpenAPI(t *testing.T) {
	doc := writeFile(t, "openapi.json", document)

	a, stdout, _ := newTestApp(nil)
	if err := a.run(context.Background(), []string{"openapi", "-schema", "Post", doc}); err != nil {
		t.Fatalf("openapi: %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != `{"title":"Untitled","views":0}` {
		t.Fatalf("attribute = %q", got)
	}

	path := writeFile(t, "index.html", page)
	a, _, _ = newTestApp(nil)
	if err := a.run(context.Background(), []string{"openapi", "-schema", "Post", "-page", path, "-w", doc}); err != nil {
		t.Fatalf("openapi rewrite: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := readAttr(t, string(data)); got != `{"title":"Untitled","views":0}` {
		t.Fatalf("x-data = %q", got)
	}
}

func TestOpenAPI_RequiresSchema(t *testing.T) {
	a, _, _ := newTestApp(nil)
	if err := a.run(context.Background(), []string{"openapi", "doc.json"}); err == nil {
		t.Fatalf("expected usage error")
	}
}
