package pongo_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-cmsfields/pkg/render/template/pongo"
)

func newEngine(t *testing.T) *pongo.Engine {
	t.Helper()
	files := fstest.MapFS{
		"hello.tpl":  {Data: []byte(`Hello {{ name|trim }}!`)},
		"global.tpl": {Data: []byte(`{{ site }}:{{ name }}`)},
	}
	engine, err := pongo.New(pongo.WithFS(files), pongo.WithGlobalData(map[string]any{"site": "cms"}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplateWritesToOutputs(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	result, err := engine.RenderTemplate("hello", map[string]any{"name": "  Ada "}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Ada!" {
		t.Fatalf("unexpected result %q", result)
	}
	if buf.String() != result {
		t.Fatalf("writer mismatch %q", buf.String())
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.RenderTemplate("global.tpl", map[string]any{"name": "page"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "cms:page" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_RenderStringWithStruct(t *testing.T) {
	engine := newEngine(t)
	data := struct {
		Count int `json:"count"`
	}{Count: 3}

	result, err := engine.RenderString(`{{ count }} fields`, data)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "3 fields" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestNew_RequiresFS(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected error without fs")
	}
}
