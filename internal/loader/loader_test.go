package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-cmsfields/pkg/source"
)

func TestLoader_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte("<html></html>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	page, err := New(source.NewLoaderOptions()).Load(context.Background(), source.FromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(page.Raw()) != "<html></html>" {
		t.Fatalf("unexpected payload %q", page.Raw())
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{"pages/a.html": {Data: []byte("<p>a</p>")}}
	l := New(source.NewLoaderOptions(source.WithFileSystem(files)))

	page, err := l.Load(context.Background(), source.FromFS("pages/a.html"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if page.Location() != "pages/a.html" {
		t.Fatalf("unexpected location %q", page.Location())
	}

	if _, err := New(source.NewLoaderOptions()).Load(context.Background(), source.FromFS("pages/a.html")); err == nil {
		t.Fatalf("expected error without filesystem")
	}
}

func TestLoader_HTTPRequiresOptIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	src, err := source.FromURL(srv.URL)
	if err != nil {
		t.Fatalf("url: %v", err)
	}

	_, err = New(source.NewLoaderOptions()).Load(context.Background(), src)
	if err == nil || !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("expected http disabled error, got %v", err)
	}

	page, err := New(source.NewLoaderOptions(source.WithHTTP(time.Second))).Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(page.Raw()) != "<html></html>" {
		t.Fatalf("unexpected payload %q", page.Raw())
	}
}

func TestLoader_MaxBytes(t *testing.T) {
	files := fstest.MapFS{"big.html": {Data: []byte(strings.Repeat("x", 64))}}
	l := New(source.NewLoaderOptions(source.WithFileSystem(files), source.WithMaxBytes(16)))
	if _, err := l.Load(context.Background(), source.FromFS("big.html")); err == nil {
		t.Fatalf("expected size limit error")
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(source.NewLoaderOptions()).Load(ctx, source.FromFile("whatever.html")); err == nil {
		t.Fatalf("expected context error")
	}
}
