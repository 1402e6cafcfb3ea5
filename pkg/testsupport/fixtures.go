package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/goliatone/go-cmsfields/pkg/dom"
	"github.com/goliatone/go-cmsfields/pkg/source"
)

// LoadPage reads a fixture page using a file source.
func LoadPage(t *testing.T, path string) source.Page {
	t.Helper()

	page, err := LoadPageFromPath(path)
	if err != nil {
		t.Fatalf("load page: %v", err)
	}
	return page
}

// LoadPageFromPath returns a Page without requiring testing.T.
func LoadPageFromPath(path string) (source.Page, error) {
	if path == "" {
		return source.Page{}, errors.New("testsupport: page path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return source.Page{}, fmt.Errorf("testsupport: read page: %w", err)
	}
	page, err := source.NewPage(source.FromFile(path), data)
	if err != nil {
		return source.Page{}, fmt.Errorf("testsupport: new page: %w", err)
	}
	return page, nil
}

// MustParseHTML parses markup into a document tree.
func MustParseHTML(t *testing.T, markup string) *html.Node {
	t.Helper()

	doc, err := dom.ParseString(markup)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// WriteGolden writes arbitrary data as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	WriteMaybeGolden(t, path, append(payload, '\n'))
}

// MustLoadGolden unmarshals a JSON golden file into out.
func MustLoadGolden(t *testing.T, path string, out any) {
	t.Helper()

	if err := json.Unmarshal(MustReadGolden(t, path), out); err != nil {
		t.Fatalf("unmarshal golden %s: %v", path, err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
