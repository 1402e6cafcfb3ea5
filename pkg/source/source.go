// Package source describes where a page comes from and the loader contract
// used to fetch it. Implementations live under internal/loader.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"
	"time"
)

// Source identifies a page's origin.
type Source interface {
	Kind() Kind
	Location() string
}

// Kind enumerates the loader modalities.
type Kind string

const (
	KindFile Kind = "file"
	KindFS   Kind = "fs"
	KindURL  Kind = "url"
)

// Page wraps the raw markup and its origin.
type Page struct {
	source Source
	raw    []byte
}

// NewPage constructs a Page, copying raw.
func NewPage(src Source, raw []byte) (Page, error) {
	if src == nil {
		return Page{}, errors.New("source: source is required")
	}
	return Page{source: src, raw: append([]byte(nil), raw...)}, nil
}

func (p Page) Source() Source {
	return p.source
}

func (p Page) Raw() []byte {
	return p.raw
}

// Location is a convenience accessor for the source location.
func (p Page) Location() string {
	if p.source == nil {
		return ""
	}
	return p.source.Location()
}

// Loader fetches pages.
type Loader interface {
	Load(ctx context.Context, src Source) (Page, error)
}

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() Kind       { return KindFile }

// FromFile points at a file on disk.
func FromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() Kind       { return KindFS }

// FromFS names an entry inside the loader's fs.FS.
func FromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() Kind       { return KindURL }

// FromURL validates raw and returns a URL source.
func FromURL(raw string) (Source, error) {
	if raw == "" {
		return nil, errors.New("source: empty URL")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("source: invalid URL %q: %w", raw, err)
	}
	return urlSource{raw: raw}, nil
}

// LoaderOptions configures a Loader. HTTP stays disabled unless a client is
// injected or AllowHTTP is set.
type LoaderOptions struct {
	FileSystem     fs.FS
	HTTPClient     *http.Client
	AllowHTTP      bool
	RequestTimeout time.Duration
	MaxBytes       int64
}

// LoaderOption mutates LoaderOptions.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects the fs.FS used by FromFS sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a client for URL sources.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTP enables URL sources with the default client and a timeout.
func WithHTTP(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTP = true
		opts.RequestTimeout = timeout
	}
}

// WithMaxBytes caps the page size read from any source.
func WithMaxBytes(limit int64) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.MaxBytes = limit
	}
}

// NewLoaderOptions applies options over the defaults.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{MaxBytes: 8 << 20}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
