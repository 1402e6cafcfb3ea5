package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-cmsfields/pkg/source"
)

// Loader implements source.Loader over files, an fs.FS, or HTTP.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	maxBytes  int64
}

var _ source.Loader = (*Loader)(nil)

// New constructs a Loader from resolved options.
func New(options source.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTP:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		maxBytes:  options.MaxBytes,
	}
}

// Load fetches the page behind src.
func (l *Loader) Load(ctx context.Context, src source.Source) (source.Page, error) {
	if src == nil {
		return source.Page{}, errors.New("page loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case source.KindFile:
		data, err = loadFile(ctx, src.Location(), l.maxBytes)
	case source.KindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location(), l.maxBytes)
	case source.KindURL:
		if !l.allowHTTP {
			return source.Page{}, errors.New("page loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout, l.maxBytes)
	default:
		err = fmt.Errorf("page loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return source.Page{}, err
	}

	return source.NewPage(src, data)
}

func checkSize(data []byte, limit int64) error {
	if limit > 0 && int64(len(data)) > limit {
		return fmt.Errorf("page loader: page exceeds %d bytes", limit)
	}
	return nil
}
