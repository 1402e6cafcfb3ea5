package loader

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"
)

func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration, limit int64) ([]byte, error) {
	if client == nil {
		return nil, errors.New("page loader: http client is not configured")
	}
	if url == "" {
		return nil, errors.New("page loader: url is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("page loader: unexpected status " + resp.Status)
	}

	var body io.Reader = resp.Body
	if limit > 0 {
		body = io.LimitReader(resp.Body, limit+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if err := checkSize(data, limit); err != nil {
		return nil, err
	}
	return data, nil
}
