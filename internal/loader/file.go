package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

func loadFile(ctx context.Context, path string, limit int64) ([]byte, error) {
	if path == "" {
		return nil, errors.New("page loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	if err := checkSize(data, limit); err != nil {
		return nil, err
	}
	return data, nil
}
