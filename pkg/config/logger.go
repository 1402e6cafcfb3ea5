package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus logger writing to out.
func (c Config) NewLogger(out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	level := strings.TrimSpace(c.Log.Level)
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	logger.SetLevel(parsed)

	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return logger, nil
}
