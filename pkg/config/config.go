// Package config loads the shared configuration used by the CLI and the
// preview server. Files may be JSON or YAML; unspecified keys keep their
// defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-cmsfields/pkg/panel"
)

type Config struct {
	PanelID            string `json:"panelId" yaml:"panelId"`
	TriggerID          string `json:"triggerId" yaml:"triggerId"`
	VisibleClass       string `json:"visibleClass" yaml:"visibleClass"`
	DataAttribute      string `json:"dataAttribute" yaml:"dataAttribute"`
	BindingAttribute   string `json:"bindingAttribute" yaml:"bindingAttribute"`
	AllowMissingConfig bool   `json:"allowMissingConfig" yaml:"allowMissingConfig"`

	Assets   AssetsConfig   `json:"assets" yaml:"assets"`
	Scaffold ScaffoldConfig `json:"scaffold" yaml:"scaffold"`
	Server   ServerConfig   `json:"server" yaml:"server"`
	Log      LogConfig      `json:"log" yaml:"log"`
}

// AssetsConfig controls linking the runtime script and stylesheet.
type AssetsConfig struct {
	Link   bool   `json:"link" yaml:"link"`
	Prefix string `json:"prefix" yaml:"prefix"`
}

// ScaffoldConfig controls default panel/trigger markup for bare pages.
type ScaffoldConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Label   string `json:"label" yaml:"label"`
	Icon    string `json:"icon" yaml:"icon"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
	Root string `json:"root" yaml:"root"`
}

// LogConfig configures logrus.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PanelID:          panel.DefaultPanelID,
		TriggerID:        panel.DefaultTriggerID,
		VisibleClass:     panel.DefaultVisibleClass,
		DataAttribute:    panel.DefaultDataAttribute,
		BindingAttribute: panel.DefaultBindingAttribute,
		Assets: AssetsConfig{
			Link:   true,
			Prefix: "/runtime/",
		},
		Scaffold: ScaffoldConfig{
			Label: "Edit",
		},
		Server: ServerConfig{
			Addr: ":3000",
			Root: "public",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes JSON or YAML over the defaults and validates the result.
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Default()
		if yamlErr := yaml.Unmarshal(data, &cfg); yamlErr != nil {
			return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// Validate checks required values.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.PanelID) == "" {
		errs = append(errs, errors.New("panelId is required"))
	}
	if strings.TrimSpace(c.TriggerID) == "" {
		errs = append(errs, errors.New("triggerId is required"))
	}
	if c.PanelID != "" && c.PanelID == c.TriggerID {
		errs = append(errs, errors.New("panelId and triggerId must differ"))
	}
	if strings.TrimSpace(c.VisibleClass) == "" || strings.ContainsAny(c.VisibleClass, " \t\n") {
		errs = append(errs, errors.New("visibleClass must be a single class name"))
	}
	if strings.TrimSpace(c.DataAttribute) == "" {
		errs = append(errs, errors.New("dataAttribute is required"))
	}
	if strings.TrimSpace(c.BindingAttribute) == "" {
		errs = append(errs, errors.New("bindingAttribute is required"))
	}
	if c.Assets.Link && !strings.HasSuffix(c.Assets.Prefix, "/") {
		errs = append(errs, errors.New("assets.prefix must end with /"))
	}
	return errors.Join(errs...)
}
