package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"demodash/internal/common/fsutil"
)

// Config holds runtime parameters for the dashboard.
// Zero values mean "unspecified" and are replaced by ApplyDefaults.
type Config struct {
	Addr  string `json:"addr" yaml:"addr" toml:"addr" validate:"required"`
	Title string `json:"title" yaml:"title" toml:"title"`
	// BaseURL is the hosted demo; both the iframe and the predict endpoint derive from it.
	BaseURL string `json:"base_url" yaml:"base_url" toml:"base_url" validate:"required,http_url"`
	// PredictEnabled toggles the predict form. Unset means enabled.
	PredictEnabled        *bool  `json:"predict_enabled,omitempty" yaml:"predict_enabled,omitempty" toml:"predict_enabled,omitempty"`
	PredictTimeoutSeconds int    `json:"predict_timeout_seconds" yaml:"predict_timeout_seconds" toml:"predict_timeout_seconds" validate:"gte=0,lte=600"`
	PreviewChars          int    `json:"preview_chars" yaml:"preview_chars" toml:"preview_chars" validate:"gte=0"`
	DefaultHeight         int    `json:"default_height" yaml:"default_height" toml:"default_height" validate:"omitempty,gte=400,lte=2000"`
	ShowBorder            bool   `json:"show_border" yaml:"show_border" toml:"show_border"`
	MaxBodyBytes          int64  `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes" validate:"gte=0"`
	LogLevel              string `json:"log_level" yaml:"log_level" toml:"log_level" validate:"omitempty,oneof=off error info debug"`

	CORSEnabled        bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
	CORSAllowedMethods []string `json:"cors_allowed_methods" yaml:"cors_allowed_methods" toml:"cors_allowed_methods"`
	CORSAllowedHeaders []string `json:"cors_allowed_headers" yaml:"cors_allowed_headers" toml:"cors_allowed_headers"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml. A leading ~ is expanded.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
