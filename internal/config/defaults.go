package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when the corresponding Config fields are unset.
const (
	DefaultAddr                  = ":8080"
	DefaultBaseURL               = "https://fde6743ee03d00eada.gradio.live/"
	DefaultTitle                 = "Gradio App Embedded"
	DefaultPredictTimeoutSeconds = 30
	DefaultPreviewChars          = 1000
	DefaultHeight                = 800
	DefaultMaxBodyBytes          = 32 << 20
	DefaultLogLevel              = "info"
)

// Defaults returns a fully populated Config.
func Defaults() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

// ApplyDefaults replaces unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.PredictEnabled == nil {
		on := true
		c.PredictEnabled = &on
	}
	if c.PredictTimeoutSeconds == 0 {
		c.PredictTimeoutSeconds = DefaultPredictTimeoutSeconds
	}
	if c.PreviewChars == 0 {
		c.PreviewChars = DefaultPreviewChars
	}
	if c.DefaultHeight == 0 {
		c.DefaultHeight = DefaultHeight
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Predict reports whether the predict form is enabled.
func (c Config) Predict() bool { return c.PredictEnabled == nil || *c.PredictEnabled }

// PredictTimeout is the per-call deadline for the predict endpoint.
func (c Config) PredictTimeout() time.Duration {
	return time.Duration(c.PredictTimeoutSeconds) * time.Second
}

var validate = validator.New()

// Validate checks field formats and ranges.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config: %s fails %q (value %v)", fe.Field(), fe.Tag(), fe.Value())
	}
	return err
}
