package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment variables read by ApplyEnv.
const (
	EnvAddr           = "DEMODASH_ADDR"
	EnvBaseURL        = "DEMODASH_BASE_URL"
	EnvTitle          = "DEMODASH_TITLE"
	EnvPredictEnabled = "DEMODASH_PREDICT_ENABLED"
	EnvPredictTimeout = "DEMODASH_PREDICT_TIMEOUT_SECONDS"
	EnvLogLevel       = "DEMODASH_LOG_LEVEL"
	EnvPreviewChars   = "DEMODASH_PREVIEW_CHARS"
	EnvDefaultHeight  = "DEMODASH_DEFAULT_HEIGHT"
	EnvShowBorder     = "DEMODASH_SHOW_BORDER"
	EnvMaxBodyBytes   = "DEMODASH_MAX_BODY_BYTES"
)

// ApplyEnv overlays values found through lookup (normally os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str(EnvAddr, &c.Addr)
	str(EnvBaseURL, &c.BaseURL)
	str(EnvTitle, &c.Title)
	str(EnvLogLevel, &c.LogLevel)

	if v, ok := lookup(EnvPredictEnabled); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPredictEnabled, err)
		}
		c.PredictEnabled = &b
	}
	if v, ok := lookup(EnvShowBorder); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvShowBorder, err)
		}
		c.ShowBorder = b
	}
	for _, f := range []struct {
		key string
		dst *int
	}{
		{EnvPredictTimeout, &c.PredictTimeoutSeconds},
		{EnvPreviewChars, &c.PreviewChars},
		{EnvDefaultHeight, &c.DefaultHeight},
	} {
		if v, ok := lookup(f.key); ok && v != "" {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s: %w", f.key, err)
			}
			*f.dst = n
		}
	}
	if v, ok := lookup(EnvMaxBodyBytes); ok && v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxBodyBytes, err)
		}
		c.MaxBodyBytes = n
	}
	return nil
}
