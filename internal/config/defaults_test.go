package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	c := Defaults()
	if c.Addr != DefaultAddr || c.BaseURL != DefaultBaseURL || c.Title != DefaultTitle {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if !c.Predict() { t.Fatalf("predict should default to enabled") }
	if c.PredictTimeout() != 30*time.Second { t.Fatalf("timeout=%s", c.PredictTimeout()) }
	if c.PreviewChars != 1000 || c.DefaultHeight != 800 || c.MaxBodyBytes != 32<<20 || c.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if err := c.Validate(); err != nil { t.Fatalf("defaults should validate: %v", err) }
}

func TestApplyDefaults_KeepsSetValues(t *testing.T) {
	off := false
	c := Config{Addr: ":1", PredictEnabled: &off, PredictTimeoutSeconds: 5, DefaultHeight: 450}
	c.ApplyDefaults()
	if c.Addr != ":1" || c.Predict() || c.PredictTimeoutSeconds != 5 || c.DefaultHeight != 450 {
		t.Fatalf("set values overwritten: %+v", c)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"BaseURL":               func(c *Config) { c.BaseURL = "not a url" },
		"DefaultHeight":         func(c *Config) { c.DefaultHeight = 100 },
		"PredictTimeoutSeconds": func(c *Config) { c.PredictTimeoutSeconds = -1 },
		"LogLevel":              func(c *Config) { c.LogLevel = "verbose" },
	}
	for field, mutate := range cases {
		c := Defaults()
		mutate(&c)
		err := c.Validate()
		if err == nil { t.Fatalf("%s: expected validation error", field) }
		if !strings.Contains(err.Error(), field) { t.Fatalf("%s: error %q does not name the field", field, err) }
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvAddr:           ":9090",
		EnvBaseURL:        " http://127.0.0.1:7860/ ",
		EnvPredictEnabled: "false",
		EnvPredictTimeout: "7",
		EnvLogLevel:       "debug",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }
	c := Defaults()
	if err := c.ApplyEnv(lookup); err != nil { t.Fatalf("apply env: %v", err) }
	if c.Addr != ":9090" || c.BaseURL != "http://127.0.0.1:7860/" || c.Predict() || c.PredictTimeoutSeconds != 7 || c.LogLevel != "debug" {
		t.Fatalf("unexpected cfg: %+v", c)
	}
	if c.Title != DefaultTitle { t.Fatalf("unset env must not clear title: %q", c.Title) }
}

func TestApplyEnv_FrameAndLimits(t *testing.T) {
	env := map[string]string{
		EnvPreviewChars:  "250",
		EnvDefaultHeight: " 1200 ",
		EnvShowBorder:    "true",
		EnvMaxBodyBytes:  "1048576",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }
	c := Defaults()
	if err := c.ApplyEnv(lookup); err != nil { t.Fatalf("apply env: %v", err) }
	if c.PreviewChars != 250 || c.DefaultHeight != 1200 || !c.ShowBorder || c.MaxBodyBytes != 1<<20 {
		t.Fatalf("unexpected cfg: %+v", c)
	}
	if err := c.Validate(); err != nil { t.Fatalf("validate: %v", err) }
}

func TestApplyEnv_BadValues(t *testing.T) {
	for key, val := range map[string]string{EnvPredictEnabled: "maybe", EnvPredictTimeout: "soon", EnvPreviewChars: "lots", EnvDefaultHeight: "tall", EnvShowBorder: "perhaps", EnvMaxBodyBytes: "1e9"} {
		lookup := func(k string) (string, bool) {
			if k == key { return val, true }
			return "", false
		}
		c := Defaults()
		if err := c.ApplyEnv(lookup); err == nil { t.Fatalf("%s=%s: expected error", key, val) }
	}
}
