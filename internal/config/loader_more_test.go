package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoad_NonexistentFile(t *testing.T) {
	if _, err := Load("/definitely/not/a/real/file-12345.yaml"); err == nil {
		t.Fatalf("expected error for nonexistent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.yaml", "addr: :8080\n: broken\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected YAML unmarshal error")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.json", `{ "addr": ":8080", "base_url": }`)
	if _, err := Load(p); err == nil {
		t.Fatalf("expected JSON unmarshal error")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "bad.toml", "addr=:8080\nbase_url\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected TOML unmarshal error")
	}
}

func TestLoad_TildePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" { t.Setenv("USERPROFILE", home) }
	writeTempFile(t, home, "demodash.toml", "base_url = \"https://toml.example/\"\npredict_enabled = false\npreview_chars = 64\n")
	cfg, err := Load("~/demodash.toml")
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.BaseURL != "https://toml.example/" || cfg.Predict() || cfg.PreviewChars != 64 { t.Fatalf("unexpected cfg: %+v", cfg) }
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	p := writeTempFile(t, t.TempDir(), "demodash.ini", "addr=:8080\n")
	if _, err := Load(p); err == nil { t.Fatalf("expected error for .ini") }
	if _, err := Load(""); err == nil { t.Fatalf("expected error for empty path") }
	if _, err := Load(filepath.Join(t.TempDir(), "x.yaml")); err == nil { t.Fatalf("expected error for missing file") }
}
