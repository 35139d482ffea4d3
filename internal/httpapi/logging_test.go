package httpapi

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":      LevelOff,
		"off":   LevelOff,
		"error": LevelError,
		"info":  LevelInfo,
		"debug": LevelDebug,
		"weird": LevelInfo, // default
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestLogLevel_Overrides(t *testing.T) {
	// query param ?log=debug
	r := httptest.NewRequest("GET", "/x?log=debug", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("query override failed: %v", got)
	}
	// shorthand ?log=1
	r = httptest.NewRequest("GET", "/x?log=1", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("shorthand override failed: %v", got)
	}
	// header X-Log-Level
	r = httptest.NewRequest("GET", "/x", nil)
	r.Header.Set("X-Log-Level", "error")
	if got := requestLogLevel(r); got != LevelError {
		t.Fatalf("header override failed: %v", got)
	}
}

func TestSetDefaultLogLevel(t *testing.T) {
	orig := defaultLogLevel
	defer func() { defaultLogLevel = orig }()
	SetDefaultLogLevel("error")
	r := httptest.NewRequest("GET", "/x", nil)
	if got := requestLogLevel(r); got != LevelError {
		t.Fatalf("default level not applied: %v", got)
	}
}

func TestPredictLogging_Structured(t *testing.T) {
	var buf bytes.Buffer
	orig := zlog
	defer func() { zlog = orig }()
	SetLogger(zerolog.New(&buf))

	svc := &mockService{out: recognized("ok")}
	req := httptest.NewRequest("POST", "/api/predict?log=debug", strings.NewReader(`{"prompt":"secret words","max_new_tokens":1,"temperature":1,"top_p":1}`))
	req.Header.Set("Content-Type", "application/json")
	NewMux(svc).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, `"message":"predict start"`) || !strings.Contains(out, `"message":"predict end"`) {
		t.Fatalf("missing predict log lines: %q", out)
	}
	if !strings.Contains(out, `"submission_id":"0f8fad5b-d9cb-469f-a165-70867728950e"`) {
		t.Fatalf("missing submission id: %q", out)
	}
	if strings.Contains(out, "secret words") {
		t.Fatalf("prompt text must not be logged: %q", out)
	}
}

func TestPredictLogging_OffIsSilent(t *testing.T) {
	var buf bytes.Buffer
	orig := zlog
	defer func() { zlog = orig }()
	SetLogger(zerolog.New(&buf))

	req := httptest.NewRequest("POST", "/api/predict?log=off", strings.NewReader(`{"prompt":"p","max_new_tokens":1,"temperature":1,"top_p":1}`))
	req.Header.Set("Content-Type", "application/json")
	NewMux(&mockService{err: errors.New("boom")}).ServeHTTP(httptest.NewRecorder(), req)
	if buf.Len() != 0 {
		t.Fatalf("expected no output at level off, got %q", buf.String())
	}
}
