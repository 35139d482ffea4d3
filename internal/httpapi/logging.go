package httpapi

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"demodash/internal/predict"
)

// zlog is an optional structured logger. If unset, falls back to log.Printf.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// LogLevel controls per-request logging behavior.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelInfo
	LevelDebug
)

func parseLevel(s string) LogLevel {
	switch s {
	case "off", "":
		return LevelOff
	case "error":
		return LevelError
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// global default, read once; SetDefaultLogLevel overrides it
var defaultLogLevel = parseLevel(os.Getenv("DEMODASH_LOG_LEVEL"))

// SetDefaultLogLevel sets the level used when a request carries no override.
func SetDefaultLogLevel(s string) { defaultLogLevel = parseLevel(s) }

func requestLogLevel(r *http.Request) LogLevel {
	// Per-request overrides
	if v := r.URL.Query().Get("log"); v != "" {
		if v == "1" {
			return LevelDebug
		}
		return parseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return parseLevel(v)
	}
	return defaultLogLevel
}

// logSubmitStart logs the shape of a submission at debug level. The prompt
// itself is never logged.
func logSubmitStart(r *http.Request, in predict.RawInputs) {
	if requestLogLevel(r) < LevelDebug {
		return
	}
	if zlog != nil {
		z := zlog.Debug().Str("path", r.URL.Path).Int("prompt_len", len(in.Prompt)).Bool("file", in.File != nil)
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			z = z.Str("request_id", rid)
		}
		z.Msg("predict start")
		return
	}
	log.Printf("predict start path=%s prompt_len=%d file=%t", r.URL.Path, len(in.Prompt), in.File != nil)
}

// logSubmitEnd logs the end of a submission at info level, or at error level
// when it failed.
func logSubmitEnd(r *http.Request, status int, start time.Time, out predict.Outcome, err error) {
	lvl := requestLogLevel(r)
	if lvl < LevelInfo && (err == nil || lvl < LevelError) {
		return
	}
	dur := time.Since(start)
	kind := ""
	if out.Result != nil {
		kind = out.Result.Kind()
	}
	if zlog != nil {
		z := zlog.Info()
		if err != nil {
			z = zlog.Error()
		}
		z = z.Str("path", r.URL.Path).Int("status", status).Dur("dur", dur)
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			z = z.Str("request_id", rid)
		}
		if out.SubmissionID != "" {
			z = z.Str("submission_id", out.SubmissionID)
		}
		if kind != "" {
			z = z.Str("result", kind)
		}
		z.Err(err).Msg("predict end")
		return
	}
	log.Printf("predict end path=%s status=%d dur=%s result=%s err=%v", r.URL.Path, status, dur, kind, err)
}
