package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"demodash/internal/common/fsutil"
	"demodash/internal/config"
)

// envFiles are loaded in order before flags are parsed; variables already set
// in the process environment win.
var envFiles = []string{".env", "demodash.env", "~/.config/demodash.env", "/etc/demodash.env"}

type options struct {
	configPath string
	logPretty  bool
	embedOnly  bool

	addr           string
	baseURL        string
	title          string
	logLevel       string
	predictTimeout int
	previewChars   int
	defaultHeight  int
	showBorder     bool
	maxBodyBytes   int64
	corsEnabled    bool
	corsOrigins    string
	corsMethods    string
	corsHeaders    string
}

func newRootCmd() *cobra.Command { return newRootCmdWith(&options{}) }

// newRootCmdWith builds the command tree with flags bound to opts.
func newRootCmdWith(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "demodash",
		Short:         "Dashboard that embeds a hosted demo and forwards prompts to its predict endpoint",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, newLogger(cfg.LogLevel, opts.logPretty))
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (.yaml, .yml, .json or .toml)")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", config.DefaultBaseURL, "Base URL of the hosted demo")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "Log level: off|error|info|debug")
	root.PersistentFlags().BoolVar(&opts.logPretty, "log-pretty", false, "Human readable console logs")
	root.PersistentFlags().IntVar(&opts.predictTimeout, "predict-timeout", config.DefaultPredictTimeoutSeconds, "Predict call timeout in seconds")
	root.PersistentFlags().IntVar(&opts.previewChars, "preview-chars", config.DefaultPreviewChars, "Characters of a non-JSON reply to show")
	root.PersistentFlags().IntVar(&opts.defaultHeight, "height", config.DefaultHeight, "Default iframe height in px")
	root.PersistentFlags().BoolVar(&opts.showBorder, "border", false, "Show the iframe border by default")

	f := root.Flags()
	f.StringVar(&opts.addr, "addr", config.DefaultAddr, "HTTP listen address, e.g. :8080")
	f.StringVar(&opts.title, "title", config.DefaultTitle, "Page title")
	f.BoolVar(&opts.embedOnly, "embed-only", false, "Only embed the demo, hide the predict form")
	f.Int64Var(&opts.maxBodyBytes, "max-body-bytes", config.DefaultMaxBodyBytes, "Maximum submission body size in bytes")
	f.BoolVar(&opts.corsEnabled, "cors", false, "Enable CORS for the JSON API")
	f.StringVar(&opts.corsOrigins, "cors-origins", "*", "Comma-separated allowed origins")
	f.StringVar(&opts.corsMethods, "cors-methods", "GET,POST,OPTIONS", "Comma-separated allowed methods")
	f.StringVar(&opts.corsHeaders, "cors-headers", "Content-Type", "Comma-separated allowed headers")

	root.AddCommand(newEmbedCmd(opts), newPredictCmd(opts))
	return root
}

// resolveConfig layers defaults < config file < environment < explicit flags.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	loadEnvFiles()
	var cfg config.Config
	if opts.configPath != "" {
		c, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = c
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("addr") {
		cfg.Addr = opts.addr
	}
	if changed("base-url") {
		cfg.BaseURL = opts.baseURL
	}
	if changed("title") {
		cfg.Title = opts.title
	}
	if changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if changed("predict-timeout") {
		cfg.PredictTimeoutSeconds = opts.predictTimeout
	}
	if changed("preview-chars") {
		cfg.PreviewChars = opts.previewChars
	}
	if changed("height") {
		cfg.DefaultHeight = opts.defaultHeight
	}
	if changed("border") {
		cfg.ShowBorder = opts.showBorder
	}
	if changed("max-body-bytes") {
		cfg.MaxBodyBytes = opts.maxBodyBytes
	}
	if changed("embed-only") {
		on := !opts.embedOnly
		cfg.PredictEnabled = &on
	}
	if changed("cors") {
		cfg.CORSEnabled = opts.corsEnabled
	}
	if changed("cors-origins") || len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = splitCSV(opts.corsOrigins)
	}
	if changed("cors-methods") || len(cfg.CORSAllowedMethods) == 0 {
		cfg.CORSAllowedMethods = splitCSV(opts.corsMethods)
	}
	if changed("cors-headers") || len(cfg.CORSAllowedHeaders) == 0 {
		cfg.CORSAllowedHeaders = splitCSV(opts.corsHeaders)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadEnvFiles() {
	if files := fsutil.ExistingFiles(envFiles...); len(files) > 0 {
		_ = godotenv.Load(files...)
	}
}

// newLogger maps the dashboard log levels onto zerolog.
func newLogger(level string, pretty bool) zerolog.Logger {
	var l zerolog.Logger
	if pretty {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	} else {
		l = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	switch level {
	case "off":
		return l.Level(zerolog.Disabled)
	case "error":
		return l.Level(zerolog.ErrorLevel)
	case "debug":
		return l.Level(zerolog.DebugLevel)
	default:
		return l.Level(zerolog.InfoLevel)
	}
}

// splitCSV splits a comma-separated list, trimming blanks and dropping empties.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
