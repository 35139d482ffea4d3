// Package dashboard composes the embed presenter and the predict client into
// the service the HTTP layer talks to. It keeps no state between submissions.
package dashboard

import (
	"context"
	"errors"
	"net/http"
	"time"

	"demodash/internal/config"
	"demodash/internal/embed"
	"demodash/internal/predict"
)

// Config encapsulates the tunables for Dashboard construction.
type Config struct {
	Title          string
	BaseURL        string
	DefaultHeight  int
	ShowBorder     bool
	PredictEnabled bool
	PredictTimeout time.Duration
	PreviewChars   int
}

// FromConfig maps the file/env/flag configuration onto a dashboard Config.
func FromConfig(c config.Config) Config {
	return Config{
		Title:          c.Title,
		BaseURL:        c.BaseURL,
		DefaultHeight:  c.DefaultHeight,
		ShowBorder:     c.ShowBorder,
		PredictEnabled: c.Predict(),
		PredictTimeout: c.PredictTimeout(),
		PreviewChars:   c.PreviewChars,
	}
}

// Predictor performs one predict call. *predict.Client implements it.
type Predictor interface {
	Predict(ctx context.Context, req predict.Request) (predict.Outcome, error)
}

// Dashboard serves one fixed demo.
type Dashboard struct {
	title     string
	presenter *embed.Presenter
	predictor Predictor
}

// New builds the presenter and, when enabled, the predict client.
func New(cfg Config, opts ...predict.Option) (*Dashboard, error) {
	p, err := embed.NewPresenter(cfg.BaseURL, cfg.DefaultHeight, cfg.ShowBorder)
	if err != nil {
		return nil, err
	}
	d := &Dashboard{title: cfg.Title, presenter: p}
	if d.title == "" {
		d.title = config.DefaultTitle
	}
	if cfg.PredictEnabled {
		c, err := predict.New(predict.Config{
			BaseURL:      cfg.BaseURL,
			Timeout:      cfg.PredictTimeout,
			PreviewChars: cfg.PreviewChars,
		}, opts...)
		if err != nil {
			return nil, err
		}
		d.predictor = c
	}
	return d, nil
}

// NewWithPredictor is New with a caller-supplied predictor; nil disables predict.
func NewWithPredictor(cfg Config, pr Predictor) (*Dashboard, error) {
	cfg.PredictEnabled = false
	d, err := New(cfg)
	if err != nil {
		return nil, err
	}
	d.predictor = pr
	return d, nil
}

func (d *Dashboard) Title() string   { return d.title }
func (d *Dashboard) DemoURL() string { return d.presenter.URL() }

// DefaultFrame returns the frame with configured height and border.
func (d *Dashboard) DefaultFrame() embed.Frame { return d.presenter.Default() }

// Frame returns a frame for the requested height (clamped) and border.
func (d *Dashboard) Frame(height int, border bool) embed.Frame {
	return d.presenter.Frame(height, border)
}

// PredictEnabled reports whether the predict form is served.
func (d *Dashboard) PredictEnabled() bool { return d.predictor != nil }

// Predict coerces and bounds-checks the raw inputs and performs one call.
// Coercion and bounds errors are returned before anything is sent.
func (d *Dashboard) Predict(ctx context.Context, in predict.RawInputs) (predict.Outcome, error) {
	if d.predictor == nil {
		return predict.Outcome{}, errPredictDisabled{}
	}
	req, err := predict.Coerce(in)
	if err != nil {
		return predict.Outcome{}, err
	}
	if err := predict.Validate(req); err != nil {
		return predict.Outcome{}, err
	}
	return d.predictor.Predict(ctx, req)
}

// errPredictDisabled is returned when the embed-only variant receives a submission.
type errPredictDisabled struct{}

func (errPredictDisabled) Error() string   { return "predict is disabled" }
func (errPredictDisabled) StatusCode() int { return http.StatusNotFound }

// IsPredictDisabled reports whether err signals the embed-only variant.
func IsPredictDisabled(err error) bool {
	var e errPredictDisabled
	return errors.As(err, &e)
}
