package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Defaults applied when the corresponding Config fields are unset.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultPreviewChars = 1000

	predictPath      = "/api/predict/"
	errorBodyPreview = 512
)

// Config is the explicit configuration of a Client.
type Config struct {
	// BaseURL is the demo's public URL; the predict endpoint is derived from it.
	BaseURL string
	// Timeout bounds one predict call (default 30s).
	Timeout time.Duration
	// PreviewChars bounds the raw text kept for undecodable replies (default 1000).
	PreviewChars int
}

// Client posts submissions to <base-url>/api/predict/. It holds no mutable
// state; concurrent submissions are independent.
type Client struct {
	endpoint     string
	timeout      time.Duration
	previewChars int
	httpClient   *http.Client
	log          zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger installs a structured logger. The default discards.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New validates cfg and constructs a Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	endpoint, err := Endpoint(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint:     endpoint,
		timeout:      cfg.Timeout,
		previewChars: cfg.PreviewChars,
		log:          zerolog.Nop(),
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.previewChars <= 0 {
		c.previewChars = DefaultPreviewChars
	}
	// Timeout stays 0 on the client: each call carries its deadline in the context.
	c.httpClient = &http.Client{Transport: newTransport(), Timeout: 0}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Endpoint derives the predict URL from a base URL.
func Endpoint(baseURL string) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return "", errors.New("predict: empty base URL")
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("predict: parse base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("predict: base URL must be absolute http(s), got %q", baseURL)
	}
	return base + predictPath, nil
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

// Endpoint returns the predict URL this client posts to.
func (c *Client) Endpoint() string { return c.endpoint }

// Timeout returns the per-call deadline.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Predict performs exactly one POST of the payload built from req. A 2xx reply
// always yields an Outcome, whatever its body; transport failures, timeouts and
// non-2xx replies yield a *RequestError.
func (c *Client) Predict(ctx context.Context, req Request) (Outcome, error) {
	out := Outcome{SubmissionID: uuid.NewString(), Endpoint: c.endpoint}
	body, err := json.Marshal(BuildPayload(req))
	if err != nil {
		return out, fmt.Errorf("encode payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return out, c.fail(out, start, &RequestError{Endpoint: c.endpoint, Err: err})
	}
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("Accept", "application/json")
	hreq.Header.Set("X-Request-ID", out.SubmissionID)

	resp, err := c.httpClient.Do(hreq)
	if err != nil {
		return out, c.fail(out, start, &RequestError{Endpoint: c.endpoint, Err: err})
	}
	defer resp.Body.Close()
	out.Status = resp.StatusCode

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, c.fail(out, start, &RequestError{Endpoint: c.endpoint, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)})
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := preview(bytes.TrimSpace(raw), errorBodyPreview)
		return out, c.fail(out, start, &RequestError{
			Endpoint: c.endpoint,
			Status:   resp.StatusCode,
			Body:     snippet,
			Err:      errors.New(resp.Status),
		})
	}

	out.Result = Interpret(raw, c.previewChars)
	out.Duration = time.Since(start)
	observe(out.Result.Kind(), out.Duration)
	c.log.Info().
		Str("submission_id", out.SubmissionID).
		Str("endpoint", c.endpoint).
		Int("status", out.Status).
		Dur("dur", out.Duration).
		Str("result", out.Result.Kind()).
		Msg("predict done")
	return out, nil
}

func (c *Client) fail(out Outcome, start time.Time, re *RequestError) error {
	d := time.Since(start)
	observe(resultRequestError, d)
	c.log.Warn().
		Str("submission_id", out.SubmissionID).
		Str("endpoint", c.endpoint).
		Int("status", re.Status).
		Dur("dur", d).
		Bool("timeout", re.Timeout()).
		Err(re).
		Msg("predict failed")
	return re
}
