// Package embed builds the iframe that shows the hosted demo inside the
// dashboard, plus the copyable markup and the open-in-new-tab target.
package embed

import (
	"fmt"
	"net/url"
	"strings"
)

// Height slider range, in pixels.
const (
	MinHeight     = 400
	MaxHeight     = 2000
	HeightStep    = 50
	DefaultHeight = 800

	// containerPad is added around the frame so its rounded border is not clipped.
	containerPad = 20
)

const (
	borderOn  = "1px solid #ddd"
	borderOff = "none"
)

// quoteSafe are the bytes kept verbatim in the iframe src besides
// letters, digits and "_.-~".
const quoteSafe = ":/?#[]@!$&'()*+,;=%"

// Frame is one rendering of the embedded demo.
type Frame struct {
	URL    string
	Height int
	Border bool
}

// BorderStyle is the CSS border value.
func (f Frame) BorderStyle() string {
	if f.Border {
		return borderOn
	}
	return borderOff
}

// Src is the percent-quoted URL used as the iframe source.
func (f Frame) Src() string { return QuoteURL(f.URL) }

// Style is the inline CSS of the iframe.
func (f Frame) Style() string {
	return fmt.Sprintf("width:100%%;height:%dpx;border:%s;border-radius:8px;", f.Height, f.BorderStyle())
}

// ContainerHeight is the height reserved around the frame.
func (f Frame) ContainerHeight() int { return f.Height + containerPad }

// HTML is the iframe markup, also shown to the user for copy/paste.
func (f Frame) HTML() string {
	return fmt.Sprintf(`<iframe src="%s" style="%s" allowfullscreen></iframe>`, f.Src(), f.Style())
}

// QuoteURL percent-encodes every byte of s that is not a letter, digit,
// one of "_.-~", or in quoteSafe. Existing escapes are left alone.
func QuoteURL(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || strings.IndexByte(quoteSafe, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_' || c == '.' || c == '-' || c == '~':
		return true
	}
	return false
}

// ClampHeight bounds h to [MinHeight, MaxHeight] and snaps it to the slider step.
func ClampHeight(h int) int {
	if h <= MinHeight {
		return MinHeight
	}
	if h >= MaxHeight {
		return MaxHeight
	}
	steps := (h - MinHeight + HeightStep/2) / HeightStep
	return MinHeight + steps*HeightStep
}

// Presenter renders frames for one fixed demo URL.
type Presenter struct {
	url           string
	defaultHeight int
	defaultBorder bool
}

// NewPresenter validates the demo URL. A zero defaultHeight means DefaultHeight.
func NewPresenter(demoURL string, defaultHeight int, defaultBorder bool) (*Presenter, error) {
	u, err := url.Parse(strings.TrimSpace(demoURL))
	if err != nil {
		return nil, fmt.Errorf("embed: parse demo URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("embed: demo URL must be absolute http(s), got %q", demoURL)
	}
	if defaultHeight == 0 {
		defaultHeight = DefaultHeight
	}
	return &Presenter{
		url:           strings.TrimSpace(demoURL),
		defaultHeight: ClampHeight(defaultHeight),
		defaultBorder: defaultBorder,
	}, nil
}

// URL is the demo URL, also the open-in-new-tab target.
func (p *Presenter) URL() string { return p.url }

// Default returns the frame with the configured defaults.
func (p *Presenter) Default() Frame {
	return Frame{URL: p.url, Height: p.defaultHeight, Border: p.defaultBorder}
}

// Frame returns a frame with the given height (clamped) and border.
// A zero height means the configured default.
func (p *Presenter) Frame(height int, border bool) Frame {
	if height == 0 {
		height = p.defaultHeight
	}
	return Frame{URL: p.url, Height: ClampHeight(height), Border: border}
}
