package predict

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"unicode/utf8"
)

// Result kinds, also used as metric labels.
const (
	KindRecognized   = "recognized"
	KindUnrecognized = "unrecognized"
	KindUndecodable  = "undecodable"
)

// Result is the interpreted predict response. It is one of Recognized,
// Unrecognized or Undecodable, decided once by Interpret.
type Result interface {
	Kind() string
	isResult()
}

// Recognized is a JSON object whose "data" member is an array.
type Recognized struct {
	// Primary is data[0]; only meaningful when HasPrimary is set.
	Primary    any
	HasPrimary bool
	Body       map[string]any
}

// Unrecognized is valid JSON of any other shape.
type Unrecognized struct {
	Body any
}

// Undecodable is a body that is not JSON.
type Undecodable struct {
	Preview   string
	Truncated bool
	Err       error
}

func (Recognized) Kind() string   { return KindRecognized }
func (Unrecognized) Kind() string { return KindUnrecognized }
func (Undecodable) Kind() string  { return KindUndecodable }

func (Recognized) isResult()   {}
func (Unrecognized) isResult() {}
func (Undecodable) isResult()  {}

// Notice is the parse-failure message shown with the preview.
func (u Undecodable) Notice() string {
	if u.Err == nil {
		return "Response was not valid JSON."
	}
	return "Response was not valid JSON: " + u.Err.Error()
}

// Interpret decodes body and classifies its shape. previewChars bounds the raw
// text kept when the body does not decode; <= 0 keeps everything.
func Interpret(body []byte, previewChars int) Result {
	var decoded any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	err := dec.Decode(&decoded)
	if err == nil {
		if _, terr := dec.Token(); terr != io.EOF {
			err = errors.New("unexpected data after top-level value")
		}
	}
	if err != nil {
		p, truncated := preview(body, previewChars)
		return Undecodable{Preview: p, Truncated: truncated, Err: err}
	}
	if obj, ok := decoded.(map[string]any); ok {
		if data, ok := obj["data"].([]any); ok {
			r := Recognized{Body: obj, HasPrimary: len(data) > 0}
			if r.HasPrimary {
				r.Primary = data[0]
			}
			return r
		}
	}
	return Unrecognized{Body: decoded}
}

func preview(body []byte, n int) (string, bool) {
	s := string(body)
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s, false
	}
	i := 0
	for j := range s {
		if i == n {
			return s[:j], true
		}
		i++
	}
	return s, false
}

// FormatValue renders a decoded JSON value for display: strings verbatim,
// everything else as compact JSON.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// FormatJSON renders a decoded JSON value indented for inspection.
func FormatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}
