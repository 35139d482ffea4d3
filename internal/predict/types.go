package predict

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Parameter bounds enforced by the dashboard widgets.
const (
	MinNewTokens   = 1
	MaxNewTokens   = 1024
	MinTemperature = 0.01
	MaxTemperature = 2.0
	MinTopP        = 0.01
	MaxTopP        = 1.0
)

// Form defaults.
const (
	DefaultNewTokens   = 256
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
)

// File is an optional upload forwarded with the prompt.
type File struct {
	Name string
	Data []byte
}

// Request is one user submission after coercion.
type Request struct {
	Prompt       string  `json:"prompt"`
	MaxNewTokens int     `json:"max_new_tokens" validate:"gte=1,lte=1024"`
	Temperature  float64 `json:"temperature" validate:"gte=0.01,lte=2"`
	TopP         float64 `json:"top_p" validate:"gte=0.01,lte=1"`
	File         *File   `json:"-"`
}

// FileArg is the wire form of File: {"name": ..., "data": <base64>}.
type FileArg struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// Payload is the JSON body posted to the predict endpoint.
type Payload struct {
	Data []any `json:"data"`
}

// Float encodes with a decimal point even when integral, so 1.0 is sent as
// 1.0 and not 1. The remote side distinguishes ints from floats.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("unsupported float value: %v", v)
	}
	format := byte('f')
	if abs := math.Abs(v); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	b := strconv.AppendFloat(nil, v, format, -1, 64)
	for _, c := range b {
		if c == '.' || c == 'e' || c == 'E' {
			return b, nil
		}
	}
	return append(b, '.', '0'), nil
}

// Outcome describes one completed submission.
type Outcome struct {
	SubmissionID string
	Endpoint     string
	Status       int
	Duration     time.Duration
	Result       Result
}
