package predict

import (
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// RawInputs holds the form fields as the browser sent them.
type RawInputs struct {
	Prompt       string
	MaxNewTokens string
	Temperature  string
	TopP         string
	File         *File
}

// Coerce converts raw form text into a Request. The prompt is passed through
// untouched. max_new_tokens accepts integral text or a decimal, which is
// truncated toward zero.
func Coerce(in RawInputs) (Request, error) {
	tokens, err := coerceInt(in.MaxNewTokens)
	if err != nil {
		return Request{}, &CoercionError{Field: "max_new_tokens", Value: in.MaxNewTokens, Err: err}
	}
	temp, err := coerceFloat(in.Temperature)
	if err != nil {
		return Request{}, &CoercionError{Field: "temperature", Value: in.Temperature, Err: err}
	}
	topP, err := coerceFloat(in.TopP)
	if err != nil {
		return Request{}, &CoercionError{Field: "top_p", Value: in.TopP, Err: err}
	}
	return Request{
		Prompt:       in.Prompt,
		MaxNewTokens: tokens,
		Temperature:  temp,
		TopP:         topP,
		File:         in.File,
	}, nil
}

func coerceInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := coerceFloat(s)
	if err != nil {
		return 0, err
	}
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, fmt.Errorf("out of integer range")
	}
	return int(f), nil
}

func coerceFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return f, nil
}

// ReadFile reads an upload fully into memory.
func ReadFile(name string, r io.Reader) (*File, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", name, err)
	}
	return &File{Name: name, Data: b}, nil
}

// DecodeFile turns a wire FileArg back into a File.
func DecodeFile(arg FileArg) (*File, error) {
	b, err := base64.StdEncoding.DecodeString(arg.Data)
	if err != nil {
		return nil, &CoercionError{Field: "file", Value: arg.Name, Err: err}
	}
	return &File{Name: arg.Name, Data: b}, nil
}
