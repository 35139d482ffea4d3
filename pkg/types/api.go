package types

import "encoding/json"

// PredictRequest is the body of POST /api/predict.
type PredictRequest struct {
	// Prompt text, forwarded as-is.
	// example: Write a haiku about the ocean.
	Prompt string `json:"prompt" example:"Write a haiku about the ocean."`
	// Maximum number of new tokens, 1..1024. A JSON number or a numeric string.
	// example: 256
	MaxNewTokens json.Number `json:"max_new_tokens" example:"256" swaggertype:"number"`
	// Sampling temperature, 0.01..2.0. A JSON number or a numeric string.
	// example: 0.7
	Temperature json.Number `json:"temperature" example:"0.7" swaggertype:"number"`
	// Nucleus sampling probability, 0.01..1.0. A JSON number or a numeric string.
	// example: 0.9
	TopP json.Number `json:"top_p" example:"0.9" swaggertype:"number"`
	// Optional file, prepended to the remote argument list.
	File *PredictFile `json:"file,omitempty"`
}

// PredictFile carries an upload as base64.
type PredictFile struct {
	// File name.
	// example: notes.txt
	Name string `json:"name" example:"notes.txt"`
	// Standard base64 of the file contents.
	// example: aGVsbG8=
	Data string `json:"data" example:"aGVsbG8="`
}

// PredictResponse is returned by POST /api/predict when the remote demo answered 2xx.
type PredictResponse struct {
	// Submission id, also sent upstream as X-Request-ID.
	// example: 0f8fad5b-d9cb-469f-a165-70867728950e
	SubmissionID string `json:"submission_id" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	// How the reply was interpreted: recognized, unrecognized or undecodable.
	// example: recognized
	Result string `json:"result" example:"recognized"`
	// First element of the reply's data array (recognized only).
	Primary any `json:"primary,omitempty"`
	// Whether data had at least one element (recognized only).
	HasPrimary bool `json:"has_primary,omitempty"`
	// The full decoded reply (recognized and unrecognized).
	Body any `json:"body,omitempty"`
	// Truncated raw text (undecodable only).
	Preview string `json:"preview,omitempty"`
	// Parse-failure notice (undecodable only).
	Notice string `json:"notice,omitempty"`
	// Remote HTTP status.
	// example: 200
	Status int `json:"status" example:"200"`
	// Round-trip duration in milliseconds.
	// example: 812
	DurationMS int64 `json:"duration_ms" example:"812"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
	// Remediation hint, set for predict request failures.
	Hint string `json:"hint,omitempty"`
}
