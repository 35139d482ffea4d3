// Package predict forwards dashboard form fields to the embedded demo's HTTP
// predict endpoint and interprets what comes back. Files by concern:
//
//   - types.go: Request, File and the wire Payload.
//   - coerce.go: raw form text -> Request (CoercionError on malformed numbers).
//   - validate.go: bounds checks for the numeric parameters (BoundsError).
//   - payload.go: BuildPayload, the positional argument list.
//   - result.go: Interpret, the tagged Recognized/Unrecognized/Undecodable result.
//   - client.go: Client.Predict, one POST per submission with a fixed timeout.
//   - errors.go: error types and IsXxx helpers.
//   - metrics.go: Prometheus counters for submissions.
//
// The remote argument order ([prompt, max_new_tokens, temperature, top_p], with
// an optional file object prepended) is an assumption about a service this
// package does not control. Nothing here discovers or verifies it.
package predict
