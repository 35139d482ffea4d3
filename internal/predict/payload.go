package predict

import "encoding/base64"

// BuildPayload maps a Request onto the positional argument list
// [prompt, max_new_tokens, temperature, top_p]. A file, when present, is
// prepended as {"name", "data"} with base64 data. Whether the remote demo
// accepts a file in first position is not known; the order is kept as is.
func BuildPayload(req Request) Payload {
	args := []any{req.Prompt, req.MaxNewTokens, Float(req.Temperature), Float(req.TopP)}
	if req.File != nil {
		file := FileArg{Name: req.File.Name, Data: base64.StdEncoding.EncodeToString(req.File.Data)}
		args = append([]any{file}, args...)
	}
	return Payload{Data: args}
}
