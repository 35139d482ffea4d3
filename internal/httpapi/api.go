package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"demodash/internal/predict"
	"demodash/pkg/types"
)

// handlePredictAPI is the JSON twin of the form submit.
//
// @Summary      Forward a prompt to the demo's predict endpoint
// @Description  Builds the positional payload, performs one call and returns the interpreted reply.
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        request  body      types.PredictRequest  true  "Submission"
// @Success      200      {object}  types.PredictResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      404      {object}  types.ErrorResponse
// @Failure      415      {object}  types.ErrorResponse
// @Failure      502      {object}  types.ErrorResponse
// @Router       /api/predict [post]
func handlePredictAPI(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !svc.PredictEnabled() {
			writeJSONError(w, http.StatusNotFound, "predict is disabled")
			return
		}
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.PredictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		in := predict.RawInputs{
			Prompt:       req.Prompt,
			MaxNewTokens: req.MaxNewTokens.String(),
			Temperature:  req.Temperature.String(),
			TopP:         req.TopP.String(),
		}
		if req.File != nil {
			f, err := predict.DecodeFile(predict.FileArg{Name: req.File.Name, Data: req.File.Data})
			if err != nil {
				writeJSONError(w, statusFor(err), err.Error())
				return
			}
			observeUpload(len(f.Data))
			in.File = f
		}

		start := time.Now()
		logSubmitStart(r, in)
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		out, err := svc.Predict(ctx, in)
		if err != nil {
			if r.Context().Err() != nil {
				return
			}
			status := statusFor(err)
			logSubmitEnd(r, status, start, out, err)
			writeJSONErrorHint(w, status, err.Error(), hintFor(err))
			return
		}
		logSubmitEnd(r, http.StatusOK, start, out, nil)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(newPredictResponse(out)); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		}
	}
}

func newPredictResponse(out predict.Outcome) types.PredictResponse {
	resp := types.PredictResponse{
		SubmissionID: out.SubmissionID,
		Result:       out.Result.Kind(),
		Status:       out.Status,
		DurationMS:   out.Duration.Milliseconds(),
	}
	switch res := out.Result.(type) {
	case predict.Recognized:
		resp.Primary = res.Primary
		resp.HasPrimary = res.HasPrimary
		resp.Body = res.Body
	case predict.Unrecognized:
		resp.Body = res.Body
	case predict.Undecodable:
		resp.Preview = res.Preview
		resp.Notice = res.Notice()
	}
	return resp
}
