package httpapi

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"demodash/internal/embed"
	"demodash/internal/predict"
)

// multipartMemory is the part of a multipart body kept in memory before
// net/http spills to temporary files. Uploads are read fully either way.
const multipartMemory = 8 << 20

type limits struct {
	MinHeight, MaxHeight, HeightStep int
	MinNewTokens, MaxNewTokens       int
	MinTemperature, MaxTemperature   float64
	MinTopP, MaxTopP                 float64
}

var pageLimits = limits{
	MinHeight: embed.MinHeight, MaxHeight: embed.MaxHeight, HeightStep: embed.HeightStep,
	MinNewTokens: predict.MinNewTokens, MaxNewTokens: predict.MaxNewTokens,
	MinTemperature: predict.MinTemperature, MaxTemperature: predict.MaxTemperature,
	MinTopP: predict.MinTopP, MaxTopP: predict.MaxTopP,
}

type formValues struct {
	Prompt       string
	MaxNewTokens string
	Temperature  string
	TopP         string
}

func defaultForm() formValues {
	return formValues{
		MaxNewTokens: strconv.Itoa(predict.DefaultNewTokens),
		Temperature:  strconv.FormatFloat(predict.DefaultTemperature, 'f', -1, 64),
		TopP:         strconv.FormatFloat(predict.DefaultTopP, 'f', -1, 64),
	}
}

type failureView struct {
	Status  int
	Message string
	Hint    string
}

type resultView struct {
	SubmissionID string
	Kind         string
	Status       int
	Duration     string
	HasPrimary   bool
	Primary      string
	BodyJSON     string
	Preview      string
	Truncated    bool
	Notice       string
}

func newResultView(out predict.Outcome) *resultView {
	v := &resultView{
		SubmissionID: out.SubmissionID,
		Kind:         out.Result.Kind(),
		Status:       out.Status,
		Duration:     out.Duration.Round(time.Millisecond).String(),
	}
	switch res := out.Result.(type) {
	case predict.Recognized:
		v.HasPrimary = res.HasPrimary
		if res.HasPrimary {
			v.Primary = predict.FormatValue(res.Primary)
		}
		v.BodyJSON = predict.FormatJSON(res.Body)
	case predict.Unrecognized:
		v.BodyJSON = predict.FormatJSON(res.Body)
	case predict.Undecodable:
		v.Preview = res.Preview
		v.Truncated = res.Truncated
		v.Notice = res.Notice()
	}
	return v
}

type pageData struct {
	Title          string
	DemoURL        string
	Frame          embed.Frame
	FrameHTML      template.HTML
	EmbedHTML      string
	OpenURL        template.URL
	EmbedURL       template.URL
	FormAction     template.URL
	Limits         limits
	PredictEnabled bool
	Form           formValues
	Result         *resultView
	Failure        *failureView
}

func newPageData(svc Service, f embed.Frame) pageData {
	q := frameQuery(f)
	return pageData{
		Title:          svc.Title(),
		DemoURL:        svc.DemoURL(),
		Frame:          f,
		FrameHTML:      template.HTML(f.HTML()),
		EmbedHTML:      f.HTML(),
		OpenURL:        template.URL("/open"),
		EmbedURL:       template.URL("/embed.html?" + q),
		FormAction:     template.URL("/predict?" + q),
		Limits:         pageLimits,
		PredictEnabled: svc.PredictEnabled(),
		Form:           defaultForm(),
	}
}

func frameQuery(f embed.Frame) string {
	v := url.Values{}
	v.Set("frame", "1")
	v.Set("height", strconv.Itoa(f.Height))
	if f.Border {
		v.Set("border", "1")
	}
	return v.Encode()
}

// frameFromRequest reads height/border from the query string. The sidebar
// form always sends frame=1, so an absent border then means unchecked;
// without it the configured default applies.
func frameFromRequest(svc Service, r *http.Request) embed.Frame {
	q := r.URL.Query()
	def := svc.DefaultFrame()
	height, err := strconv.Atoi(strings.TrimSpace(q.Get("height")))
	if err != nil {
		height = 0
	}
	border := def.Border
	if q.Has("frame") || q.Has("border") {
		border = isChecked(q.Get("border"))
	}
	return svc.Frame(height, border)
}

func isChecked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "on", "true", "yes":
		return true
	}
	return false
}

func handleDashboard(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, http.StatusOK, newPageData(svc, frameFromRequest(svc, r)))
	}
}

func handleEmbedHTML(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(frameFromRequest(svc, r).HTML()))
	}
}

func handleOpen(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, svc.DemoURL(), http.StatusFound)
	}
}

func handlePredictForm(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := newPageData(svc, frameFromRequest(svc, r))
		if !svc.PredictEnabled() {
			data.Failure = &failureView{Status: http.StatusNotFound, Message: "predict is disabled"}
			renderPage(w, http.StatusNotFound, data)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		in, err := readFormInputs(r)
		if err != nil {
			data.Failure = &failureView{Status: http.StatusBadRequest, Message: err.Error()}
			renderPage(w, http.StatusBadRequest, data)
			return
		}
		data.Form = formValues{Prompt: in.Prompt, MaxNewTokens: in.MaxNewTokens, Temperature: in.Temperature, TopP: in.TopP}

		start := time.Now()
		logSubmitStart(r, in)
		// Join server base context with request context so shutdown cancels the call too.
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		out, err := svc.Predict(ctx, in)
		if err != nil {
			// If the browser went away there is nobody to render for.
			if r.Context().Err() != nil {
				return
			}
			status := statusFor(err)
			data.Failure = &failureView{Status: status, Message: err.Error(), Hint: hintFor(err)}
			logSubmitEnd(r, status, start, out, err)
			renderPage(w, status, data)
			return
		}
		data.Result = newResultView(out)
		logSubmitEnd(r, http.StatusOK, start, out, nil)
		renderPage(w, http.StatusOK, data)
	}
}

// readFormInputs accepts urlencoded or multipart bodies; the optional
// upload is read fully into memory.
func readFormInputs(r *http.Request) (predict.RawInputs, error) {
	ct := strings.ToLower(r.Header.Get("Content-Type"))
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return predict.RawInputs{}, fmt.Errorf("invalid form: %w", err)
		}
	} else if err := r.ParseForm(); err != nil {
		return predict.RawInputs{}, fmt.Errorf("invalid form: %w", err)
	}
	in := predict.RawInputs{
		Prompt:       r.PostFormValue("prompt"),
		MaxNewTokens: r.PostFormValue("max_new_tokens"),
		Temperature:  r.PostFormValue("temperature"),
		TopP:         r.PostFormValue("top_p"),
	}
	if r.MultipartForm == nil {
		return in, nil
	}
	f, hdr, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return in, nil
	}
	if err != nil {
		return in, fmt.Errorf("invalid upload: %w", err)
	}
	defer f.Close()
	file, err := predict.ReadFile(hdr.Filename, f)
	if err != nil {
		return in, err
	}
	observeUpload(len(file.Data))
	in.File = file
	return in, nil
}
