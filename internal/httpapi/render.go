package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/Masterminds/sprig/v3"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday"
)

//go:embed views/*.html
var viewsFS embed.FS

var views = template.Must(template.New("").Funcs(funcMap()).ParseFS(viewsFS, "views/*.html"))

func funcMap() template.FuncMap {
	fm := sprig.FuncMap()
	fm["markdown"] = markDowner
	return fm
}

// markDowner renders model output as markdown and strips anything unsafe.
func markDowner(s string) template.HTML {
	out := blackfriday.MarkdownCommon([]byte(s))
	return template.HTML(bluemonday.UGCPolicy().Sanitize(string(out)))
}

// renderPage executes the dashboard template into a buffer first so a
// template failure still yields a clean 500.
func renderPage(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, "dashboard.html", data); err != nil {
		if zlog != nil {
			zlog.Error().Err(err).Msg("render dashboard")
		}
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
