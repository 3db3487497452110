package http

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
)

const (
	indexPage    = "index.html"
	loadingPage  = "loading.html"
	notFoundPage = "404.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"datetime": formatDatetime,
}).ParseFS(templatesFS, "templates/*.html"))

type indexPageData struct {
	Records []recordResponse
}

func renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer

	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))
		render.Status(r, http.StatusInternalServerError)
		render.PlainText(w, r, http.StatusText(http.StatusInternalServerError))
		return
	}

	render.Status(r, status)
	render.HTML(w, r, buf.String())
}
