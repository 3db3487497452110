package http

import (
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var slugRegexp = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func newValidate() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRegexp.MatchString(fl.Field().String())
	})

	return validate
}

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	if wantsHTML(r) {
		renderPage(w, r, http.StatusNotFound, notFoundPage, nil)
		return
	}

	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, notFoundResponse)
}

// wantsHTML reports whether the client prefers an HTML page over JSON.
func wantsHTML(r *http.Request) bool {
	return render.GetAcceptedContentType(r) == render.ContentTypeHTML
}
