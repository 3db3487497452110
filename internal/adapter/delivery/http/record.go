package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/slug-shortener/internal/entity"
)

type recordUseCase interface {
	CreateRecord(ctx context.Context, slug, url string, overwrite bool) (*entity.Record, bool, error)
	ResolveSlug(ctx context.Context, slug string) (*entity.Record, error)
	ListRecentlyUsed(ctx context.Context, count int) ([]*entity.Record, error)
}

type recordHandler struct {
	useCase  recordUseCase
	validate *validator.Validate
}

func newRecordHandler(useCase recordUseCase, validate *validator.Validate) *recordHandler {
	return &recordHandler{
		useCase:  useCase,
		validate: validate,
	}
}

// parseCount reads the count query parameter. A missing or non-numeric value yields 0,
// which the use case replaces with its default.
func parseCount(r *http.Request) int {
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil {
		return 0
	}
	return count
}

func (h *recordHandler) listRecentlyUsed(w http.ResponseWriter, r *http.Request) {
	recs, err := h.useCase.ListRecentlyUsed(r.Context(), parseCount(r))
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	resp := toRecordListResponse(recs)

	if wantsHTML(r) {
		renderPage(w, r, http.StatusOK, indexPage, indexPageData{Records: resp.Records})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (h *recordHandler) resolveSlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	rec, err := h.useCase.ResolveSlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, entity.ErrRecordNotFound) {
			if wantsHTML(r) {
				renderPage(w, r, http.StatusNotFound, notFoundPage, nil)
				return
			}

			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, recordNotFoundResponse)
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	resp := toRecordResponse(rec)

	if wantsHTML(r) {
		renderPage(w, r, http.StatusOK, loadingPage, resp)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (h *recordHandler) createRecord(w http.ResponseWriter, r *http.Request) {
	var req recordRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	rec, overwritten, err := h.useCase.CreateRecord(r.Context(), req.Slug, req.URL, req.Overwrite)
	if err != nil {
		if errors.Is(err, entity.ErrRecordExists) {
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, recordExistsResponse)
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	status := http.StatusCreated
	if overwritten {
		status = http.StatusOK
	}

	render.Status(r, status)
	render.JSON(w, r, toRecordResponse(rec))
}

// decodeRequest decodes the JSON body into v and validates it. On failure the
// error response has already been written and false is returned.
func decodeRequest(w http.ResponseWriter, r *http.Request, validate *validator.Validate, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return false
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return false
	}

	if err := validate.Struct(v); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return false
	}

	return true
}
